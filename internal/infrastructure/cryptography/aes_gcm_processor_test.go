//go:build unit
// +build unit

package cryptography

import (
	"crypto/sha256"
	"testing"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAESProcessor(t *testing.T) cryptoDomain.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey()
		assert.NoError(t, err)
		assert.Len(t, key, cryptoDomain.AESKeySize)

		other, err := processor.GenerateKey()
		assert.NoError(t, err)
		assert.NotEqual(t, key, other)
	})

	t.Run("DeriveKey", func(t *testing.T) {
		expected := sha256.Sum256([]byte("secret"))
		key := processor.DeriveKey("secret")
		assert.Equal(t, expected[:], key)
		assert.Len(t, key, cryptoDomain.AESKeySize)

		// Length is fixed regardless of passphrase length.
		assert.Len(t, processor.DeriveKey(""), cryptoDomain.AESKeySize)
		assert.Len(t, processor.DeriveKey("a very long passphrase that exceeds a block"), cryptoDomain.AESKeySize)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		plaintext := []byte("This is a test message.")

		ciphertext, nonce, err := processor.Encrypt(plaintext, key)
		assert.NoError(t, err)
		assert.Len(t, nonce, cryptoDomain.GCMNonceSize)
		assert.Len(t, ciphertext, len(plaintext)+cryptoDomain.GCMTagSize)

		decrypted, err := processor.Decrypt(ciphertext, nonce, key)
		assert.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		_, _, err := processor.Encrypt([]byte("This is a test."), []byte("shortkey"))
		assert.Error(t, err)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		ciphertext, nonce, err := processor.Encrypt([]byte("Test decryption with wrong key."), key)
		require.NoError(t, err)

		wrongKey, err := processor.GenerateKey()
		require.NoError(t, err)

		_, err = processor.Decrypt(ciphertext, nonce, wrongKey)
		assert.Error(t, err, "expected authentication failure with wrong key")
	})

	t.Run("TamperDetection", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		plaintext := []byte("integrity protected payload")
		ciphertext, nonce, err := processor.Encrypt(plaintext, key)
		require.NoError(t, err)

		// Flipping any single bit must fail authentication, never yield altered plaintext.
		for i := range ciphertext {
			tampered := make([]byte, len(ciphertext))
			copy(tampered, ciphertext)
			tampered[i] ^= 0x01

			_, err := processor.Decrypt(tampered, nonce, key)
			assert.Error(t, err, "bit flip at byte %d must fail authentication", i)
		}
	})

	t.Run("DecryptWithWrongNonce", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		ciphertext, _, err := processor.Encrypt([]byte("nonce bound payload"), key)
		require.NoError(t, err)

		wrongNonce := make([]byte, cryptoDomain.GCMNonceSize)
		_, err = processor.Decrypt(ciphertext, wrongNonce, key)
		assert.Error(t, err)
	})

	t.Run("DecryptInvalidNonceSize", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		_, err = processor.Decrypt([]byte("some ciphertext"), []byte("short"), key)
		assert.Error(t, err)
	})

	t.Run("NonceUniqueness", func(t *testing.T) {
		key, err := processor.GenerateKey()
		require.NoError(t, err)

		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			_, nonce, err := processor.Encrypt([]byte("m"), key)
			require.NoError(t, err)

			_, dup := seen[string(nonce)]
			require.False(t, dup, "nonce repeated after %d encryptions", i)
			seen[string(nonce)] = struct{}{}
		}
	})
}
