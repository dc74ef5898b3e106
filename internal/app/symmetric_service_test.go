//go:build unit
// +build unit

package app

import (
	"crypto/sha256"
	"strings"
	"testing"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/encoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricCipher_RandomKeyRoundTrip(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	message := []byte("attack at dawn")

	result, err := cipher.Encrypt(message)
	require.NoError(t, err)
	require.NotNil(t, result)

	decrypted, err := cipher.Decrypt(result.Bundle, result.Key, false)
	require.NoError(t, err)
	assert.Equal(t, message, decrypted)
}

func TestSymmetricCipher_BundleFormat(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	message := []byte("wire format check")
	result, err := cipher.Encrypt(message)
	require.NoError(t, err)

	fields := strings.Split(result.Bundle, ".")
	require.Len(t, fields, 2, "bundle must be two dot-separated fields")

	ciphertext, err := encoding.FromBase64(fields[0])
	require.NoError(t, err)
	assert.Len(t, ciphertext, len(message)+cryptoDomain.GCMTagSize)

	nonce, err := encoding.FromBase64(fields[1])
	require.NoError(t, err)
	assert.Len(t, nonce, cryptoDomain.GCMNonceSize)

	key, err := encoding.FromBase64(result.Key)
	require.NoError(t, err)
	assert.Len(t, key, cryptoDomain.AESKeySize)
}

// The concrete scenario: message "hello", passphrase "secret". The key is the fixed
// SHA-256 of the passphrase; two encryptions give different bundles (fresh nonces) that
// both decrypt back under the same derived key.
func TestSymmetricCipher_PassphraseScenario(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	message := []byte("hello")
	passphrase := "secret"

	first, err := cipher.EncryptWithPassphrase(message, passphrase)
	require.NoError(t, err)

	second, err := cipher.EncryptWithPassphrase(message, passphrase)
	require.NoError(t, err)

	assert.NotEqual(t, first.Bundle, second.Bundle)

	derived := sha256.Sum256([]byte(passphrase))
	assert.Equal(t, encoding.ToBase64(derived[:]), first.Key)
	assert.Equal(t, first.Key, second.Key)

	for _, bundle := range []string{first.Bundle, second.Bundle} {
		decrypted, err := cipher.Decrypt(bundle, passphrase, true)
		require.NoError(t, err)
		assert.Equal(t, message, decrypted)
	}

	// The base64 key from a passphrase encryption also works as a raw key.
	decrypted, err := cipher.Decrypt(first.Bundle, first.Key, false)
	require.NoError(t, err)
	assert.Equal(t, message, decrypted)
}

func TestSymmetricCipher_EmptyMessage(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	result, err := cipher.Encrypt([]byte{})
	require.NoError(t, err)

	decrypted, err := cipher.Decrypt(result.Bundle, result.Key, false)
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestSymmetricCipher_DecryptFailures(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	result, err := cipher.Encrypt([]byte("payload"))
	require.NoError(t, err)

	fields := strings.Split(result.Bundle, ".")
	require.Len(t, fields, 2)

	tests := []struct {
		name        string
		bundle      string
		keyMaterial string
		passphrase  bool
	}{
		{"no separator", fields[0], result.Key, false},
		{"three fields", result.Bundle + ".extra", result.Key, false},
		{"invalid ciphertext base64", "!!!." + fields[1], result.Key, false},
		{"invalid nonce base64", fields[0] + ".!!!", result.Key, false},
		{"invalid key base64", result.Bundle, "not*base64", false},
		{"wrong key length", result.Bundle, encoding.ToBase64([]byte("short")), false},
		{"wrong passphrase", result.Bundle, "guess", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decrypted, err := cipher.Decrypt(tt.bundle, tt.keyMaterial, tt.passphrase)
			require.Error(t, err)
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryption)
			assert.Nil(t, decrypted, "no partial plaintext on failure")
		})
	}
}

func TestSymmetricCipher_TamperedCiphertext(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	result, err := cipher.Encrypt([]byte("integrity matters"))
	require.NoError(t, err)

	fields := strings.Split(result.Bundle, ".")
	require.Len(t, fields, 2)

	ciphertext, err := encoding.FromBase64(fields[0])
	require.NoError(t, err)
	ciphertext[0] ^= 0x01

	tamperedBundle := encoding.ToBase64(ciphertext) + "." + fields[1]
	_, err = cipher.Decrypt(tamperedBundle, result.Key, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrDecryption)
}

func TestSymmetricCipher_DistinctRandomKeys(t *testing.T) {
	cipher := SetupSymmetricCipher(t)

	first, err := cipher.Encrypt([]byte("m"))
	require.NoError(t, err)
	second, err := cipher.Encrypt([]byte("m"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)

	// Keys do not cross over between encryptions.
	_, err = cipher.Decrypt(first.Bundle, second.Key, false)
	assert.Error(t, err)
}
