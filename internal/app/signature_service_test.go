//go:build unit
// +build unit

package app

import (
	"sync"
	"testing"

	cryptoDomain "secured_start_service/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	signKeyOnce sync.Once
	signKeyPair *cryptoDomain.KeyPair
	signKeyErr  error
)

func sharedSigningKeyPair(t *testing.T, service cryptoDomain.SignatureService) *cryptoDomain.KeyPair {
	t.Helper()
	signKeyOnce.Do(func() {
		signKeyPair, signKeyErr = service.GenerateKeyPair()
	})
	require.NoError(t, signKeyErr)
	return signKeyPair
}

func TestSignatureService_SignAndVerify(t *testing.T) {
	service := SetupSignatureService(t)
	keyPair := sharedSigningKeyPair(t, service)

	message := []byte("sign me")

	signResult, err := service.Sign(message, keyPair.PrivateKeyPEM)
	require.NoError(t, err)
	assert.NotEmpty(t, signResult.Signature)
	assert.Equal(t, service.Digest(message), signResult.Digest)

	verification := service.Verify(message, signResult.Signature, keyPair.PublicKeyPEM)
	require.NotNil(t, verification)
	assert.True(t, verification.Valid)

	// The digests on both sides match for an untouched message.
	assert.Equal(t, signResult.Digest, verification.Digest)
}

func TestSignatureService_VerifyTamperedMessage(t *testing.T) {
	service := SetupSignatureService(t)
	keyPair := sharedSigningKeyPair(t, service)

	message := []byte("original message")
	signResult, err := service.Sign(message, keyPair.PrivateKeyPEM)
	require.NoError(t, err)

	tampered := []byte("original messagf")
	verification := service.Verify(tampered, signResult.Signature, keyPair.PublicKeyPEM)

	assert.False(t, verification.Valid)
	// The verify-time digest reflects the tampered bytes, visibly different from the
	// sign-time digest.
	assert.NotEqual(t, signResult.Digest, verification.Digest)
}

func TestSignatureService_VerifyDegradesToFalse(t *testing.T) {
	service := SetupSignatureService(t)
	keyPair := sharedSigningKeyPair(t, service)

	message := []byte("message")
	signResult, err := service.Sign(message, keyPair.PrivateKeyPEM)
	require.NoError(t, err)

	tests := []struct {
		name      string
		message   []byte
		signature string
		publicKey string
	}{
		{"malformed public key", message, signResult.Signature, "garbage"},
		{"malformed signature base64", message, "not*base64", keyPair.PublicKeyPEM},
		{"truncated signature", message, signResult.Signature[:8], keyPair.PublicKeyPEM},
		{"empty signature", message, "", keyPair.PublicKeyPEM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verification := service.Verify(tt.message, tt.signature, tt.publicKey)
			require.NotNil(t, verification, "verification must never escalate to an error")
			assert.False(t, verification.Valid)
			assert.Equal(t, service.Digest(tt.message), verification.Digest)
		})
	}
}

func TestSignatureService_VerifyWithWrongKey(t *testing.T) {
	service := SetupSignatureService(t)
	keyPair := sharedSigningKeyPair(t, service)

	message := []byte("message")
	signResult, err := service.Sign(message, keyPair.PrivateKeyPEM)
	require.NoError(t, err)

	otherPair, err := service.GenerateKeyPair()
	require.NoError(t, err)

	verification := service.Verify(message, signResult.Signature, otherPair.PublicKeyPEM)
	assert.False(t, verification.Valid)
}

func TestSignatureService_SignWithMalformedKey(t *testing.T) {
	service := SetupSignatureService(t)

	_, err := service.Sign([]byte("message"), "not a private key")
	require.Error(t, err)
	assert.ErrorIs(t, err, cryptoDomain.ErrEncoding)
}

func TestSignatureService_Digest(t *testing.T) {
	service := SetupSignatureService(t)

	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		service.Digest([]byte("hello")))
}
