//go:build unit
// +build unit

package app

import (
	"testing"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/infrastructure/cryptography"
	"secured_start_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// SetupSymmetricCipher constructs a SymmetricCipher backed by the real AES processor.
func SetupSymmetricCipher(t *testing.T) cryptoDomain.SymmetricCipher {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	aesProcessor, err := cryptography.NewAESProcessor(log)
	require.NoError(t, err)

	cipher, err := NewSymmetricCipher(aesProcessor, log)
	require.NoError(t, err)
	return cipher
}

// SetupAsymmetricCipher constructs an AsymmetricCipher backed by the real RSA processor.
func SetupAsymmetricCipher(t *testing.T) cryptoDomain.AsymmetricCipher {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	require.NoError(t, err)

	cipher, err := NewAsymmetricCipher(rsaProcessor, log)
	require.NoError(t, err)
	return cipher
}

// SetupSignatureService constructs a SignatureService backed by the real RSA processor.
func SetupSignatureService(t *testing.T) cryptoDomain.SignatureService {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	require.NoError(t, err)

	service, err := NewSignatureService(rsaProcessor, log)
	require.NoError(t, err)
	return service
}
