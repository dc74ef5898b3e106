//go:build unit
// +build unit

package v1

import (
	"secured_start_service/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockSymmetricCipher is a mock implementation of SymmetricCipher
type MockSymmetricCipher struct {
	mock.Mock
}

func (m *MockSymmetricCipher) Encrypt(message []byte) (*crypto.SymmetricEncryptResult, error) {
	args := m.Called(message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.SymmetricEncryptResult), args.Error(1)
}

func (m *MockSymmetricCipher) EncryptWithPassphrase(message []byte, passphrase string) (*crypto.SymmetricEncryptResult, error) {
	args := m.Called(message, passphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.SymmetricEncryptResult), args.Error(1)
}

func (m *MockSymmetricCipher) Decrypt(bundle, keyMaterial string, isPassphrase bool) ([]byte, error) {
	args := m.Called(bundle, keyMaterial, isPassphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockAsymmetricCipher is a mock implementation of AsymmetricCipher
type MockAsymmetricCipher struct {
	mock.Mock
}

func (m *MockAsymmetricCipher) GenerateKeyPair() (*crypto.KeyPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

func (m *MockAsymmetricCipher) Encrypt(message []byte, publicKeyPEM string) (string, error) {
	args := m.Called(message, publicKeyPEM)
	return args.String(0), args.Error(1)
}

func (m *MockAsymmetricCipher) Decrypt(ciphertext, privateKeyPEM string) ([]byte, error) {
	args := m.Called(ciphertext, privateKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSignatureService is a mock implementation of SignatureService
type MockSignatureService struct {
	mock.Mock
}

func (m *MockSignatureService) GenerateKeyPair() (*crypto.KeyPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

func (m *MockSignatureService) Sign(message []byte, privateKeyPEM string) (*crypto.SignResult, error) {
	args := m.Called(message, privateKeyPEM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.SignResult), args.Error(1)
}

func (m *MockSignatureService) Verify(message []byte, signature, publicKeyPEM string) *crypto.VerificationResult {
	args := m.Called(message, signature, publicKeyPEM)
	return args.Get(0).(*crypto.VerificationResult)
}

func (m *MockSignatureService) Digest(message []byte) string {
	args := m.Called(message)
	return args.String(0)
}
