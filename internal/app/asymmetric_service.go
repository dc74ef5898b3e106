package app

import (
	"errors"
	"fmt"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/encoding"
	"secured_start_service/internal/pkg/logger"
)

// asymmetricService implements the AsymmetricCipher interface for the RSA-OAEP workflow.
type asymmetricService struct {
	rsaProcessor cryptoDomain.RSAProcessor
	logger       logger.Logger
}

// NewAsymmetricCipher creates a new asymmetricService instance
func NewAsymmetricCipher(rsaProcessor cryptoDomain.RSAProcessor, logger logger.Logger) (cryptoDomain.AsymmetricCipher, error) {
	return &asymmetricService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// GenerateKeyPair generates a fresh 4096-bit key pair and exports it as PEM text.
func (s *asymmetricService) GenerateKeyPair() (*cryptoDomain.KeyPair, error) {
	privateKey, _, err := s.rsaProcessor.GenerateKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return s.rsaProcessor.ExportKeyPair(privateKey)
}

// Encrypt encrypts message for the holder of publicKeyPEM. The key string is accepted
// verbatim from the user and only validated here (fail-late); a malformed key wraps
// ErrEncoding, an oversized message ErrMessageTooLong.
func (s *asymmetricService) Encrypt(message []byte, publicKeyPEM string) (string, error) {
	publicKey, err := s.rsaProcessor.ParsePublicKey(publicKeyPEM)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	ciphertext, err := s.rsaProcessor.Encrypt(message, publicKey)
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrEncryption) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryption, err)
	}

	return encoding.ToBase64(ciphertext), nil
}

// Decrypt decrypts a base64 ciphertext with privateKeyPEM. Malformed keys, malformed
// base64 and OAEP integrity failures all wrap ErrDecryption with a uniform message:
// distinguishing them would hand out a padding oracle.
func (s *asymmetricService) Decrypt(ciphertext string, privateKeyPEM string) ([]byte, error) {
	privateKey, err := s.rsaProcessor.ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key", cryptoDomain.ErrDecryption)
	}

	raw, err := encoding.FromBase64(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ciphertext encoding", cryptoDomain.ErrDecryption)
	}

	message, err := s.rsaProcessor.Decrypt(raw, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext rejected", cryptoDomain.ErrDecryption)
	}
	return message, nil
}
