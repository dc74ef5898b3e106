// Package app implements the three sandbox operation groups on top of the cryptographic
// processors and the wire encoding. Services are stateless: no key material outlives a
// single call, so concurrent calls need no coordination.
package app

import (
	"fmt"
	"strings"

	"github.com/awnumar/memguard"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/encoding"
	"secured_start_service/internal/pkg/logger"
)

// symmetricService implements the SymmetricCipher interface for the AES-GCM workflow.
type symmetricService struct {
	aesProcessor cryptoDomain.AESProcessor
	logger       logger.Logger
}

// NewSymmetricCipher creates a new symmetricService instance
func NewSymmetricCipher(aesProcessor cryptoDomain.AESProcessor, logger logger.Logger) (cryptoDomain.SymmetricCipher, error) {
	return &symmetricService{
		aesProcessor: aesProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts message under a freshly generated random 256-bit key.
func (s *symmetricService) Encrypt(message []byte) (*cryptoDomain.SymmetricEncryptResult, error) {
	key, err := s.aesProcessor.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryption, err)
	}
	return s.encryptWithKey(message, key)
}

// EncryptWithPassphrase derives the key as SHA-256 of the passphrase bytes. The raw
// passphrase is hashed immediately and never stored.
func (s *symmetricService) EncryptWithPassphrase(message []byte, passphrase string) (*cryptoDomain.SymmetricEncryptResult, error) {
	return s.encryptWithKey(message, s.aesProcessor.DeriveKey(passphrase))
}

func (s *symmetricService) encryptWithKey(message, key []byte) (*cryptoDomain.SymmetricEncryptResult, error) {
	defer memguard.WipeBytes(key)

	ciphertext, nonce, err := s.aesProcessor.Encrypt(message, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryption, err)
	}

	return &cryptoDomain.SymmetricEncryptResult{
		Bundle: encoding.ToBase64(ciphertext) + cryptoDomain.BundleSeparator + encoding.ToBase64(nonce),
		Key:    encoding.ToBase64(key),
	}, nil
}

// Decrypt authenticates and decrypts a bundle. Every failure mode wraps ErrDecryption so
// the host cannot distinguish tampering from a wrong key, and no partial plaintext is
// ever returned.
func (s *symmetricService) Decrypt(bundle string, keyMaterial string, isPassphrase bool) ([]byte, error) {
	fields := strings.Split(bundle, cryptoDomain.BundleSeparator)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: bundle must contain exactly two '%s'-separated fields",
			cryptoDomain.ErrDecryption, cryptoDomain.BundleSeparator)
	}

	ciphertext, err := encoding.FromBase64(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryption, err)
	}

	nonce, err := encoding.FromBase64(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryption, err)
	}

	var key []byte
	if isPassphrase {
		key = s.aesProcessor.DeriveKey(keyMaterial)
	} else {
		key, err = encoding.FromBase64(keyMaterial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryption, err)
		}
	}
	defer memguard.WipeBytes(key)

	message, err := s.aesProcessor.Decrypt(ciphertext, nonce, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryption, err)
	}
	return message, nil
}
