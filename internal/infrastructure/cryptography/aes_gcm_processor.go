package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random 32-byte AES-256 key from the system CSPRNG.
func (p *aesProcessor) GenerateKey() ([]byte, error) {
	key := make([]byte, cryptoDomain.AESKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	p.logger.Info("Generated AES-256 key")
	return key, nil
}

// DeriveKey hashes the passphrase to a fixed 32-byte key. Plain SHA-256, no salt, no
// iteration count: a known-weak construction kept as-is because existing bundles depend
// on the exact derivation.
func (p *aesProcessor) DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// Encrypt seals plaintext under key with a fresh 96-bit nonce. The nonce is generated
// once per call and never reused, even across concurrent calls with the same key. The
// 128-bit authentication tag is appended to the ciphertext per GCM convention.
func (p *aesProcessor) Encrypt(plaintext, key []byte) ([]byte, []byte, error) {
	if len(key) != cryptoDomain.AESKeySize {
		return nil, nil, fmt.Errorf("key must be %d bytes, got %d", cryptoDomain.AESKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to construct AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to construct GCM: %w", err)
	}

	nonce := make([]byte, cryptoDomain.GCMNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	p.logger.Info("AES-GCM encryption succeeded")
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext with the given nonce and key, verifying the authentication
// tag. A tampered ciphertext and a wrong key fail identically.
func (p *aesProcessor) Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	if len(key) != cryptoDomain.AESKeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", cryptoDomain.AESKeySize, len(key))
	}
	if len(nonce) != cryptoDomain.GCMNonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", cryptoDomain.GCMNonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to construct AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to construct GCM: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate ciphertext: %w", err)
	}

	p.logger.Info("AES-GCM decryption succeeded")
	return plaintext, nil
}
