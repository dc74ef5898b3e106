package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/encoding"
	"secured_start_service/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoDomain.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates a 4096-bit RSA key pair. The public exponent is fixed at 65537;
// the same parameter set serves both encryption and signing pairs.
func (r *rsaProcessor) GenerateKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, cryptoDomain.RSAKeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair")
	return privateKey, &privateKey.PublicKey, nil
}

// Encrypt encrypts plaintext using RSA-OAEP with SHA-256. The capacity bound is computed
// from the supplied key, since a user may paste a key of a different size; exceeding it
// fails with ErrMessageTooLong before the primitive is invoked.
func (r *rsaProcessor) Encrypt(plaintext []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	maxSize := publicKey.Size() - 2*sha256.Size - 2
	if len(plaintext) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte bound",
			cryptoDomain.ErrMessageTooLong, len(plaintext), maxSize)
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Info("RSA-OAEP encryption succeeded")
	return ciphertext, nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key. OAEP reports padding
// failure, tampering and a wrong key identically, and so does this method.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Info("RSA-OAEP decryption succeeded")
	return plaintext, nil
}

// Sign creates an RSA-PSS signature over message using SHA-256 and the fixed 32-byte
// salt length. The salt length is a protocol parameter: verify uses the same value.
func (r *rsaProcessor) Sign(message []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(message)

	opts := &rsa.PSSOptions{
		SaltLength: cryptoDomain.PSSSaltLength,
		Hash:       crypto.SHA256,
	}
	signature, err := rsa.SignPSS(rand.Reader, privateKey, crypto.SHA256, hashed[:], opts)
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Info("RSA-PSS signing succeeded")
	return signature, nil
}

// Verify verifies an RSA-PSS signature using the public key.
// Returns true if the signature is valid, false otherwise.
func (r *rsaProcessor) Verify(message, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(message)

	opts := &rsa.PSSOptions{
		SaltLength: cryptoDomain.PSSSaltLength,
		Hash:       crypto.SHA256,
	}
	if err := rsa.VerifyPSS(publicKey, crypto.SHA256, hashed[:], signature, opts); err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	r.logger.Info("RSA-PSS signature verified successfully")
	return true, nil
}

// ExportKeyPair marshals the pair as SPKI (public) and PKCS#8 (private), base64-encoded
// and framed with literal PEM markers. The single-line body framing is part of the
// exchange contract: keys are passed between users as plain text.
func (r *rsaProcessor) ExportKeyPair(privateKey *rsa.PrivateKey) (*cryptoDomain.KeyPair, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	publicBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	privateBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}

	return &cryptoDomain.KeyPair{
		PublicKeyPEM:  encoding.FramePEM(encoding.PEMLabelPublicKey, encoding.ToBase64(publicBytes)),
		PrivateKeyPEM: encoding.FramePEM(encoding.PEMLabelPrivateKey, encoding.ToBase64(privateBytes)),
	}, nil
}

// ParsePublicKey parses a PEM-framed SPKI public key pasted in by a user.
func (r *rsaProcessor) ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	body, err := encoding.UnframePEM(encoding.PEMLabelPublicKey, publicKeyPEM)
	if err != nil {
		return nil, err
	}

	der, err := encoding.FromBase64(body)
	if err != nil {
		return nil, err
	}

	keyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("unable to parse SPKI public key: %w", err)
	}

	publicKey, ok := keyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not of type RSA")
	}
	return publicKey, nil
}

// ParsePrivateKey parses a PEM-framed PKCS#8 private key pasted in by a user.
func (r *rsaProcessor) ParsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	body, err := encoding.UnframePEM(encoding.PEMLabelPrivateKey, privateKeyPEM)
	if err != nil {
		return nil, err
	}

	der, err := encoding.FromBase64(body)
	if err != nil {
		return nil, err
	}

	keyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("unable to parse PKCS#8 private key: %w", err)
	}

	privateKey, ok := keyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not of type RSA")
	}
	return privateKey, nil
}
