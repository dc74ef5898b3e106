package app

import (
	"fmt"

	cryptoDomain "secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/pkg/encoding"
	"secured_start_service/internal/pkg/logger"
)

// signatureService implements the SignatureService interface for the RSA-PSS workflow.
type signatureService struct {
	rsaProcessor cryptoDomain.RSAProcessor
	logger       logger.Logger
}

// NewSignatureService creates a new signatureService instance
func NewSignatureService(rsaProcessor cryptoDomain.RSAProcessor, logger logger.Logger) (cryptoDomain.SignatureService, error) {
	return &signatureService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// GenerateKeyPair generates a fresh 4096-bit signing key pair and exports it as PEM text.
func (s *signatureService) GenerateKeyPair() (*cryptoDomain.KeyPair, error) {
	privateKey, _, err := s.rsaProcessor.GenerateKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}
	return s.rsaProcessor.ExportKeyPair(privateKey)
}

// Sign signs message and returns the signature alongside the sign-time digest. The digest
// is informational, computed independently of the signature.
func (s *signatureService) Sign(message []byte, privateKeyPEM string) (*cryptoDomain.SignResult, error) {
	privateKey, err := s.rsaProcessor.ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncoding, err)
	}

	signature, err := s.rsaProcessor.Sign(message, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	return &cryptoDomain.SignResult{
		Signature: encoding.ToBase64(signature),
		Digest:    cryptoDomain.ComputeDigest(message),
	}, nil
}

// Verify recomputes the digest and checks the signature independently. Failures never
// escalate: a malformed key, malformed base64 or a failed primitive all come back as
// Valid=false, since an invalid signature is an expected outcome. The digest is always
// present so both outcomes stay independently visible to the user.
func (s *signatureService) Verify(message []byte, signature string, publicKeyPEM string) *cryptoDomain.VerificationResult {
	result := &cryptoDomain.VerificationResult{
		Digest: cryptoDomain.ComputeDigest(message),
	}

	publicKey, err := s.rsaProcessor.ParsePublicKey(publicKeyPEM)
	if err != nil {
		s.logger.Warn("signature verification failed: ", err)
		return result
	}

	rawSignature, err := encoding.FromBase64(signature)
	if err != nil {
		s.logger.Warn("signature verification failed: ", err)
		return result
	}

	valid, err := s.rsaProcessor.Verify(message, rawSignature, publicKey)
	if err != nil {
		s.logger.Warn("signature verification failed: ", err)
		return result
	}

	result.Valid = valid
	return result
}

// Digest returns the lowercase hex SHA-256 digest of message.
func (s *signatureService) Digest(message []byte) string {
	return cryptoDomain.ComputeDigest(message)
}
