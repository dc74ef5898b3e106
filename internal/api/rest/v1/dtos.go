// Package v1 exposes the sandbox operations as a JSON REST API. All values cross the
// boundary as plain text strings; the UI owns display and copy affordances.
package v1

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse carries a plain failure message back to the host UI.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SymmetricEncryptRequest carries a plaintext message and an optional passphrase. An
// empty passphrase selects a freshly generated random key.
type SymmetricEncryptRequest struct {
	Message    string `json:"message" validate:"required"`
	Passphrase string `json:"passphrase"`
}

// Validate checks that all fields in SymmetricEncryptRequest are valid
func (r *SymmetricEncryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SymmetricEncryptRequest: %w", err)
	}
	return nil
}

// SymmetricEncryptResponse returns the wire bundle and the base64 key that produced it.
type SymmetricEncryptResponse struct {
	Bundle string `json:"bundle"`
	Key    string `json:"key"`
}

// SymmetricDecryptRequest carries a bundle plus the key material to open it with.
type SymmetricDecryptRequest struct {
	Bundle       string `json:"bundle" validate:"required"`
	KeyMaterial  string `json:"key_material" validate:"required"`
	IsPassphrase bool   `json:"is_passphrase"`
}

// Validate checks that all fields in SymmetricDecryptRequest are valid
func (r *SymmetricDecryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SymmetricDecryptRequest: %w", err)
	}
	return nil
}

// SymmetricDecryptResponse returns the recovered plaintext.
type SymmetricDecryptResponse struct {
	Message string `json:"message"`
}

// KeyPairResponse returns a PEM-framed key pair for either workflow.
type KeyPairResponse struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// AsymmetricEncryptRequest carries a message and the recipient's public key PEM.
type AsymmetricEncryptRequest struct {
	Message   string `json:"message" validate:"required"`
	PublicKey string `json:"public_key" validate:"required"`
}

// Validate checks that all fields in AsymmetricEncryptRequest are valid
func (r *AsymmetricEncryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for AsymmetricEncryptRequest: %w", err)
	}
	return nil
}

// AsymmetricEncryptResponse returns the base64 RSA-OAEP ciphertext.
type AsymmetricEncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// AsymmetricDecryptRequest carries a base64 ciphertext and the private key PEM.
type AsymmetricDecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required"`
	PrivateKey string `json:"private_key" validate:"required"`
}

// Validate checks that all fields in AsymmetricDecryptRequest are valid
func (r *AsymmetricDecryptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for AsymmetricDecryptRequest: %w", err)
	}
	return nil
}

// AsymmetricDecryptResponse returns the recovered plaintext.
type AsymmetricDecryptResponse struct {
	Message string `json:"message"`
}

// SignRequest carries a message and the signer's private key PEM.
type SignRequest struct {
	Message    string `json:"message" validate:"required"`
	PrivateKey string `json:"private_key" validate:"required"`
}

// Validate checks that all fields in SignRequest are valid
func (r *SignRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for SignRequest: %w", err)
	}
	return nil
}

// SignResponse returns the signature and the digest computed at sign time.
type SignResponse struct {
	Signature string `json:"signature"`
	Digest    string `json:"digest"`
}

// VerifyRequest carries a message, a base64 signature and the signer's public key PEM.
type VerifyRequest struct {
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	PublicKey string `json:"public_key" validate:"required"`
}

// Validate checks that all fields in VerifyRequest are valid
func (r *VerifyRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for VerifyRequest: %w", err)
	}
	return nil
}

// VerifyResponse reports validity and the verify-time digest as independent outcomes.
// Digest equality with the sign-time digest is a display aid, not a security check.
type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	Digest string `json:"digest"`
}

// DigestRequest carries a message to hash.
type DigestRequest struct {
	Message string `json:"message" validate:"required"`
}

// Validate checks that all fields in DigestRequest are valid
func (r *DigestRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DigestRequest: %w", err)
	}
	return nil
}

// DigestResponse returns the lowercase hex SHA-256 digest.
type DigestResponse struct {
	Digest string `json:"digest"`
}
