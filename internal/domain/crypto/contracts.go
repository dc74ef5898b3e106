package crypto

import "crypto/rsa"

// SymmetricCipher handles AES-GCM authenticated encryption with either a freshly
// generated random key or a passphrase-derived key.
type SymmetricCipher interface {
	// Encrypt encrypts message under a freshly generated random 256-bit key.
	// It returns the wire bundle together with the base64 key.
	Encrypt(message []byte) (*SymmetricEncryptResult, error)

	// EncryptWithPassphrase derives the key as SHA-256 of the passphrase bytes before
	// encrypting. This is a deliberate simplification, not a proper KDF: no salt, no
	// iteration count. It must stay as-is for compatibility with existing bundles.
	EncryptWithPassphrase(message []byte, passphrase string) (*SymmetricEncryptResult, error)

	// Decrypt authenticates and decrypts a bundle. keyMaterial is either the base64 key
	// returned by Encrypt or, when isPassphrase is set, the passphrase to derive it from.
	// Every failure wraps ErrDecryption; a partial plaintext is never returned.
	Decrypt(bundle string, keyMaterial string, isPassphrase bool) ([]byte, error)
}

// AsymmetricCipher handles RSA-OAEP public-key encryption with PEM-framed key exchange.
type AsymmetricCipher interface {
	// GenerateKeyPair generates a fresh 4096-bit key pair, exported for exchange as
	// PEM-framed SPKI/PKCS#8 text.
	GenerateKeyPair() (*KeyPair, error)

	// Encrypt encrypts message for the holder of publicKeyPEM and returns base64
	// ciphertext. Messages longer than the OAEP capacity fail with ErrMessageTooLong;
	// a malformed key fails with ErrEncoding.
	Encrypt(message []byte, publicKeyPEM string) (string, error)

	// Decrypt decrypts base64 ciphertext with privateKeyPEM. Malformed keys, malformed
	// base64 and OAEP integrity failures all wrap ErrDecryption uniformly.
	Decrypt(ciphertext string, privateKeyPEM string) ([]byte, error)
}

// SignatureService handles RSA-PSS signing and verification plus the independent message
// digest shown to users for tamper comparison.
type SignatureService interface {
	// GenerateKeyPair generates a fresh 4096-bit signing key pair, exported for exchange
	// as PEM-framed SPKI/PKCS#8 text.
	GenerateKeyPair() (*KeyPair, error)

	// Sign signs message with the fixed 32-byte PSS salt and returns the signature
	// together with the message digest computed at sign time.
	Sign(message []byte, privateKeyPEM string) (*SignResult, error)

	// Verify checks signature against message and independently recomputes the digest.
	// Any decoding or primitive failure degrades to Valid=false; an invalid signature is
	// an expected, recoverable outcome, never an error.
	Verify(message []byte, signature string, publicKeyPEM string) *VerificationResult

	// Digest returns the lowercase hex SHA-256 digest of message.
	Digest(message []byte) string
}

// AESProcessor performs raw AES-GCM operations on byte slices. It knows nothing about the
// wire encoding; the symmetric service owns that.
type AESProcessor interface {
	// GenerateKey generates a random 32-byte AES-256 key.
	GenerateKey() ([]byte, error)

	// DeriveKey hashes a passphrase to a fixed 32-byte key via plain SHA-256.
	DeriveKey(passphrase string) []byte

	// Encrypt seals plaintext under key with a fresh 96-bit nonce. It returns the
	// ciphertext with the 128-bit tag appended, and the nonce used.
	Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext with the given nonce and key, verifying the tag.
	Decrypt(ciphertext, nonce, key []byte) ([]byte, error)
}

// RSAProcessor performs raw RSA-OAEP and RSA-PSS operations with the fixed parameter set
// and owns the SPKI/PKCS#8 PEM codec for the keys it generates.
type RSAProcessor interface {
	// GenerateKeys generates a 4096-bit RSA key pair with public exponent 65537.
	GenerateKeys() (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext using RSA-OAEP with SHA-256. Plaintext above the key's
	// OAEP capacity fails with ErrMessageTooLong.
	Encrypt(plaintext []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext with the private key.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign creates an RSA-PSS signature over message with the fixed 32-byte salt.
	Sign(message []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify verifies an RSA-PSS signature. It returns false with an error describing
	// the primitive failure when the signature does not check out.
	Verify(message, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// ExportKeyPair marshals a pair as PEM-framed SPKI (public) and PKCS#8 (private).
	ExportKeyPair(privateKey *rsa.PrivateKey) (*KeyPair, error)

	// ParsePublicKey parses a PEM-framed SPKI public key.
	ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error)

	// ParsePrivateKey parses a PEM-framed PKCS#8 private key.
	ParsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error)
}
