package crypto

// KeyPair holds a PEM-framed RSA key pair. Both halves are opaque strings to the rest of
// the system; a user may replace either half wholesale and the edit is only validated at
// the next encrypt, decrypt, sign or verify call.
type KeyPair struct {
	// PublicKeyPEM is the SPKI-encoded public key, base64 body framed with literal
	// BEGIN/END PUBLIC KEY markers.
	PublicKeyPEM string

	// PrivateKeyPEM is the PKCS#8-encoded private key, framed the same way with
	// PRIVATE KEY markers.
	PrivateKeyPEM string
}

// SymmetricEncryptResult bundles the wire-encoded ciphertext and the base64 key that
// produced it.
type SymmetricEncryptResult struct {
	// Bundle is base64(ciphertext||tag) "." base64(nonce). The two-field dot-joined
	// format is an invariant of the wire encoding.
	Bundle string

	// Key is the base64 encoding of the 32-byte key, whether random or derived.
	Key string
}

// SignResult carries a signature and the digest computed at sign time. The digest is
// informational: users compare it against the verify-time digest to watch a single-bit
// change propagate.
type SignResult struct {
	// Signature is the base64-encoded RSA-PSS signature over the exact message bytes.
	Signature string

	// Digest is the lowercase hex SHA-256 digest of the message.
	Digest string
}

// VerificationResult reports signature validity and the digest recomputed at verify time.
// Digest equality is a pedagogical display aid, not a security check; callers must not
// conflate it with Valid.
type VerificationResult struct {
	Valid  bool
	Digest string
}
