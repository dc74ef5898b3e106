package crypto

// AESKeySize is the fixed AES key size in bytes (AES-256).
const AESKeySize = 32

// GCMNonceSize is the fixed AES-GCM nonce size in bytes (96 bits).
const GCMNonceSize = 12

// GCMTagSize is the AES-GCM authentication tag size in bytes (128 bits). The tag is
// appended to the ciphertext per GCM convention.
const GCMTagSize = 16

// RSAKeySize is the fixed RSA modulus size in bits for both encryption and signing pairs.
const RSAKeySize = 4096

// RSAPublicExponent is the fixed RSA public exponent.
const RSAPublicExponent = 65537

// SHA256Size is the size in bytes of a SHA-256 digest.
const SHA256Size = 32

// PSSSaltLength is the fixed RSA-PSS salt length in bytes. Sign and verify must agree on
// it, or verification always fails.
const PSSSaltLength = 32

// MaxOAEPMessageSize is the largest message RSA-OAEP can encrypt with the fixed modulus
// and SHA-256: modulusBytes - 2*hashLen - 2.
const MaxOAEPMessageSize = RSAKeySize/8 - 2*SHA256Size - 2

// BundleSeparator joins the ciphertext and nonce fields of a symmetric bundle. Standard
// base64 never emits it, so splitting on it is unambiguous.
const BundleSeparator = "."
