package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Every operation failure wraps exactly one of
// these; the host maps them to plain failure messages and never treats them as fatal,
// since all operations are driven by user input and failures are expected outcomes.
var (
	// ErrEncoding indicates malformed base64 or PEM structure in user-supplied input.
	ErrEncoding = errors.New("malformed encoding")

	// ErrEncryption indicates an encryption failure.
	ErrEncryption = errors.New("encryption failed")

	// ErrMessageTooLong indicates a message exceeding the RSA-OAEP capacity of the fixed
	// modulus. It wraps ErrEncryption.
	ErrMessageTooLong = fmt.Errorf("%w: message exceeds RSA-OAEP capacity", ErrEncryption)

	// ErrDecryption covers every decryption failure: malformed input, authentication tag
	// failure, OAEP padding failure. A tampered ciphertext and a wrong key are
	// deliberately indistinguishable.
	ErrDecryption = errors.New("decryption failed")
)
