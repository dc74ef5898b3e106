// Package encoding provides the base64 and PEM framing primitives shared by all
// cryptographic workflows. Key and ciphertext material crosses the host boundary as plain
// text, so the exact framing produced here is part of the external contract.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed indicates input that is not valid base64 or does not carry the expected
// PEM markers.
var ErrMalformed = errors.New("malformed encoding")

// PEM labels used for exported RSA keys.
const (
	PEMLabelPublicKey  = "PUBLIC KEY"
	PEMLabelPrivateKey = "PRIVATE KEY"
)

// ToBase64 encodes raw bytes using standard base64.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 text. Any invalid alphabet or padding fails.
func FromBase64(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return data, nil
}

// FramePEM wraps a base64 body with literal BEGIN/END markers for the given label. The
// body stays on a single line; keys are exchanged between users as plain text and the
// framing must round-trip through UnframePEM byte for byte.
func FramePEM(label string, base64Body string) string {
	return fmt.Sprintf("-----BEGIN %s-----\n%s\n-----END %s-----", label, base64Body, label)
}

// UnframePEM strips the BEGIN/END markers for label and returns the base64 body. The
// markers are matched literally; only the two embedded newlines are tolerated.
func UnframePEM(label string, text string) (string, error) {
	header := fmt.Sprintf("-----BEGIN %s-----\n", label)
	footer := fmt.Sprintf("\n-----END %s-----", label)

	if !strings.HasPrefix(text, header) {
		return "", fmt.Errorf("%w: missing BEGIN %s marker", ErrMalformed, label)
	}
	if len(text) < len(header)+len(footer) || !strings.HasSuffix(text[len(header):], footer) {
		return "", fmt.Errorf("%w: missing END %s marker", ErrMalformed, label)
	}

	body := text[len(header) : len(text)-len(footer)]
	if strings.ContainsAny(body, "\r\n") {
		return "", fmt.Errorf("%w: PEM body must be a single base64 line", ErrMalformed)
	}
	return body, nil
}
