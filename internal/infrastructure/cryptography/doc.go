// Package cryptography implements the AES-GCM and RSA processors behind the sandbox
// workflows, using the fixed parameter set defined in the crypto domain package.
package cryptography
