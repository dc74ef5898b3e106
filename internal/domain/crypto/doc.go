// Package crypto defines the core contracts, value types and error taxonomy for the three
// sandbox workflows: symmetric authenticated encryption, public-key encryption, and
// digital signatures with message-digest comparison.
package crypto
