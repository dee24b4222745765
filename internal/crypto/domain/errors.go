package domain

import (
	"github.com/allisson/credvault/internal/errors"
)

// Cryptographic operation error definitions.
var (
	// ErrEncryptionFailed indicates the root key keeper could not encrypt the payload.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed indicates a decryption or deserialization failure.
	//
	// This error can occur due to:
	//   - Ciphertext has been tampered with (authentication failure)
	//   - The root key has changed since the data was written
	//   - Corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.New("decryption failed")
)
