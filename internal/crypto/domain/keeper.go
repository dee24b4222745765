// Package domain defines the root key encryption contract for the vault.
//
// The vault does not manage key material itself: credential fields are
// encrypted and decrypted by an external keeper holding a process-wide root
// key. Only the contract matters to the vault (decrypt(encrypt(x)) == x);
// algorithm and nonce handling belong to the keeper.
package domain

import (
	"context"
)

// RootKeyKeeper performs envelope encryption with a process-wide root key.
// *gocloud.dev/secrets.Keeper implements this interface.
type RootKeyKeeper interface {
	// Encrypt encrypts plaintext with the root key.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext produced by Encrypt.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)

	// Close releases resources held by the keeper.
	Close() error
}
