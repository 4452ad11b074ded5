package vault

import "context"

// Vault is the scoped secret storage the store writes envelopes into.
type Vault interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// BatchSetter is implemented by vaults that can write several keys
// atomically. Sealed uses it to persist its salt and verifier together.
type BatchSetter interface {
	SetMany(ctx context.Context, values map[string][]byte) error
}

// Closer is implemented by vaults that hold connections.
type Closer interface {
	Close() error
}
