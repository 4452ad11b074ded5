// Package vault defines the encrypted key/value primitive that the secure
// store sits on, plus the in-process implementations.
//
// # Contract
//
// A Vault holds at most one value per key. Get returns (nil, nil) for a
// missing key, Delete of a missing key is not an error, and there is no
// enumeration. Concurrent writers to the same key are last-write-wins.
//
// # Implementations
//
//   - Memory:    map guarded by a RWMutex, for tests and the interactive shell.
//   - Sealed:    AES-256-GCM encryption at rest over any other Vault, keyed by
//     an argon2id derivation of a passphrase (see Unlock).
//   - sqlvault:  SQLite / PostgreSQL table (subpackage).
//   - redisvault: Redis strings under a key prefix (subpackage).
package vault
