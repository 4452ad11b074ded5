// Package securestore implements the integrity-checked, expiring local
// secret store behind the mobile client's session, payment token and
// settings state.
//
// # Overview
//
// A Store wraps a vault.Vault (encrypted, app-private key/value storage) and
// adds:
//  1. An integrity envelope. Every value is written as
//     {"value": ..., "hash": sha256hex(value), "timestamp": epochMillis}.
//     A hash mismatch on read means the entry was corrupted or tampered
//     with; it is deleted and reported as absent.
//  2. Lazy expiration. Any entry older than the generic TTL (30 days by
//     default) is deleted on read. The user session also expires after the
//     session TTL (24 hours by default), measured from its login time and
//     checked separately from the generic TTL.
//  3. Domain helpers for the fixed keys user_session, payment_token,
//     biometric_enabled and app_settings.
//
// # Error Handling
//
// Writes return errors wrapping ErrWriteFailed; a write the caller believes
// succeeded must actually be persisted. Reads are total: read failures,
// malformed data, integrity failures and expiry all surface as "absent".
//
// # Concurrency
//
// The Store adds no locking. Concurrent writes to one key are
// last-write-wins as provided by the vault; callers needing ordering must
// serialize their own calls. There are no background sweeps.
package securestore
