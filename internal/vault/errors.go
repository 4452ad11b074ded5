package vault

import "errors"

var (
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrInvalidKeySize  = errors.New("invalid encryption key size")
	ErrCorruptHeader   = errors.New("vault header is incomplete")
)

// ErrIntegrity is returned by Sealed.Get when a stored ciphertext fails
// authentication: it was truncated, modified or moved to another key.
var ErrIntegrity = errors.New("vault entry failed integrity check")

// ErrReservedKey is returned when a caller addresses one of the keys Sealed
// keeps for its own header.
var ErrReservedKey = errors.New("reserved vault key")
