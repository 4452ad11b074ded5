package securestore

import "errors"

var (
	// ErrWriteFailed wraps every failure to persist an item.
	ErrWriteFailed = errors.New("failed to store secure data")

	// ErrInvalidKey is returned for an empty storage key.
	ErrInvalidKey = errors.New("invalid storage key")

	errMalformedEnvelope = errors.New("malformed envelope")
	errMalformedSession  = errors.New("malformed user session")
)
