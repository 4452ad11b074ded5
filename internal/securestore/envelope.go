package securestore

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/securestore/internal/cryptox"
)

// Envelope is the persisted form of every item. The JSON field names are
// part of the on-device format and must not change.
type Envelope struct {
	Value     string `json:"value"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

func newEnvelope(value string, writtenAt int64) Envelope {
	return Envelope{Value: value, Hash: cryptox.Digest(value), Timestamp: writtenAt}
}

// Valid reports whether Hash matches the digest of Value.
func (e Envelope) Valid() bool {
	return subtle.ConstantTimeCompare([]byte(e.Hash), []byte(cryptox.Digest(e.Value))) == 1
}

func decodeEnvelope(raw []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", errMalformedEnvelope, err)
	}
	return e, nil
}
