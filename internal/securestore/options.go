package securestore

import (
	"time"

	"github.com/dmitrijs2005/securestore/internal/logging"
)

const (
	DefaultGenericTTL = 30 * 24 * time.Hour
	DefaultSessionTTL = 24 * time.Hour
)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for tamper, expiry and failure reports.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGenericTTL sets the maximum age of any entry. Non-positive values are
// ignored.
func WithGenericTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.genericTTL = d
		}
	}
}

// WithSessionTTL sets the maximum session age measured from login.
// Non-positive values are ignored.
func WithSessionTTL(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.sessionTTL = d
		}
	}
}

// WithNamespace prefixes every vault key with ns and a dot. The default empty
// namespace keeps the persisted keys exactly as named.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		s.namespace = ns
	}
}
