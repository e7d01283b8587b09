// Package statestore holds pending OAuth state tokens between the initiate
// and callback steps of the login flow. Entries are single-use and expire
// after a TTL so the store cannot grow unbounded.
package statestore

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a login attempt may sit between initiate and
// callback.
const DefaultTTL = 10 * time.Minute

// Entry is what the orchestrator stashes under a state token.
type Entry struct {
	RedirectURI string    `json:"redirect_uri"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is the transient key-value store behind the OAuth handshake.
// Take removes the entry it returns: under concurrent callbacks with the
// same state, exactly one caller observes ok == true.
type Store interface {
	Put(ctx context.Context, state string, entry Entry, ttl time.Duration) error
	Take(ctx context.Context, state string) (Entry, bool, error)
	Close() error
}
