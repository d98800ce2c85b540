// Package links implements the one-time signed-link registry: each issued
// token authorizes at most one upload to one project, optionally until an
// absolute expiry time.
package links

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/shared"
)

// Link is the authorization carried by a token: the project secret it
// resolves to and the caller-chosen response key label.
type Link struct {
	Secret   string
	KeyLabel string
}

type entry struct {
	link      Link
	expiresAt time.Time // zero means no expiry
	timer     *time.Timer
}

// Registry maps one-time tokens to links. All methods are safe for
// concurrent use; Consume is atomic, so two requests racing on the same
// token see at most one success.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry

	// Test seams: now drives lazy expiry checks, afterFunc arms the
	// deferred removal.
	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewRegistry() *Registry {
	return &Registry{
		entries:   make(map[string]*entry),
		now:       time.Now,
		afterFunc: time.AfterFunc,
	}
}

// Issue generates a fresh token for the given link. A positive ttl arms a
// deferred removal and records the absolute expiry; ttl <= 0 means the token
// only dies by consumption. Callers must have resolved the project secret
// beforehand.
func (r *Registry) Issue(secret, keyLabel string, ttl time.Duration) (string, error) {
	token, err := shared.MakeRandString(common.TokenLength)
	if err != nil {
		return "", err
	}

	e := &entry{link: Link{Secret: secret, KeyLabel: keyLabel}}

	r.mu.Lock()
	r.entries[token] = e
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
		// Armed after the insert: an immediate fire must find the entry.
		e.timer = r.afterFunc(ttl, func() { r.remove(token) })
	}
	r.mu.Unlock()

	return token, nil
}

// Resolve looks the token up without consuming it. Expired tokens are
// reported as not found (and dropped).
func (r *Registry) Resolve(token string) (Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookupLocked(token)
	if !ok {
		return Link{}, common.ErrorNotFound
	}
	return e.link, nil
}

// Consume atomically looks the token up and removes it. At most one caller
// ever succeeds for a given token, even under concurrent Consume calls or a
// racing expiry timer.
func (r *Registry) Consume(token string) (Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookupLocked(token)
	if !ok {
		return Link{}, common.ErrorNotFound
	}

	r.dropLocked(token, e)
	return e.link, nil
}

// Len reports the number of live tokens.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// lookupLocked returns the entry for token if it exists and is not expired.
// Expired entries are dropped on sight.
func (r *Registry) lookupLocked(token string) (*entry, bool) {
	e, ok := r.entries[token]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		r.dropLocked(token, e)
		return nil, false
	}
	return e, true
}

func (r *Registry) dropLocked(token string, e *entry) {
	delete(r.entries, token)
	if e.timer != nil {
		e.timer.Stop()
	}
}

// remove is the deferred-expiry action. Firing after consumption is a no-op.
func (r *Registry) remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[token]; ok {
		r.dropLocked(token, e)
	}
}
