package toolkit

import (
	"context"
	"errors"
	"sync"
)

// SessionCache reuses initialized toolkits across discovery and
// materialization calls, keyed by resolved endpoint URL. Without a cache
// every call re-runs the full SSE handshake; with one, the first caller per
// URL pays it and later callers share the session.
//
// A toolkit whose Initialize fails is not retained, so the next call retries
// from scratch. Close tears down every cached session.
//
// The cache lock is held across Initialize, so first-time dials to different
// URLs serialize. With a handful of gateways per node that is acceptable; a
// per-URL in-flight entry would be needed before sharing one cache across
// many slow gateways.
type SessionCache struct {
	mu       sync.Mutex
	sessions map[string]*Toolkit
}

// NewSessionCache creates an empty cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{sessions: make(map[string]*Toolkit)}
}

// GetOrCreate returns the cached initialized toolkit for url, building and
// initializing one via build on first use.
func (c *SessionCache) GetOrCreate(ctx context.Context, url string, build func(url string) *Toolkit) (*Toolkit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tk, ok := c.sessions[url]; ok {
		return tk, nil
	}

	tk := build(url)
	if err := tk.Initialize(ctx); err != nil {
		return nil, err
	}
	c.sessions[url] = tk
	return tk, nil
}

// Remove closes and forgets the session for url, if any.
func (c *SessionCache) Remove(url string) error {
	c.mu.Lock()
	tk, ok := c.sessions[url]
	delete(c.sessions, url)
	c.mu.Unlock()

	if !ok {
		return nil
	}
	return tk.Close()
}

// Len returns the number of cached sessions.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Close tears down all cached sessions and empties the cache.
func (c *SessionCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for url, tk := range c.sessions {
		if err := tk.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(c.sessions, url)
	}
	return errors.Join(errs...)
}
