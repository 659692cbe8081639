package bkash

import (
	"sync"
	"time"
)

// TokenCache holds a single grant token until it expires. The clock is
// injected so expiry can be tested without sleeping.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func NewTokenCache(ttl time.Duration, now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}
	return &TokenCache{ttl: ttl, now: now}
}

// Get returns the cached token if it is still fresh.
func (c *TokenCache) Get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || !c.now().Before(c.expiresAt) {
		return "", false
	}
	return c.token, true
}

// Set stores a freshly granted token and starts its TTL.
func (c *TokenCache) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = c.now().Add(c.ttl)
}

// Clear drops the cached token, forcing the next Get to miss.
func (c *TokenCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}
