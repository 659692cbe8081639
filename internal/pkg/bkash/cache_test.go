package bkash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenCache(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	current := base
	cache := NewTokenCache(20*time.Minute, func() time.Time { return current })

	t.Run("empty cache misses", func(t *testing.T) {
		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("fresh token hits", func(t *testing.T) {
		cache.Set("token-1")
		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "token-1", token)
	})

	t.Run("token just before expiry hits", func(t *testing.T) {
		current = base.Add(20*time.Minute - time.Second)
		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "token-1", token)
	})

	t.Run("token at expiry misses", func(t *testing.T) {
		current = base.Add(20 * time.Minute)
		_, ok := cache.Get()
		assert.False(t, ok)
	})

	t.Run("set restarts the ttl", func(t *testing.T) {
		cache.Set("token-2")
		current = current.Add(19 * time.Minute)
		token, ok := cache.Get()
		assert.True(t, ok)
		assert.Equal(t, "token-2", token)
	})

	t.Run("clear forces a miss", func(t *testing.T) {
		cache.Clear()
		_, ok := cache.Get()
		assert.False(t, ok)
	})
}
