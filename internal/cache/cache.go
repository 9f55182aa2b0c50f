// Package cache provides the shared string cache used for prompt-response
// caching and template caching. Values are opaque strings; callers do their
// own serialization. A broken or missing backend degrades to always-miss.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 1e6
	defaultMaxCost     = 1 << 26 // 64MB of cached text
	defaultBufferItems = 64
)

// Cache is a get/set-with-ttl/delete store keyed by string.
type Cache interface {
	Get(key string) (string, bool)
	SetWithTTL(key, value string, ttl time.Duration)
	Delete(key string)
}

// RistrettoCache backs Cache with an in-process ristretto cache.
type RistrettoCache struct {
	cache *ristretto.Cache
}

// NewRistretto creates the default cache backend.
func NewRistretto() (*RistrettoCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoCache{cache: c}, nil
}

func (r *RistrettoCache) Get(key string) (string, bool) {
	v, found := r.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func (r *RistrettoCache) SetWithTTL(key, value string, ttl time.Duration) {
	r.cache.SetWithTTL(key, value, int64(len(value)), ttl)
	// Ristretto admits writes asynchronously; waiting keeps the
	// read-after-write contract callers rely on.
	r.cache.Wait()
}

func (r *RistrettoCache) Delete(key string) {
	r.cache.Del(key)
}

// Close releases the backing cache resources.
func (r *RistrettoCache) Close() {
	r.cache.Close()
}
