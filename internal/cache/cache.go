package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for verdict caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// CacheKey generates a cache key from normalized example text
func CacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "check-examples:v1:" + hex.EncodeToString(hash[:])
}

// Nop is a Cache that never stores anything
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)               { return nil, false }
func (Nop) Set(string, []byte, time.Duration) error { return nil }
func (Nop) Delete(string) error                     { return nil }
