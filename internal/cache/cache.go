package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching rendered briefs
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from article text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "metanewsx:v1:" + hex.EncodeToString(hash[:])
}
