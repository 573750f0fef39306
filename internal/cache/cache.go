package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized knowledge-source responses so repeated entity
// lookups within and across analyses stay cheap
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a stable cache key from the lookup kind and subject
// (e.g. Key("wikidata", "Q937"))
func Key(kind, subject string) string {
	hash := sha256.Sum256([]byte(kind + ":" + subject))
	return "crosscheck:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}

// Nop is a cache that stores nothing, used when caching is disabled
type Nop struct{}

func (Nop) Get(string) ([]byte, bool)                 { return nil, false }
func (Nop) Set(string, []byte, time.Duration) error   { return nil }
func (Nop) Delete(string) error                       { return nil }
func (Nop) Clear() error                              { return nil }
