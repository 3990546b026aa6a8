// Package cache persists remote radio directory responses with per-entry TTLs.
//
// Entries are keyed by a deterministic hash over the endpoint and the full
// parameter mapping, so identical logical requests hit the same record. The
// backing file is shared process-wide and survives restarts, which doubles as
// resilience against transient directory API failures.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/radiosan-cli/radiosan/filesystem"
	"github.com/radiosan-cli/radiosan/key"
	"github.com/radiosan-cli/radiosan/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// entry is one cached response envelope with its expiry deadline.
type entry struct {
	Value   json.RawMessage `json:"value"`
	Expires time.Time       `json:"expires"`
}

// store is the serialized format of the whole response cache file.
type store struct {
	Entries map[string]entry `json:"entries"`
}

var (
	mu     sync.RWMutex
	cacher = gache.New[*store](
		&gache.Options{
			Path:       where.Responses(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
)

// Key derives the deterministic cache identifier for an endpoint call.
// url.Values.Encode sorts by key, so parameter insertion order is irrelevant.
func Key(endpoint string, params url.Values) string {
	hash := sha256.Sum256([]byte(endpoint + "?" + params.Encode()))
	return hex.EncodeToString(hash[:])
}

// TTL returns the configured lifetime for newly cached responses.
func TTL() time.Duration {
	days := viper.GetInt(key.CacheTTLDays)
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// Get retrieves a cached response. Expired or unreadable entries read as absent.
func Get(cacheKey string) mo.Option[json.RawMessage] {
	mu.RLock()
	defer mu.RUnlock()

	data, expired, err := cacher.Get()
	if err != nil || expired || data == nil {
		return mo.None[json.RawMessage]()
	}

	e, ok := data.Entries[cacheKey]
	if !ok || time.Now().After(e.Expires) {
		return mo.None[json.RawMessage]()
	}

	return mo.Some(e.Value)
}

// Set persists a response envelope under the given key for the given lifetime.
func Set(cacheKey string, value json.RawMessage, ttl time.Duration) error {
	mu.Lock()
	defer mu.Unlock()

	data, expired, err := cacher.Get()
	if err != nil || expired || data == nil {
		data = &store{Entries: make(map[string]entry)}
	}

	data.Entries[cacheKey] = entry{
		Value:   value,
		Expires: time.Now().Add(ttl),
	}

	return cacher.Set(data)
}

// CollectGarbage prunes expired entries from the backing file.
// Intended to run in the background at application startup.
func CollectGarbage() {
	mu.Lock()
	defer mu.Unlock()

	data, expired, err := cacher.Get()
	if err != nil || expired || data == nil {
		return
	}

	now := time.Now()
	for k, e := range data.Entries {
		if now.After(e.Expires) {
			delete(data.Entries, k)
		}
	}

	_ = cacher.Set(data)
}
