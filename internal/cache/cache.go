// Package cache provides the response cache used by the HTTP layer.
// Entries are keyed by the full parameter set; the calculation core never
// sees the cache, so results stay deterministic.
package cache

// Cache stores serialized schedule responses for identical requests.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
