package port

// Cache stores values up to a fixed budget, dropping the least recently
// used ones first. Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)

	// Set stores value under key. Older entries may be evicted.
	Set(key K, value V)

	// Len returns the number of cached entries.
	Len() int
}
