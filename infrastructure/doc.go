// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, sentiment scoring, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger built on sirupsen/logrus
// - sentiment/vader: VADER polarity scorer built on jonreiter/govader
//
// Infrastructure components are pluggable behind the core interfaces,
// accept configuration objects, and include retries, timeouts, and
// error handling where the underlying concern needs them.
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(30 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// All cache backends return ErrCacheMiss-style errors on absent keys so
// callers can treat a miss as a signal to recompute, never as a failure.
package infrastructure
