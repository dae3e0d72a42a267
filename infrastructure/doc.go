// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as session storage, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory session cache backed by go-cache
// - cache/redis: Redis-based session cache shared across instances
// - cache/sqlite: File-based session cache that survives restarts
// - http/standard: Standard library HTTP client with request logging
// - logger/structured: logrus logger with optional lumberjack rotation
// - metrics/prometheus: Prometheus counters for fetch and section activity
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "session:abc", data, 30*time.Minute)
//	value, err := cache.Get(ctx, "session:abc")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:   "localhost:6379",
//	    KeyPrefix: "course-search:",
//	})
//
// A miss is reported as *errors.NotFoundError by every implementation.
//
// # HTTP Client
//
// The HTTP client sends each request once. It never retries:
//
//	client := standard.NewStandardHTTPClient(10*time.Second, standard.WithLogger(logger))
//	resp, err := client.Get(ctx, "https://catalog.example.com/api/courses?page=1")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Config{Level: "info", Format: "json"})
//	logger.Info("Session created", map[string]interface{}{
//	    "session": id,
//	})
package infrastructure
