// Package resource implements the Controller for global limits and governance.
//
// The Controller manages three resource types for placement searches:
//
//   - Memory: Track and limit the memory held by distance caches and candidate
//     chunk buffers (non-blocking, fail-fast)
//   - Concurrency: Limit the number of searches running at the same time
//   - Progress: Token bucket throttling progress reports from long searches
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(cacheBytes); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(cacheBytes)
//
// # Search Limits
//
//	if err := rc.AcquireSearch(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseSearch()
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
