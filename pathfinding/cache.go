package pathfinding

import (
	"fmt"
	"sync"
	"sync/atomic"

	"elbow/core"
)

// cacheKey identifies a routing request.
type cacheKey struct {
	Start, End core.Point
}

// RouteCache memoizes Plan results by endpoint pair. When full, the oldest
// entry is evicted first. It is safe for concurrent use.
type RouteCache struct {
	mu       sync.RWMutex
	entries  map[cacheKey]Result
	order    []cacheKey // insertion order, oldest first
	capacity int

	hits, misses, evictions atomic.Int64
}

// NewRouteCache creates a cache holding at most capacity routes. A capacity
// of zero or less means unbounded.
func NewRouteCache(capacity int) *RouteCache {
	return &RouteCache{
		entries:  make(map[cacheKey]Result),
		capacity: capacity,
	}
}

// Get returns the cached result for start to end. The result's points are a
// copy the caller may modify.
func (rc *RouteCache) Get(start, end core.Point) (Result, bool) {
	rc.mu.RLock()
	result, found := rc.entries[cacheKey{start, end}]
	rc.mu.RUnlock()

	if !found {
		rc.misses.Add(1)
		return Result{}, false
	}
	rc.hits.Add(1)
	result.Points = clonePoints(result.Points)
	return result, true
}

// Put caches result for start to end. Replacing an existing entry keeps its
// place in the eviction order.
func (rc *RouteCache) Put(start, end core.Point, result Result) {
	result.Points = clonePoints(result.Points)
	key := cacheKey{start, end}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if _, exists := rc.entries[key]; !exists {
		if rc.capacity > 0 && len(rc.entries) >= rc.capacity {
			oldest := rc.order[0]
			rc.order = rc.order[1:]
			delete(rc.entries, oldest)
			rc.evictions.Add(1)
		}
		rc.order = append(rc.order, key)
	}
	rc.entries[key] = result
}

// Clear empties the cache and resets its counters.
func (rc *RouteCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.entries = make(map[cacheKey]Result)
	rc.order = nil
	rc.hits.Store(0)
	rc.misses.Store(0)
	rc.evictions.Store(0)
}

// CacheStats is a snapshot of RouteCache counters.
type CacheStats struct {
	Hits, Misses, Evictions int64
	Size, Capacity          int
}

// HitRate returns hits as a percentage of lookups.
func (s CacheStats) HitRate() float64 {
	if total := s.Hits + s.Misses; total > 0 {
		return float64(s.Hits) / float64(total) * 100
	}
	return 0
}

func (s CacheStats) String() string {
	return fmt.Sprintf("RouteCache[size=%d/%d, hits=%d, misses=%d, hitRate=%.1f%%, evictions=%d]",
		s.Size, s.Capacity, s.Hits, s.Misses, s.HitRate(), s.Evictions)
}

// Stats returns the current counters.
func (rc *RouteCache) Stats() CacheStats {
	rc.mu.RLock()
	size := len(rc.entries)
	rc.mu.RUnlock()

	return CacheStats{
		Hits:      rc.hits.Load(),
		Misses:    rc.misses.Load(),
		Evictions: rc.evictions.Load(),
		Size:      size,
		Capacity:  rc.capacity,
	}
}

// Planner plans a connector between two points.
type Planner interface {
	Plan(start, end core.Point) (Result, error)
}

// CachedRouter is a Planner that consults a RouteCache before its Router.
type CachedRouter struct {
	router *Router
	cache  *RouteCache
}

// NewCachedRouter wraps router with a cache of cacheSize routes.
func NewCachedRouter(router *Router, cacheSize int) *CachedRouter {
	return &CachedRouter{
		router: router,
		cache:  NewRouteCache(cacheSize),
	}
}

// Plan routes start to end, using the cache when possible. Errors are not
// cached.
func (cr *CachedRouter) Plan(start, end core.Point) (Result, error) {
	if result, found := cr.cache.Get(start, end); found {
		return result, nil
	}

	result, err := cr.router.Plan(start, end)
	if err != nil {
		return result, err
	}

	cr.cache.Put(start, end, result)
	return result, nil
}

// ClearCache empties the cache.
func (cr *CachedRouter) ClearCache() {
	cr.cache.Clear()
}

// CacheStats returns the cache counters.
func (cr *CachedRouter) CacheStats() CacheStats {
	return cr.cache.Stats()
}

func clonePoints(points []core.Point) []core.Point {
	if points == nil {
		return nil
	}
	return append([]core.Point(nil), points...)
}
