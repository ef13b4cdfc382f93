// Package sizer answers "how big is this directory" without ever blocking
// the interactive loop. A coordinator owns a size cache and an in-flight
// set; cache misses dispatch short-lived background walkers that report
// back over a single channel, drained once per tick.
package sizer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/goyan/diskdash/internal/types"
)

// maxConcurrentWalks bounds simultaneous background walks so a directory
// with hundreds of children cannot flood slow media.
const maxConcurrentWalks = 8

// Resolved is one completed size computation handed back to the caller.
type Resolved struct {
	Path string
	Size int64
}

type result struct {
	path string
	size int64
	gen  uint64
}

// Coordinator orchestrates background size aggregation. It has exclusive
// mutation rights over the cache and the pending set: ResolveSize, Drain
// and Invalidate must all be called from the program's Update loop.
// Workers never touch shared state — the results channel is the single
// concurrency-safe handoff point.
type Coordinator struct {
	cache    *Cache
	pending  map[string]uint64 // path → generation of the in-flight walk
	gen      uint64
	results  chan result
	sem      *semaphore.Weighted
	maxDepth int

	// compute is swapped out by tests to control worker timing.
	compute func(path string, maxDepth int) int64
}

// NewCoordinator returns a coordinator whose walks recurse at most
// maxDepth levels; zero or negative selects DefaultMaxDepth.
func NewCoordinator(maxDepth int) *Coordinator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Coordinator{
		cache:    NewCache(),
		pending:  make(map[string]uint64),
		results:  make(chan result, 64),
		sem:      semaphore.NewWeighted(maxConcurrentWalks),
		maxDepth: maxDepth,
		compute:  ComputeSize,
	}
}

// ResolveSize returns the directory's aggregate size if it is known. On a
// cache miss it dispatches a background walk — unless one is already in
// flight for the same path — and reports SizePending immediately. At most
// one computation per path is ever running.
func (c *Coordinator) ResolveSize(path string) (int64, types.SizeState) {
	path = filepath.Clean(path)
	if size, ok := c.cache.Get(path); ok {
		return size, types.SizeResolved
	}
	if _, ok := c.pending[path]; ok {
		return 0, types.SizePending
	}
	c.gen++
	c.pending[path] = c.gen
	go c.run(path, c.gen)
	return 0, types.SizePending
}

func (c *Coordinator) run(path string, gen uint64) {
	if err := c.sem.Acquire(context.Background(), 1); err != nil {
		return
	}
	defer c.sem.Release(1)
	c.results <- result{path: path, size: c.compute(path, c.maxDepth), gen: gen}
}

// Drain applies every completed computation without blocking and returns
// them so the displayed listing can refresh matching entries. Results
// whose path was invalidated while the walk ran are discarded. Call once
// per tick; while Pending is non-zero another tick should be scheduled so
// results are not left stranded.
func (c *Coordinator) Drain() []Resolved {
	var done []Resolved
	for {
		select {
		case r := <-c.results:
			if gen, ok := c.pending[r.path]; !ok || gen != r.gen {
				continue // stale: invalidated or superseded while in flight
			}
			delete(c.pending, r.path)
			c.cache.Put(r.path, r.size)
			done = append(done, Resolved{Path: r.path, Size: r.size})
		default:
			return done
		}
	}
}

// Pending returns the number of in-flight computations.
func (c *Coordinator) Pending() int {
	return len(c.pending)
}

// Invalidate is the deletion entry point. It drops cached sizes for path,
// its whole ancestor chain and its cached subtree, and forgets in-flight
// work at or under path so any eventual result is discarded at Drain.
func (c *Coordinator) Invalidate(path string) {
	path = filepath.Clean(path)
	c.cache.Invalidate(path)
	delete(c.pending, path)

	prefix := path + string(os.PathSeparator)
	for p := range c.pending {
		if strings.HasPrefix(p, prefix) {
			delete(c.pending, p)
		}
	}
}
