package sizer

import (
	"os"
	"path/filepath"
	"strings"
)

// Cache maps a directory path to its last completed aggregate size. A path
// is present only after a computation finished; absence means "unknown",
// not zero. The cache holds no computation logic and no lock: it is
// mutated exclusively from the program's Update loop.
type Cache struct {
	sizes map[string]int64
}

func NewCache() *Cache {
	return &Cache{sizes: make(map[string]int64)}
}

// Get returns the cached aggregate size for path.
func (c *Cache) Get(path string) (int64, bool) {
	size, ok := c.sizes[filepath.Clean(path)]
	return size, ok
}

// Put inserts or overwrites the aggregate size for path.
func (c *Cache) Put(path string, size int64) {
	c.sizes[filepath.Clean(path)] = size
}

// Len returns the number of cached directories.
func (c *Cache) Len() int {
	return len(c.sizes)
}

// Invalidate removes path, every strict ancestor of path up to the root,
// and any cached descendant of path. Deleting a descendant changes the
// aggregate of every containing directory, so the whole ancestor chain
// must be recomputed; unrelated siblings keep their entries.
func (c *Cache) Invalidate(path string) {
	path = filepath.Clean(path)
	delete(c.sizes, path)

	prefix := path + string(os.PathSeparator)
	for p := range c.sizes {
		if strings.HasPrefix(p, prefix) {
			delete(c.sizes, p)
		}
	}

	for {
		parent := filepath.Dir(path)
		if parent == path {
			return
		}
		delete(c.sizes, parent)
		path = parent
	}
}
