package sizer

import (
	"path/filepath"
	"testing"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache()

	if _, ok := c.Get("/data/projects"); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	c.Put("/data/projects", 1234)
	size, ok := c.Get("/data/projects")
	if !ok || size != 1234 {
		t.Fatalf("Get() = (%d, %v), want (1234, true)", size, ok)
	}

	c.Put("/data/projects", 99)
	size, _ = c.Get("/data/projects")
	if size != 99 {
		t.Fatalf("Get() after overwrite = %d, want 99", size)
	}
}

func TestCacheGetCleansPath(t *testing.T) {
	c := NewCache()
	c.Put(filepath.Join("/data", "projects"), 7)

	if size, ok := c.Get("/data/projects/"); !ok || size != 7 {
		t.Fatalf("Get() with trailing separator = (%d, %v), want (7, true)", size, ok)
	}
}

func TestCacheInvalidateAncestorChain(t *testing.T) {
	c := NewCache()
	c.Put("/data", 1000)
	c.Put("/data/projects", 600)
	c.Put("/data/projects/app", 300)
	c.Put("/data/music", 400)
	c.Put("/", 5000)

	c.Invalidate("/data/projects/app")

	for _, path := range []string{"/data/projects/app", "/data/projects", "/data", "/"} {
		if _, ok := c.Get(path); ok {
			t.Errorf("%s still cached after invalidation", path)
		}
	}

	// Siblings of the invalidated path keep their entries.
	if size, ok := c.Get("/data/music"); !ok || size != 400 {
		t.Errorf("sibling /data/music = (%d, %v), want (400, true)", size, ok)
	}
}

func TestCacheInvalidateDropsSubtree(t *testing.T) {
	c := NewCache()
	c.Put("/data/projects", 600)
	c.Put("/data/projects/app", 300)
	c.Put("/data/projects/app/src", 100)
	c.Put("/data/projectsarchive", 50)

	c.Invalidate("/data/projects")

	for _, path := range []string{"/data/projects", "/data/projects/app", "/data/projects/app/src"} {
		if _, ok := c.Get(path); ok {
			t.Errorf("%s still cached after subtree invalidation", path)
		}
	}

	// Prefix matching is component-wise, not string-wise.
	if _, ok := c.Get("/data/projectsarchive"); !ok {
		t.Error("/data/projectsarchive dropped, but it is not under /data/projects")
	}
}

func TestCacheLen(t *testing.T) {
	c := NewCache()
	c.Put("/a", 1)
	c.Put("/b", 2)
	c.Put("/a", 3)

	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}
