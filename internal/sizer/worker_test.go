package sizer

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestComputeSizeDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 100)

	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "b.bin"), 200)

	deep := filepath.Join(sub, "deep")
	if err := os.Mkdir(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(deep, "c.bin"), 400)

	tests := []struct {
		maxDepth int
		want     int64
	}{
		{0, 100}, // files directly under root only
		{1, 300},
		{2, 700},
		{DefaultMaxDepth, 700},
	}

	for _, tt := range tests {
		if got := ComputeSize(root, tt.maxDepth); got != tt.want {
			t.Errorf("ComputeSize(root, %d) = %d, want %d", tt.maxDepth, got, tt.want)
		}
	}
}

func TestComputeSizeSkipsVolatileDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 100)

	trash := filepath.Join(root, ".Trash")
	if err := os.Mkdir(trash, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(trash, "junk.bin"), 9000)

	if got := ComputeSize(root, 2); got != 100 {
		t.Fatalf("ComputeSize() = %d, want 100 (.Trash must be skipped)", got)
	}
}

func TestComputeSizeMissingPath(t *testing.T) {
	if got := ComputeSize(filepath.Join(t.TempDir(), "nope"), 2); got != 0 {
		t.Fatalf("ComputeSize(missing) = %d, want 0", got)
	}
}

func TestComputeSizeEmptyDir(t *testing.T) {
	if got := ComputeSize(t.TempDir(), 2); got != 0 {
		t.Fatalf("ComputeSize(empty) = %d, want 0", got)
	}
}

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{1, 2, 3},
		{0, 0, 0},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64 - 5, 10, math.MaxInt64},
		{math.MaxInt64, 0, math.MaxInt64},
	}

	for _, tt := range tests {
		if got := saturatingAdd(tt.a, tt.b); got != tt.want {
			t.Errorf("saturatingAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
