package sizer

import (
	"math"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxDepth caps the aggregation recursion. Full recursive accuracy
// is traded for bounded worst-case latency: a tree can be arbitrarily deep
// and slow media exist.
const DefaultMaxDepth = 2

// OS-reserved trees that are skipped during aggregation. Recursing into
// them is slow, needs privileges, or double-counts volatile data.
var volatileDirNames = map[string]bool{
	"$recycle.bin":              true,
	"system volume information": true,
	".fseventsd":                true,
	".spotlight-v100":           true,
	".documentrevisions-v100":   true,
	".temporaryitems":           true,
	".trash":                    true,
	".trashes":                  true,
	"lost+found":                true,
	"proc":                      true,
}

// ComputeSize returns the total bytes under path, recursing at most
// maxDepth directory levels. At depth zero only the immediate file
// children are summed. Unreadable entries and subtrees contribute zero;
// a single bad entry never fails the whole walk.
func ComputeSize(path string, maxDepth int) int64 {
	children, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, child := range children {
		if child.IsDir() {
			if maxDepth <= 0 {
				continue
			}
			if volatileDirNames[strings.ToLower(child.Name())] {
				continue
			}
			total = saturatingAdd(total, ComputeSize(filepath.Join(path, child.Name()), maxDepth-1))
			continue
		}
		info, err := child.Info()
		if err != nil {
			continue // skip entries we can't stat
		}
		total = saturatingAdd(total, info.Size())
	}
	return total
}

// saturatingAdd sums two non-negative sizes, clamping at MaxInt64 instead
// of wrapping.
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
