// Package browser builds the entry listings shown for a directory:
// enumerate children, classify each one, and resolve directory sizes
// through the aggregation coordinator.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goyan/diskdash/internal/classify"
	"github.com/goyan/diskdash/internal/sizer"
	"github.com/goyan/diskdash/internal/types"
)

// Lister reads directories into classified, size-annotated entries.
type Lister struct {
	coord *sizer.Coordinator
}

func NewLister(coord *sizer.Coordinator) *Lister {
	return &Lister{coord: coord}
}

// Read enumerates the immediate children of dir. Enumeration happens once
// per navigation, not per tick. File sizes come straight from metadata;
// directory sizes go through the coordinator and may come back pending.
// Children that cannot be stat'd are kept with zero size rather than
// dropped.
func (l *Lister) Read(dir string) ([]types.Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	entries := make([]types.Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		e := types.Entry{
			Path:       path,
			Name:       child.Name(),
			IsDir:      child.IsDir(),
			ChildCount: -1,
		}
		if info, err := child.Info(); err == nil {
			e.ModTime = info.ModTime()
			if !e.IsDir {
				e.Size = info.Size()
				e.SizeState = types.SizeResolved
			}
		}
		if e.IsDir {
			e.ChildCount = countChildren(path)
			e.Size, e.SizeState = l.coord.ResolveSize(path)
		}
		e.Category, e.Usefulness = classify.Classify(path, e.Name, e.IsDir, e.Size)
		entries = append(entries, e)
	}
	return entries, nil
}

// countChildren reports the number of immediate children, so an empty
// directory can be shown as such before its aggregation completes.
func countChildren(dir string) int {
	children, err := os.ReadDir(dir)
	if err != nil {
		return -1
	}
	return len(children)
}

// ApplySizes folds drained coordinator results into a listing and
// re-derives the affected classifications, since some scores grade on
// size. It reports whether anything changed so the caller knows to
// re-filter and re-sort.
func ApplySizes(entries []types.Entry, resolved []sizer.Resolved) bool {
	changed := false
	for _, r := range resolved {
		for i := range entries {
			if entries[i].Path != r.Path {
				continue
			}
			entries[i].Size = r.Size
			entries[i].SizeState = types.SizeResolved
			entries[i].Category, entries[i].Usefulness = classify.ClassifyEntry(entries[i])
			changed = true
		}
	}
	return changed
}

// Filter returns the entries whose name or path contains query,
// case-insensitively. An empty query returns a copy of the full listing.
func Filter(entries []types.Entry, query string) []types.Entry {
	if query == "" {
		return append([]types.Entry(nil), entries...)
	}
	query = strings.ToLower(query)
	var out []types.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Path), query) {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders a listing in place. Directories always sort before files;
// within each group the active column decides, with name as tiebreak so
// refreshes keep a stable order.
func Sort(entries []types.Entry, column types.SortColumn, direction types.SortDirection) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}

		var less, equal bool
		switch column {
		case types.SortByName:
			less = a.Name < b.Name
			equal = a.Name == b.Name
		case types.SortBySize:
			less = a.Size < b.Size
			equal = a.Size == b.Size
		case types.SortByCategory:
			less = a.Category < b.Category
			equal = a.Category == b.Category
		default:
			less = a.Usefulness < b.Usefulness
			equal = a.Usefulness == b.Usefulness
		}
		if equal {
			return a.Name < b.Name
		}
		if direction == types.Descending {
			return !less
		}
		return less
	})
}
