package browser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goyan/diskdash/internal/sizer"
	"github.com/goyan/diskdash/internal/types"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), make([]byte, 500), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "stuff")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "blob.bin"), make([]byte, 2000), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func findEntry(t *testing.T, entries []types.Entry, name string) types.Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not in listing", name)
	return types.Entry{}
}

func TestListerRead(t *testing.T) {
	root := fixtureDir(t)
	l := NewLister(sizer.NewCoordinator(2))

	entries, err := l.Read(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	file := findEntry(t, entries, "notes.txt")
	if file.IsDir {
		t.Error("notes.txt listed as directory")
	}
	if file.Size != 500 || file.SizeState != types.SizeResolved {
		t.Errorf("notes.txt size = (%d, %v), want (500, SizeResolved)", file.Size, file.SizeState)
	}
	// The fixture lives under the test temp root, so the exact score
	// depends on the path; only completeness is asserted here.
	if file.Category == types.Unknown {
		t.Error("notes.txt left unclassified")
	}

	dir := findEntry(t, entries, "stuff")
	if !dir.IsDir {
		t.Fatal("stuff not listed as directory")
	}
	if dir.SizeState != types.SizePending {
		t.Errorf("stuff SizeState = %v, want SizePending on first read", dir.SizeState)
	}
	if dir.ChildCount != 1 {
		t.Errorf("stuff ChildCount = %d, want 1", dir.ChildCount)
	}
}

func TestListerReadMissingDir(t *testing.T) {
	l := NewLister(sizer.NewCoordinator(2))
	if _, err := l.Read(filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Fatal("Read(missing) returned nil error")
	}
}

func TestApplySizes(t *testing.T) {
	root := fixtureDir(t)
	coord := sizer.NewCoordinator(2)
	l := NewLister(coord)

	entries, err := l.Read(root)
	if err != nil {
		t.Fatal(err)
	}

	var resolved []sizer.Resolved
	deadline := time.Now().Add(2 * time.Second)
	for len(resolved) == 0 && time.Now().Before(deadline) {
		resolved = coord.Drain()
		time.Sleep(5 * time.Millisecond)
	}
	if len(resolved) == 0 {
		t.Fatal("coordinator never delivered the directory size")
	}

	if !ApplySizes(entries, resolved) {
		t.Fatal("ApplySizes reported no change")
	}
	dir := findEntry(t, entries, "stuff")
	if dir.Size != 2000 || dir.SizeState != types.SizeResolved {
		t.Fatalf("stuff = (%d, %v), want (2000, SizeResolved)", dir.Size, dir.SizeState)
	}

	// Unknown paths change nothing.
	if ApplySizes(entries, []sizer.Resolved{{Path: "/elsewhere", Size: 1}}) {
		t.Error("ApplySizes changed entries for a path outside the listing")
	}
}

func TestFilter(t *testing.T) {
	entries := []types.Entry{
		{Name: "Notes.txt", Path: "/data/Notes.txt"},
		{Name: "music", Path: "/data/music"},
		{Name: "report.pdf", Path: "/data/docs/report.pdf"},
	}

	if got := Filter(entries, ""); len(got) != 3 {
		t.Fatalf("empty query kept %d entries, want 3", len(got))
	}
	if got := Filter(entries, "notes"); len(got) != 1 || got[0].Name != "Notes.txt" {
		t.Fatalf("Filter(\"notes\") = %v", got)
	}
	// Path components match too.
	if got := Filter(entries, "docs"); len(got) != 1 || got[0].Name != "report.pdf" {
		t.Fatalf("Filter(\"docs\") = %v", got)
	}
	if got := Filter(entries, "zzz"); len(got) != 0 {
		t.Fatalf("Filter(\"zzz\") kept %d entries, want 0", len(got))
	}
}

func TestSortDirsFirst(t *testing.T) {
	entries := []types.Entry{
		{Name: "b.txt", Size: 10},
		{Name: "adir", IsDir: true, Size: 99999},
		{Name: "a.txt", Size: 20},
	}

	Sort(entries, types.SortBySize, types.Ascending)

	if !entries[0].IsDir {
		t.Fatalf("first entry %q is not a directory", entries[0].Name)
	}
	if entries[1].Name != "b.txt" || entries[2].Name != "a.txt" {
		t.Fatalf("files not sorted by size ascending: %q, %q", entries[1].Name, entries[2].Name)
	}
}

func TestSortDirectionAndTiebreak(t *testing.T) {
	entries := []types.Entry{
		{Name: "b", Usefulness: 50},
		{Name: "a", Usefulness: 50},
		{Name: "c", Usefulness: 90},
	}

	Sort(entries, types.SortByUsefulness, types.Descending)
	if entries[0].Name != "c" {
		t.Fatalf("descending sort put %q first, want c", entries[0].Name)
	}
	// Equal scores fall back to name order regardless of direction.
	if entries[1].Name != "a" || entries[2].Name != "b" {
		t.Fatalf("tiebreak order = %q, %q, want a, b", entries[1].Name, entries[2].Name)
	}

	Sort(entries, types.SortByName, types.Ascending)
	if entries[0].Name != "a" || entries[1].Name != "b" || entries[2].Name != "c" {
		t.Fatalf("name sort order = %q, %q, %q", entries[0].Name, entries[1].Name, entries[2].Name)
	}
}
