package types

import "time"

// Category classifies how expendable a filesystem entry is.
type Category int

const (
	Unknown Category = iota
	MustKeep
	System
	Regular
	Disposable
)

func (c Category) String() string {
	switch c {
	case MustKeep:
		return "Must Keep"
	case System:
		return "System"
	case Regular:
		return "Regular"
	case Disposable:
		return "Disposable"
	default:
		return "Unknown"
	}
}

// SizeState says how far along a directory size computation is. Files are
// always SizeResolved; directories start SizePending and flip to
// SizeResolved when the background walk completes. A resolved size of zero
// therefore really means an empty directory, not "still computing".
type SizeState int

const (
	SizeUnresolved SizeState = iota
	SizePending
	SizeResolved
)

// Entry is a single file or directory shown in a listing.
type Entry struct {
	Path       string
	Name       string
	IsDir      bool
	Size       int64
	SizeState  SizeState
	ChildCount int // immediate children for directories, -1 if unknown
	ModTime    time.Time
	Category   Category
	Usefulness float64 // 0-100 score
}

// SortColumn selects which listing column drives ordering.
type SortColumn int

const (
	SortByName SortColumn = iota
	SortBySize
	SortByCategory
	SortByUsefulness
)

func (c SortColumn) String() string {
	switch c {
	case SortByName:
		return "Name"
	case SortBySize:
		return "Size"
	case SortByCategory:
		return "Category"
	default:
		return "Usefulness"
	}
}

// SortDirection is the ordering direction for the active column.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Disk describes one mounted volume.
type Disk struct {
	Filesystem string
	MountPoint string
	Total      int64
	Used       int64
	Available  int64
}

// UsedPercent returns the used fraction of the volume as 0-100.
func (d Disk) UsedPercent() float64 {
	if d.Total <= 0 {
		return 0
	}
	return float64(d.Used) / float64(d.Total) * 100
}

// Messages

type DisksLoadedMsg struct {
	Disks []Disk
	Err   error
}

type DeleteCompleteMsg struct {
	Path  string
	Freed int64
	Err   error
}

type TickMsg time.Time

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }
