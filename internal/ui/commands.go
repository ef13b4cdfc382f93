package ui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goyan/diskdash/internal/disk"
	"github.com/goyan/diskdash/internal/types"
)

// openDirMsg asks the update loop to enter a directory. Listing a
// directory's immediate children is cheap enough to do on the update loop
// itself; only size aggregation runs in the background.
type openDirMsg struct {
	path string
}

// drainInterval paces the per-tick drain of completed size computations.
const drainInterval = 120 * time.Millisecond

func loadDisks() tea.Cmd {
	return func() tea.Msg {
		disks, err := disk.List()
		return types.DisksLoadedMsg{Disks: disks, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(drainInterval, func(t time.Time) tea.Msg {
		return types.TickMsg(t)
	})
}

// deleteEntry removes the entry from disk off the update loop. Freed
// carries the last known size so the status line can report it.
func deleteEntry(e types.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := os.RemoveAll(e.Path); err != nil {
			return types.DeleteCompleteMsg{Path: e.Path, Err: err}
		}
		var freed int64
		if e.SizeState == types.SizeResolved {
			freed = e.Size
		}
		return types.DeleteCompleteMsg{Path: e.Path, Freed: freed}
	}
}
