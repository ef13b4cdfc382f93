package ui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goyan/diskdash/internal/browser"
	"github.com/goyan/diskdash/internal/types"
	"github.com/goyan/diskdash/internal/utils"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case openDirMsg:
		m.openDir(msg.path)
		return m, m.ensureTick()

	case types.TickMsg:
		m.ticking = false
		resolved := m.coord.Drain()
		if browser.ApplySizes(m.entries, resolved) {
			m.applyFilterAndSort()
		}
		return m, m.ensureTick()

	case types.DisksLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.disks = msg.Disks
		if m.diskChoice >= len(m.disks) {
			m.diskChoice = 0
		}
		return m, nil

	case types.DeleteCompleteMsg:
		if msg.Err != nil {
			// Leave caches untouched: nothing on disk changed.
			m.statusMsg = fmt.Sprintf("Delete failed: %v", msg.Err)
			return m, nil
		}
		m.coord.Invalidate(msg.Path)
		m.statusMsg = fmt.Sprintf("Deleted %s (%s freed)",
			filepath.Base(msg.Path), utils.FormatFileSize(msg.Freed))
		m.reload()
		return m, m.ensureTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case types.ErrMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input grabs every key while active.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.applyFilterAndSort()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applyFilterAndSort()
			return m, cmd
		}
	}

	// Delete confirmation: y proceeds, anything else cancels.
	if m.deleteConfirm {
		m.deleteConfirm = false
		if msg.String() == "y" {
			if e, ok := m.selectedEntry(); ok {
				m.statusMsg = fmt.Sprintf("Deleting %s...", e.Name)
				return m, deleteEntry(e)
			}
		}
		m.statusMsg = "Cancelled"
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.state == "browser" {
			if m.search.Value() != "" {
				m.search.SetValue("")
				m.applyFilterAndSort()
				return m, nil
			}
			m.state = "disks"
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.state == "disks" {
			if m.diskChoice > 0 {
				m.diskChoice--
			}
		} else if m.choice > 0 {
			m.choice--
			if m.choice < m.offset {
				m.offset = m.choice
			}
		}

	case "down", "j":
		if m.state == "disks" {
			if m.diskChoice < len(m.disks)-1 {
				m.diskChoice++
			}
		} else if m.choice < len(m.filtered)-1 {
			m.choice++
			if m.choice >= m.offset+m.viewportHeight() {
				m.offset = m.choice - m.viewportHeight() + 1
			}
		}

	case "pgup":
		if m.state == "browser" {
			m.choice = max(0, m.choice-m.viewportHeight())
			m.offset = max(0, m.offset-m.viewportHeight())
		}

	case "pgdown":
		if m.state == "browser" {
			m.choice = min(len(m.filtered)-1, m.choice+m.viewportHeight())
			m.clampSelection()
		}

	case "enter", "right":
		if m.state == "disks" {
			if m.diskChoice < len(m.disks) {
				m.state = "browser"
				m.history = nil
				m.forward = nil
				m.openDir(m.disks[m.diskChoice].MountPoint)
				return m, m.ensureTick()
			}
		} else if e, ok := m.selectedEntry(); ok && e.IsDir {
			m.history = append(m.history, m.path)
			m.forward = nil
			m.openDir(e.Path)
			return m, m.ensureTick()
		}

	case "left", "backspace", "b":
		if m.state == "browser" {
			if len(m.history) > 0 {
				m.forward = append(m.forward, m.path)
				last := m.history[len(m.history)-1]
				m.history = m.history[:len(m.history)-1]
				m.openDir(last)
				return m, m.ensureTick()
			}
			if parent := filepath.Dir(m.path); parent != m.path {
				m.forward = append(m.forward, m.path)
				m.openDir(parent)
				return m, m.ensureTick()
			}
		}

	case "f":
		if m.state == "browser" && len(m.forward) > 0 {
			m.history = append(m.history, m.path)
			next := m.forward[len(m.forward)-1]
			m.forward = m.forward[:len(m.forward)-1]
			m.openDir(next)
			return m, m.ensureTick()
		}

	case "/":
		if m.state == "browser" {
			m.searching = true
			m.search.Focus()
			return m, nil
		}

	case "n":
		m.setSort(types.SortByName)
	case "s":
		m.setSort(types.SortBySize)
	case "c":
		m.setSort(types.SortByCategory)
	case "u":
		m.setSort(types.SortByUsefulness)

	case "r":
		if m.state == "disks" {
			return m, loadDisks()
		}
		m.reload()
		return m, m.ensureTick()

	case "d", "delete":
		if m.state == "browser" {
			if _, ok := m.selectedEntry(); ok {
				m.deleteConfirm = true
			}
		}
	}

	return m, nil
}

// openDir enters a directory: enumerate, classify, resolve sizes. History
// bookkeeping is the caller's job.
func (m *Model) openDir(path string) {
	entries, err := m.lister.Read(path)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Cannot open %s: %v", path, err)
		return
	}
	m.state = "browser"
	m.path = path
	m.entries = entries
	m.choice = 0
	m.offset = 0
	m.statusMsg = ""
	m.applyFilterAndSort()
}

// reload re-enumerates the current directory, keeping selection close to
// where it was.
func (m *Model) reload() {
	if m.path == "" {
		return
	}
	entries, err := m.lister.Read(m.path)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Cannot open %s: %v", m.path, err)
		return
	}
	m.entries = entries
	m.applyFilterAndSort()
	m.clampSelection()
}

func (m *Model) applyFilterAndSort() {
	m.filtered = browser.Filter(m.entries, m.search.Value())
	browser.Sort(m.filtered, m.sortColumn, m.sortDirection)
	m.clampSelection()
}

// setSort switches the active column, or flips direction when the column
// is already active.
func (m *Model) setSort(column types.SortColumn) {
	if m.state != "browser" {
		return
	}
	if m.sortColumn == column {
		if m.sortDirection == types.Ascending {
			m.sortDirection = types.Descending
		} else {
			m.sortDirection = types.Ascending
		}
	} else {
		m.sortColumn = column
		m.sortDirection = types.Ascending
	}
	m.applyFilterAndSort()
}

// ensureTick keeps exactly one drain tick scheduled while computations are
// in flight, so results are applied without waiting for a key press.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking || m.coord.Pending() == 0 {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m Model) selectedEntry() (types.Entry, bool) {
	if m.choice < 0 || m.choice >= len(m.filtered) {
		return types.Entry{}, false
	}
	return m.filtered[m.choice], true
}

func (m *Model) clampSelection() {
	if len(m.filtered) == 0 {
		m.choice = 0
		m.offset = 0
		return
	}
	if m.choice >= len(m.filtered) {
		m.choice = len(m.filtered) - 1
	}
	if m.choice < 0 {
		m.choice = 0
	}
	maxOffset := max(0, len(m.filtered)-m.viewportHeight())
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.choice < m.offset {
		m.offset = m.choice
	}
	if m.choice >= m.offset+m.viewportHeight() {
		m.offset = m.choice - m.viewportHeight() + 1
	}
}

// viewportHeight is the number of listing rows that fit on screen, with
// room for the header, column row and footer.
func (m Model) viewportHeight() int {
	return max(5, m.height-12)
}
