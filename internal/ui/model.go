package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goyan/diskdash/internal/browser"
	"github.com/goyan/diskdash/internal/sizer"
	"github.com/goyan/diskdash/internal/types"
)

// Model represents the application state
type Model struct {
	state string // "disks" or "browser"

	coord  *sizer.Coordinator
	lister *browser.Lister

	// Disk overview
	disks      []types.Disk
	diskChoice int

	// Directory browser
	path     string
	entries  []types.Entry
	filtered []types.Entry
	choice   int
	offset   int

	sortColumn    types.SortColumn
	sortDirection types.SortDirection

	searching bool
	search    textinput.Model

	history []string // back stack
	forward []string

	deleteConfirm bool
	statusMsg     string

	ticking bool

	spinner  spinner.Model
	progress progress.Model
	width    int
	height   int
	err      error
}

// InitialModel builds the starting state. With a non-empty startPath the
// app opens directly in the browser; otherwise it opens on the disk list.
func InitialModel(startPath string, maxDepth int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "search name or path"
	search.CharLimit = 128
	search.Width = 30

	coord := sizer.NewCoordinator(maxDepth)

	m := Model{
		state:         "disks",
		coord:         coord,
		lister:        browser.NewLister(coord),
		sortColumn:    types.SortByUsefulness,
		sortDirection: types.Ascending,
		search:        search,
		spinner:       s,
		progress:      progress.New(progress.WithDefaultGradient()),
	}
	if startPath != "" {
		m.state = "browser"
		m.path = startPath
	}
	return m
}

// Init starts the spinner and kicks off the first load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, loadDisks()}
	if m.state == "browser" {
		cmds = append(cmds, func() tea.Msg { return openDirMsg{path: m.path} })
	}
	return tea.Batch(cmds...)
}
