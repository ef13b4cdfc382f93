package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/goyan/diskdash/internal/types"
	"github.com/goyan/diskdash/internal/utils"
)

const (
	nameColWidth = 36
	sizeColWidth = 10
	catColWidth  = 12
)

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	header := TitleStyle.Render("💾 Disk Dashboard")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n")

	var content string
	switch m.state {
	case "disks":
		content = m.renderDisks()
	case "browser":
		content = m.renderBrowser()
	}

	s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(content))

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(lipgloss.NewStyle().Padding(0, 3).Render(
			ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))))
	}

	s.WriteString("\n")
	return s.String()
}

func (m Model) renderDisks() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Mounted Volumes"))
	s.WriteString("\n\n")

	if len(m.disks) == 0 {
		s.WriteString("  " + m.spinner.View() + " Reading volumes...")
		s.WriteString("\n")
	}

	for i, d := range m.disks {
		cursor := "  "
		style := lipgloss.NewStyle()
		if m.diskChoice == i {
			cursor = "▸ "
			style = SelectedStyle
		}

		pct := d.UsedPercent()
		usage := fmt.Sprintf("%5.1f%% used", pct)
		switch {
		case pct > 90:
			usage = ErrorStyle.Render(usage)
		case pct > 75:
			usage = WarningStyle.Render(usage)
		default:
			usage = SuccessStyle.Render(usage)
		}

		line := fmt.Sprintf("%s💿 %s", cursor, style.Render(utils.PadRight(d.MountPoint, 28)))
		s.WriteString("  " + line + "\n")
		s.WriteString("     " + m.progress.ViewAs(pct/100) + "\n")
		s.WriteString(fmt.Sprintf("     %s  %s / %s\n\n",
			usage,
			humanize.Bytes(uint64(d.Used)),
			humanize.Bytes(uint64(d.Total))))
	}

	s.WriteString("\n")
	s.WriteString(DimStyle.Render("↑/↓ navigate • enter browse • r refresh • q quit"))
	return s.String()
}

func (m Model) renderBrowser() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("📍 " + utils.TruncatePath(m.path, 70)))
	s.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		s.WriteString("  🔍 " + m.search.View())
		if !m.searching && m.search.Value() != "" {
			s.WriteString(DimStyle.Render(fmt.Sprintf("  (%d results)", len(m.filtered))))
		}
		s.WriteString("\n")
	}
	s.WriteString("\n")

	if m.deleteConfirm {
		if e, ok := m.selectedEntry(); ok {
			prompt := fmt.Sprintf("Delete %s? Press y to confirm, any other key to cancel", e.Name)
			if e.Category == types.MustKeep {
				prompt = "⚠ This entry is protected. " + prompt
			}
			s.WriteString(ErrorStyle.Render(prompt))
			s.WriteString("\n\n")
		}
	}

	s.WriteString(m.renderColumnHeader())
	s.WriteString("\n")

	if len(m.filtered) == 0 {
		if m.search.Value() != "" {
			s.WriteString(DimStyle.Render(fmt.Sprintf("  No results for %q", m.search.Value())))
		} else {
			s.WriteString(DimStyle.Render("  Empty directory"))
		}
		s.WriteString("\n")
	}

	end := min(len(m.filtered), m.offset+m.viewportHeight())
	for i := m.offset; i < end; i++ {
		s.WriteString(m.renderEntry(m.filtered[i], i == m.choice))
		s.WriteString("\n")
	}

	if m.coord.Pending() > 0 {
		s.WriteString("\n  " + m.spinner.View() + DimStyle.Render(
			fmt.Sprintf(" sizing %d directories...", m.coord.Pending())))
	}

	if m.statusMsg != "" {
		s.WriteString("\n  " + SuccessStyle.Render(m.statusMsg))
	}

	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("↑/↓ navigate • enter open • ←/b back • f forward • / search • n/s/c/u sort • d delete • esc disks • q quit"))
	return s.String()
}

func (m Model) renderColumnHeader() string {
	arrow := func(c types.SortColumn) string {
		if m.sortColumn != c {
			return ""
		}
		if m.sortDirection == types.Ascending {
			return " ▲"
		}
		return " ▼"
	}
	return DimStyle.Render(fmt.Sprintf("     %s %s %s %s",
		utils.PadRight("Name"+arrow(types.SortByName), nameColWidth),
		utils.PadRight("Size"+arrow(types.SortBySize), sizeColWidth),
		utils.PadRight("Category"+arrow(types.SortByCategory), catColWidth),
		"Usefulness"+arrow(types.SortByUsefulness)))
}

func (m Model) renderEntry(e types.Entry, selected bool) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle()
	if selected {
		cursor = "▸ "
		nameStyle = SelectedStyle
	}

	icon := "📄"
	if e.IsDir {
		icon = "📁"
	}

	size := m.sizeLabel(e)
	name := utils.PadRight(e.Name, nameColWidth)

	return fmt.Sprintf("  %s%s %s %s %s %s",
		cursor,
		icon,
		nameStyle.Render(name),
		utils.PadRight(size, sizeColWidth),
		CategoryStyle(e.Category).Render(utils.PadRight(e.Category.String(), catColWidth)),
		UsefulnessStyle(e.Usefulness).Render(fmt.Sprintf("%3.0f%%", e.Usefulness)))
}

// sizeLabel distinguishes "still computing" from a real zero: an empty
// directory shows 0 B once its walk resolves, and "…" until then.
func (m Model) sizeLabel(e types.Entry) string {
	switch e.SizeState {
	case types.SizeResolved:
		return utils.FormatFileSize(e.Size)
	case types.SizePending:
		if e.IsDir && e.ChildCount == 0 {
			return utils.FormatFileSize(0)
		}
		return "…"
	default:
		return "—"
	}
}
