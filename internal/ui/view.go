package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GriffinCanCode/FileExplorer/internal/domain/explorer"
	"github.com/GriffinCanCode/FileExplorer/internal/shared/types"
)

const (
	defaultRows = 20
	gridCell    = 22
)

// View implements tea.Model
func (m Model) View() string {
	sections := []string{m.renderHeader(), m.renderEntries()}
	if m.state.Error != "" {
		sections = append(sections, ErrorStyle.Render(m.state.Error))
	}
	if p := m.renderPrompt(); p != "" {
		sections = append(sections, p)
	}
	sections = append(sections, m.renderStatus(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	s := m.state
	nav := func(glyph string, ok bool) string {
		if ok {
			return glyph
		}
		return NavStyle.Render(glyph)
	}
	arrows := strings.Join([]string{
		nav("←", s.CanNavigateBack()),
		nav("→", s.CanNavigateForward()),
		nav("↑", s.CanNavigateUp()),
	}, " ")

	path := s.CurrentPath
	if path == "" {
		path = "…"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, arrows, HeaderStyle.Render(path))
}

// rows is the number of listing lines that fit the terminal
func (m Model) rows() int {
	if m.height == 0 {
		return defaultRows
	}
	reserved := 4 + strings.Count(m.state.Error, "\n")
	if m.state.Error != "" {
		reserved++
	}
	if m.prompt != promptNone {
		reserved++
	}
	return max(1, m.height-reserved)
}

func (m Model) renderEntries() string {
	if len(m.visible) == 0 {
		switch {
		case m.state.Loading && len(m.state.Items) == 0:
			return DimStyle.Render("  loading…")
		case m.state.SearchQuery != "":
			return DimStyle.Render(fmt.Sprintf("  no matches for %q", m.state.SearchQuery))
		}
		return DimStyle.Render("  empty folder")
	}
	if m.state.ViewMode == explorer.ViewGrid {
		return m.renderGrid()
	}
	return m.renderList()
}

func (m Model) renderList() string {
	rows := m.rows()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(m.visible), start+rows)

	nameWidth := 40
	if m.width > 0 {
		nameWidth = max(12, m.width-40)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.visible[i]
		size := FormatSize(e.Size)
		if e.IsDirectory {
			size = "—"
		}
		line := fmt.Sprintf("%s %s %-*s %10s  %s",
			m.mark(e),
			lipgloss.NewStyle().Foreground(KindColor(e)).Render(fmt.Sprintf("%-2s", Glyph(e))),
			nameWidth, truncate(e.Name, nameWidth),
			size,
			FormatDate(e.Modified, m.now()),
		)
		lines = append(lines, m.highlight(i, e, line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderGrid() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	cols := max(1, width/gridCell)
	rows := m.rows()

	start := 0
	if cursorRow := m.cursor / cols; cursorRow >= rows {
		start = (cursorRow - rows + 1) * cols
	}
	end := min(len(m.visible), start+rows*cols)

	var lines []string
	for row := start; row < end; row += cols {
		cells := make([]string, 0, cols)
		for i := row; i < min(row+cols, end); i++ {
			e := m.visible[i]
			cell := fmt.Sprintf("%s%s %-*s", m.mark(e), Glyph(e), gridCell-5, truncate(e.Name, gridCell-5))
			cells = append(cells, m.highlight(i, e, cell))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) mark(e types.FileEntry) string {
	if m.state.IsSelected(e.Path) {
		return "●"
	}
	return " "
}

func (m Model) highlight(i int, e types.FileEntry, line string) string {
	switch {
	case i == m.cursor:
		return CursorStyle.Render(line)
	case m.state.IsSelected(e.Path):
		return SelectedStyle.Render(line)
	}
	return line
}

func (m Model) renderPrompt() string {
	switch m.prompt {
	case promptNone:
		return ""
	case promptConfirmDelete:
		return PromptStyle.Render(fmt.Sprintf("delete %s? [y/N]", plural(len(m.state.Selected), "item")))
	}
	return PromptStyle.Render(m.input.View())
}

func (m Model) renderStatus() string {
	s := m.state
	parts := []string{plural(len(m.visible), "item")}
	if n := len(s.Selected); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if s.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("filter %q", s.SearchQuery))
	}
	order := "↑"
	if s.SortOrder == explorer.Descending {
		order = "↓"
	}
	parts = append(parts, fmt.Sprintf("sort %s %s", s.SortField, order), string(s.ViewMode))

	if item, ok := m.current(); ok && !item.IsDirectory {
		parts = append(parts, FormatDateTime(item.Modified))
	}

	status := strings.Join(parts, " · ")
	if s.Loading {
		status = m.spinner.View() + " " + status
	}
	return StatusStyle.Render(status)
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
