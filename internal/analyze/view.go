package analyze

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
	"github.com/lakshaymaurya-felt/devmole/internal/ui"
)

// Short aliases for readability in render functions.
var (
	clrDim    = ui.ColorMuted
	clrDir    = ui.ColorSecondary
	clrOld    = ui.ColorMuted
	clrLarge  = ui.ColorWarn
	clrCursor = ui.ColorPrimary
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")
	s.WriteString(m.renderBody(w))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := ui.StyleTitle.Render("  ◆ Disk Analyzer")

	pathLine := ui.StyleMuted.Render(
		fmt.Sprintf("  %s    %s", m.current.Path, core.HumanSize(m.current.Size)))

	// Breadcrumb trail.
	var crumbs []string
	for _, bc := range m.breadcrumb {
		crumbs = append(crumbs, bc.Name)
	}
	crumbs = append(crumbs, m.current.Name)
	bcStr := ui.StyleMuted.Render("  " + strings.Join(crumbs, " › "))

	inner := lipgloss.JoinVertical(lipgloss.Left, title, pathLine, bcStr)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(w - 2).
		Render(inner)
}

// ─── Body (file list) ────────────────────────────────────────────────────────

func (m Model) renderBody(w int) string {
	items := m.visibleItems()
	if len(items) == 0 {
		return ui.StyleMuted.Italic(true).Render("  (empty directory)")
	}

	vh := m.viewportHeight()
	barWidth := 20
	if w > 100 {
		barWidth = 30
	}

	parentSize := m.current.Size
	var lines []string

	for i := m.offset; i < len(items) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderEntry(i+1, items[i], parentSize, barWidth, i == m.cursor))
	}

	// Scrollbar hint.
	if len(items) > vh {
		lines = append(lines, ui.StyleMuted.Italic(true).Render(
			fmt.Sprintf("  ── %d/%d items ──", min(m.offset+vh, len(items)), len(items))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(num int, entry *DirEntry, parentSize int64, barWidth int, selected bool) string {
	pct := entry.Percentage(parentSize)

	bar := sizeBar(pct, barWidth)

	icon := "· "
	if entry.IsDir {
		icon = "▸ "
	}

	nameColor := lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	if entry.IsDir {
		nameColor = clrDir
	}
	if entry.IsOld() {
		nameColor = clrOld
	}
	if !entry.IsDir && entry.Size >= 100*(1<<20) {
		nameColor = clrLarge
	}

	maxName := m.width - barWidth - 32
	if maxName < 12 {
		maxName = 12
	}
	name := truncateName(entry.Name, maxName)
	nameStr := lipgloss.NewStyle().Foreground(nameColor).Bold(entry.IsDir).Render(name)

	numStr := lipgloss.NewStyle().Foreground(clrDim).Render(fmt.Sprintf("%3d.", num))
	pctStr := ui.StyleMuted.Render(fmt.Sprintf("%5.1f%%", pct))

	line := fmt.Sprintf("  %s %s  %s  %s%s  %s",
		numStr, bar, pctStr, icon, nameStr, core.HumanSize(entry.Size))

	if selected {
		cursor := lipgloss.NewStyle().Foreground(clrCursor).Bold(true).Render("█")
		line = " " + cursor + line[2:]
		if m.confirm {
			line += ui.StyleError.Render("  ! Press Enter to delete")
		}
	}

	return line
}

// truncateName shortens name to at most max runes, never splitting a
// multibyte character.
func truncateName(name string, max int) string {
	if utf8.RuneCountInString(name) <= max {
		return name
	}
	return string([]rune(name)[:max-1]) + "…"
}

// sizeBar renders a proportional fill bar for one entry.
func sizeBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	f := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render(strings.Repeat("█", filled))
	e := ui.StyleMuted.Render(strings.Repeat("░", width-filled))
	return f + e
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	var parts []string

	if m.err != nil {
		parts = append(parts, ui.StyleError.Render("  ✗ "+m.err.Error()))
	}

	if m.freedTotal > 0 {
		parts = append(parts,
			ui.StyleSuccess.Render("  freed "+core.HumanSize(m.freedTotal)+" this session"))
	}

	if m.largeOnly {
		parts = append(parts, ui.StyleWarn.Render("  >100 MiB filter"))
	}

	if m.filtering {
		parts = append(parts, "  "+m.filter.View())
	} else if q := strings.TrimSpace(m.filter.Value()); q != "" {
		parts = append(parts, ui.StyleMuted.Render("  filter: "+q))
	}

	hints := []string{
		"↑↓ nav",
		"→ drill",
		"← back",
		"⌫ delete",
		"/ filter",
		"L large",
		"q quit",
	}
	parts = append(parts, ui.StyleMuted.Render("  "+strings.Join(hints, " │ ")))

	return strings.Join(parts, "\n")
}
