package analyze

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type deleteResultMsg struct {
	path  string
	freed int64
	err   error
}

// deleteEntry removes the entry through the guarded deleter so the analyzer
// obeys the same root containment as the cleanup steps.
func deleteEntry(entry *DirEntry, guardRoot string, dryRun bool, errs *core.ErrorLog) tea.Cmd {
	return func() tea.Msg {
		freed, err := core.DeleteGuarded(guardRoot, []string{entry.Path}, dryRun, io.Discard, errs)
		return deleteResultMsg{path: entry.Path, freed: freed, err: err}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the disk analyzer TUI.
type Model struct {
	root       *DirEntry
	current    *DirEntry   // directory being displayed
	cursor     int         // selected item index
	breadcrumb []*DirEntry // navigation history stack
	width      int
	height     int
	offset     int  // viewport scroll offset
	largeOnly  bool // filter: show only >100MB
	confirm    bool // two-key delete: Backspace then Enter
	filtering  bool // name filter input has focus
	filter     textinput.Model
	quitting   bool
	err        error

	guardRoot string
	dryRun    bool
	errs      *core.ErrorLog

	freedTotal int64
	minSize    int64 // 0 = show all
}

// NewModel creates a Model rooted at the given scan result. Deletions are
// validated against guardRoot.
func NewModel(root *DirEntry, guardRoot string, dryRun bool, minSize int64, errs *core.ErrorLog) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "name filter"
	ti.CharLimit = 64

	return Model{
		root:      root,
		current:   root,
		width:     80,
		height:    24,
		filter:    ti,
		guardRoot: guardRoot,
		dryRun:    dryRun,
		minSize:   minSize,
		errs:      errs,
	}
}

// FreedTotal reports the bytes reclaimed by deletions made inside the TUI.
func (m Model) FreedTotal() int64 {
	return m.freedTotal
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// While the filter input has focus, every key belongs to it except
		// the two that end the edit.
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.cursor, m.offset = 0, 0
			case "enter":
				m.filtering = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.cursor, m.offset = 0, 0
				return m, cmd
			}
			return m, nil
		}

		// If awaiting delete confirmation, only Enter confirms.
		if m.confirm {
			if msg.String() == "enter" {
				m.confirm = false
				items := m.visibleItems()
				if m.cursor >= 0 && m.cursor < len(items) {
					return m, deleteEntry(items[m.cursor], m.guardRoot, m.dryRun, m.errs)
				}
			}
			m.confirm = false
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}

		case "down", "j":
			items := m.visibleItems()
			if m.cursor < len(items)-1 {
				m.cursor++
				m.ensureVisible()
			}

		case "right", "l", "enter":
			// Drill into a directory.
			items := m.visibleItems()
			if m.cursor >= 0 && m.cursor < len(items) {
				entry := items[m.cursor]
				if entry.IsDir && len(entry.Children) > 0 {
					m.breadcrumb = append(m.breadcrumb, m.current)
					m.current = entry
					m.cursor = 0
					m.offset = 0
				}
			}

		case "left", "h":
			// Go up to parent directory.
			if len(m.breadcrumb) > 0 {
				m.current = m.breadcrumb[len(m.breadcrumb)-1]
				m.breadcrumb = m.breadcrumb[:len(m.breadcrumb)-1]
				m.cursor = 0
				m.offset = 0
			}

		case "backspace":
			// First key of two-key delete confirmation.
			items := m.visibleItems()
			if m.cursor >= 0 && m.cursor < len(items) {
				m.confirm = true
			}

		case "L":
			m.largeOnly = !m.largeOnly
			m.cursor = 0
			m.offset = 0

		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		}

		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.freedTotal += msg.freed
			if !m.dryRun {
				m.removeEntry(msg.path)
			}
		}
		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m *Model) viewportHeight() int {
	h := m.height - 8 // header (4) + footer (3) + padding
	if h < 1 {
		h = 1
	}
	return h
}

// visibleItems returns the children of the current directory, optionally
// filtered to only large entries.
func (m Model) visibleItems() []*DirEntry {
	if m.current == nil {
		return nil
	}

	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	var out []*DirEntry
	for _, c := range m.current.Children {
		if m.minSize > 0 && c.Size < m.minSize {
			continue
		}
		if m.largeOnly && c.Size < 100*1024*1024 {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// removeEntry deletes an entry from the current Children slice and
// recalculates the parent size.
func (m *Model) removeEntry(path string) {
	if m.current == nil {
		return
	}
	for i, c := range m.current.Children {
		if c.Path == path {
			m.current.Children = append(m.current.Children[:i], m.current.Children[i+1:]...)
			var total int64
			for _, child := range m.current.Children {
				total += child.Size
			}
			m.current.Size = total
			if m.cursor >= len(m.current.Children) && m.cursor > 0 {
				m.cursor--
			}
			return
		}
	}
}
