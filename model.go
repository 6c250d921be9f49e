package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Configuration constants
const (
	// StatusDisplayDuration is how long status messages are shown
	StatusDisplayDuration = 3 * time.Second

	// GridColumns is the number of checkboxes per row
	GridColumns = 3

	// DefaultCellWidth is used when the terminal width is unknown
	DefaultCellWidth = 26

	// MinCellWidth keeps names readable on narrow terminals
	MinCellWidth = 12

	// ChromeLines is the space taken by title, prompts and help
	ChromeLines = 8

	// PromptNamesWidth bounds the name list in the kill confirmation
	PromptNamesWidth = 50
)

// SelectionSaver persists the selection. *Store implements it.
type SelectionSaver interface {
	Save(SelectionSet) error
}

// SelectionState maps each displayed name to whether it is checked
type SelectionState struct {
	names    []string
	selected map[string]bool
}

// NewSelectionState checks every name of saved that is also displayed
func NewSelectionState(names []string, saved SelectionSet) *SelectionState {
	s := &SelectionState{
		names:    names,
		selected: make(map[string]bool, len(names)),
	}
	for _, n := range names {
		if saved.Contains(n) {
			s.selected[n] = true
		}
	}
	return s
}

// IsSelected reports whether name is checked
func (s *SelectionState) IsSelected(name string) bool { return s.selected[name] }

// Toggle flips name's checkbox
func (s *SelectionState) Toggle(name string) { s.Set(name, !s.selected[name]) }

// Set checks or unchecks name
func (s *SelectionState) Set(name string, on bool) {
	if on {
		s.selected[name] = true
		return
	}
	delete(s.selected, name)
}

// Count returns the number of checked names
func (s *SelectionState) Count() int { return len(s.selected) }

// Selected returns the checked names in display order
func (s *SelectionState) Selected() SelectionSet {
	out := make([]string, 0, len(s.selected))
	for _, n := range s.names {
		if s.selected[n] {
			out = append(out, n)
		}
	}
	return NewSelectionSet(out...)
}

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarn
	dialogError
)

// dialog is a modal message box dismissed with enter or esc
type dialog struct {
	kind  dialogKind
	title string
	body  string
}

// Model represents the selector TUI state
type Model struct {
	names         []string // captured once at construction
	state         *SelectionState
	saver         SelectionSaver
	killer        Killer
	cursor        int // index into filteredNames()
	confirming    bool
	toKill        SelectionSet
	killing       bool
	dialog        *dialog
	statusMessage string
	statusTime    time.Time
	width         int
	height        int
	searching     bool
	searchQuery   string
	help          help.Model
}

// NewModel creates the selector for names, pre-checking those in saved
func NewModel(names []string, saved SelectionSet, saver SelectionSaver, killer Killer) Model {
	return Model{
		names:  names,
		state:  NewSelectionState(names, saved),
		saver:  saver,
		killer: killer,
		help:   help.New(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// saveSelection writes set through the saver
func (m Model) saveSelection(set SelectionSet) tea.Cmd {
	return func() tea.Msg {
		return saveResultMsg{err: m.saver.Save(set)}
	}
}

// killSelection runs one kill pass over set
func (m Model) killSelection(set SelectionSet) tea.Cmd {
	return func() tea.Msg {
		return killResultMsg{result: m.killer.Kill(context.Background(), set)}
	}
}

// filteredNames returns the names matching the search query
func (m Model) filteredNames() []string {
	if m.searchQuery == "" {
		return m.names
	}

	query := strings.ToLower(m.searchQuery)
	filtered := make([]string, 0)
	for _, n := range m.names {
		if strings.Contains(strings.ToLower(n), query) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func (m *Model) clampCursor() {
	filtered := m.filteredNames()
	if m.cursor >= len(filtered) {
		m.cursor = max(0, len(filtered)-1)
	}
}

// setStatus shows msg and returns the tick that clears it after
// StatusDisplayDuration
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	m.statusTime = time.Now()
	set := m.statusTime
	return tea.Tick(StatusDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{set: set}
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A dialog swallows every key until dismissed
		if m.dialog != nil {
			if key.Matches(msg, keys.Dismiss) {
				m.dialog = nil
			}
			return m, nil
		}

		// Handle confirmation mode
		if m.confirming {
			switch {
			case key.Matches(msg, keys.Confirm):
				m.confirming = false
				m.killing = true
				m.statusMessage = "Killing..."
				m.statusTime = time.Now()
				return m, m.killSelection(m.toKill)
			case key.Matches(msg, keys.Cancel):
				m.confirming = false
				m.toKill = SelectionSet{}
				return m, m.setStatus("Cancelled")
			}
			return m, nil
		}

		// Search mode key handling
		if m.searching {
			switch msg.Type {
			case tea.KeyEsc:
				m.searching = false
				m.searchQuery = ""
				m.clampCursor()
			case tea.KeyBackspace:
				if len(m.searchQuery) > 0 {
					r := []rune(m.searchQuery)
					m.searchQuery = string(r[:len(r)-1])
					m.clampCursor()
				}
			case tea.KeyEnter:
				// Exit search mode but keep the filter
				m.searching = false
			case tea.KeyRunes, tea.KeySpace:
				m.searchQuery += string(msg.Runes)
				m.cursor = 0
			}
			return m, nil
		}

		filtered := m.filteredNames()

		// Normal mode key handling
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Search):
			m.searching = true

		case key.Matches(msg, keys.Cancel):
			if m.searchQuery != "" {
				m.searchQuery = ""
				m.cursor = 0
			}

		case key.Matches(msg, keys.Up):
			if m.cursor-GridColumns >= 0 {
				m.cursor -= GridColumns
			}

		case key.Matches(msg, keys.Down):
			if m.cursor+GridColumns < len(filtered) {
				m.cursor += GridColumns
			}

		case key.Matches(msg, keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Right):
			if m.cursor < len(filtered)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Select):
			if m.cursor < len(filtered) {
				m.state.Toggle(filtered[m.cursor])
			}

		case key.Matches(msg, keys.SelectAll):
			allSelected := true
			for _, n := range filtered {
				if !m.state.IsSelected(n) {
					allSelected = false
					break
				}
			}
			for _, n := range filtered {
				m.state.Set(n, !allSelected)
			}

		case key.Matches(msg, keys.Save):
			return m, m.saveSelection(m.state.Selected())

		case key.Matches(msg, keys.Kill):
			if m.killing {
				return m, nil
			}
			selected := m.state.Selected()
			if selected.Empty() {
				m.dialog = &dialog{
					kind:  dialogWarn,
					title: "No Selection",
					body:  "Please select at least one app to kill.",
				}
				return m, nil
			}
			m.toKill = selected
			m.confirming = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case saveResultMsg:
		if msg.err != nil {
			m.dialog = &dialog{
				kind:  dialogError,
				title: "Error",
				body:  fmt.Sprintf("Failed to save config: %v", msg.err),
			}
			return m, nil
		}
		m.dialog = &dialog{
			kind:  dialogInfo,
			title: "Saved",
			body:  "Selected apps have been saved successfully.",
		}

	case clearStatusMsg:
		// A newer status or a running kill keeps the line
		if !m.killing && msg.set.Equal(m.statusTime) {
			m.statusMessage = ""
		}

	case killResultMsg:
		m.killing = false
		m.toKill = SelectionSet{}
		m.statusMessage = ""
		m.dialog = &dialog{
			kind:  dialogInfo,
			title: "Kill Result",
			body:  msg.result.Summary(),
		}
	}

	return m, nil
}

// cellWidth is the width of one grid cell including its checkbox
func (m Model) cellWidth() int {
	if m.width <= 0 {
		return DefaultCellWidth
	}
	return max(MinCellWidth, m.width/GridColumns-1)
}

// visibleRows is how many grid rows fit on screen; 0 means all
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(1, m.height-ChromeLines)
}

// View renders the UI
func (m Model) View() string {
	var sb strings.Builder

	// Title with selection count
	title := "quickkill"
	if count := m.state.Count(); count > 0 {
		title += " " + selectedCountStyle.Render(fmt.Sprintf("[%d selected]", count))
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteByte('\n')

	filtered := m.filteredNames()
	if len(filtered) == 0 {
		if m.searchQuery != "" {
			sb.WriteString(emptyStyle.Render(fmt.Sprintf("No apps match '%s'", m.searchQuery)))
		} else {
			sb.WriteString(emptyStyle.Render("No running apps found"))
		}
		sb.WriteByte('\n')
	} else {
		m.renderGrid(&sb, filtered)
	}

	if m.dialog != nil {
		sb.WriteString(m.renderDialog())
		return sb.String()
	}

	// Confirmation prompt
	if m.confirming {
		names := m.toKill.Names()
		if len(names) == 1 {
			sb.WriteString(confirmStyle.Render(fmt.Sprintf("\nKill all %s processes? (y/n)", names[0])))
		} else {
			sb.WriteString(confirmStyle.Render(fmt.Sprintf("\nKill %d selected apps (%s)? (y/n)",
				len(names), formatNames(names, PromptNamesWidth))))
		}
	}

	// Status message, cleared by clearStatusMsg
	if m.statusMessage != "" {
		sb.WriteByte('\n')
		sb.WriteString(statusStyle.Render(m.statusMessage))
	}

	// Search bar or Help
	if m.searching {
		sb.WriteByte('\n')
		sb.WriteString(searchStyle.Render("/" + m.searchQuery + "▌"))
	} else {
		if m.searchQuery != "" {
			sb.WriteByte('\n')
			sb.WriteString(searchFilterStyle.Render(fmt.Sprintf("filter: %s (esc to clear)", m.searchQuery)))
		}
		sb.WriteString("\n\n")
		sb.WriteString(m.help.View(keys))
	}

	return sb.String()
}

func (m Model) renderGrid(sb *strings.Builder, filtered []string) {
	width := m.cellWidth()
	rows := (len(filtered) + GridColumns - 1) / GridColumns

	first, last := 0, rows
	if visible := m.visibleRows(); visible > 0 && rows > visible {
		cursorRow := m.cursor / GridColumns
		first = max(0, cursorRow-visible+1)
		last = first + visible
	}

	for row := first; row < last; row++ {
		for col := 0; col < GridColumns; col++ {
			i := row*GridColumns + col
			if i >= len(filtered) {
				break
			}
			name := filtered[i]

			checkbox := checkboxUnchecked
			if m.state.IsSelected(name) {
				checkbox = checkboxChecked
			}
			cell := checkbox + " " + truncate(name, width-len(checkbox)-1)

			switch {
			case i == m.cursor:
				sb.WriteString(cursorStyle.Render(cell))
			case m.state.IsSelected(name):
				sb.WriteString(checkedStyle.Render(cell))
			default:
				sb.WriteString(normalStyle.Render(cell))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	if first > 0 || last < rows {
		sb.WriteString(scrollStyle.Render(fmt.Sprintf("rows %d-%d of %d", first+1, last, rows)))
		sb.WriteByte('\n')
	}
}

func (m Model) renderDialog() string {
	style := dialogStyle
	switch m.dialog.kind {
	case dialogWarn:
		style = dialogWarnStyle
	case dialogError:
		style = dialogErrorStyle
	}

	body := dialogTitleStyle.Render(m.dialog.title) + "\n" +
		m.dialog.body + "\n" +
		dialogHintStyle.Render("enter to continue")
	return style.Render(body)
}
