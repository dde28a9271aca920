package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/tasksboard/internal/app"
	"github.com/evanschultz/tasksboard/internal/domain"
)

// defaultSidebarWidth is the sidebar width when no config overrides it.
const defaultSidebarWidth = 26

// sidebarFooterLinks are rendered under the board list. They do not navigate anywhere.
var sidebarFooterLinks = []string{"Premium pricing", "Terms of service", "Privacy policy", "Help"}

// sidebarState describes what the sidebar is doing with key input.
type sidebarState int

// sidebarState values.
const (
	sidebarBrowsing sidebarState = iota
	sidebarRenaming
)

// sidebar lists boards, tracks a row cursor and owns the board rename buffer.
// The row after the last board is the "+ Add Board" row.
type sidebar struct {
	cursor    int
	state     sidebarState
	editingID  domain.ID
	input      textinput.Model
	inputWidth int
}

// newSidebar constructs a sidebar in browsing state. The rename buffer fits
// inside a sidebar of the given width.
func newSidebar(width int) sidebar {
	inputWidth := max(4, width-6)
	return sidebar{input: newEditInput("", "board title", "", inputWidth), inputWidth: inputWidth}
}

// editing reports whether the rename buffer owns key input.
func (s sidebar) editing() bool {
	return s.state == sidebarRenaming
}

// onAddRow reports whether the cursor sits on the "+ Add Board" row.
func (s sidebar) onAddRow(st app.State) bool {
	return s.cursor >= len(st.Boards)
}

// cursorBoard returns the board under the cursor.
func (s sidebar) cursorBoard(st app.State) (domain.Board, bool) {
	if s.cursor < 0 || s.cursor >= len(st.Boards) {
		return domain.Board{}, false
	}
	return st.Boards[s.cursor], true
}

// sync clamps the cursor after the board collection changed.
func (s sidebar) sync(st app.State) sidebar {
	s.cursor = clamp(s.cursor, 0, len(st.Boards))
	if s.editing() && st.BoardIndex(s.editingID) < 0 {
		s = s.discard()
	}
	return s
}

// focusActive moves the cursor to the active board.
func (s sidebar) focusActive(st app.State) sidebar {
	if idx := st.ActiveBoardIndex(); idx >= 0 {
		s.cursor = idx
	}
	return s
}

// startRename loads the cursor board title into the edit buffer.
func (s sidebar) startRename(st app.State) (sidebar, tea.Cmd) {
	board, ok := s.cursorBoard(st)
	if !ok {
		return s, nil
	}
	s.state = sidebarRenaming
	s.editingID = board.ID
	s.input = newEditInput("", "board title", board.Title, s.inputWidth)
	return s, s.input.Focus()
}

// commit ends the rename and emits the edit intent. Blank titles are refused by the store.
func (s sidebar) commit() (sidebar, app.Intent) {
	if !s.editing() {
		return s, app.Intent{}
	}
	in := app.Intent{Kind: app.IntentEditBoard, BoardID: s.editingID, Title: s.input.Value()}
	return s.discard(), in
}

// discard ends the rename without emitting anything.
func (s sidebar) discard() sidebar {
	s.state = sidebarBrowsing
	s.editingID = 0
	s.input.Blur()
	return s
}

// blur commits any pending rename because focus is leaving the sidebar.
func (s sidebar) blur() (sidebar, app.Intent) {
	return s.commit()
}

// update handles one key press while the sidebar has focus.
func (s sidebar) update(msg tea.KeyPressMsg, keys keyMap, st app.State) (sidebar, componentOutput) {
	if s.editing() {
		switch {
		case key.Matches(msg, keys.choose):
			next, in := s.commit()
			return next, componentOutput{intent: in}
		case key.Matches(msg, keys.cancel):
			return s.discard(), componentOutput{}
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, componentOutput{cmd: cmd}
	}

	switch {
	case key.Matches(msg, keys.moveUp):
		s.cursor = clamp(s.cursor-1, 0, len(st.Boards))
		return s, componentOutput{}
	case key.Matches(msg, keys.moveDown):
		s.cursor = clamp(s.cursor+1, 0, len(st.Boards))
		return s, componentOutput{}
	case key.Matches(msg, keys.choose):
		if s.onAddRow(st) {
			return s, componentOutput{intent: app.Intent{Kind: app.IntentAddBoard}}
		}
		board, _ := s.cursorBoard(st)
		return s, componentOutput{
			intent:     app.Intent{Kind: app.IntentSelectBoard, BoardID: board.ID},
			focusBoard: true,
		}
	case key.Matches(msg, keys.rename):
		next, cmd := s.startRename(st)
		return next, componentOutput{cmd: cmd}
	case key.Matches(msg, keys.deleteItem):
		board, ok := s.cursorBoard(st)
		if !ok {
			return s, componentOutput{}
		}
		return s, componentOutput{intent: app.Intent{Kind: app.IntentDeleteBoard, BoardID: board.ID}}
	}
	return s, componentOutput{}
}

// view renders the sidebar column.
func (s sidebar) view(st app.State, focused bool, width, height int, showFooter bool) string {
	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")
	brandStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	sectionStyle := lipgloss.NewStyle().Foreground(muted)
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(dim)

	inner := max(8, width-3)
	lines := []string{brandStyle.Render("tasksboard"), "", sectionStyle.Render("BOARDS")}
	for idx, board := range st.Boards {
		marker := "  "
		if board.ID == st.ActiveBoardID {
			marker = "● "
		}
		prefix := "  "
		if focused && idx == s.cursor {
			prefix = "│ "
		}
		if s.editing() && board.ID == s.editingID {
			lines = append(lines, prefix+s.input.View())
			continue
		}
		row := prefix + marker + truncate(board.Title, max(1, inner-4))
		switch {
		case focused && idx == s.cursor:
			row = cursorStyle.Render(row)
		case board.ID == st.ActiveBoardID:
			row = activeStyle.Render(row)
		}
		lines = append(lines, row)
	}
	addRow := "  + Add Board"
	if focused && s.onAddRow(st) {
		addRow = cursorStyle.Render("│ + Add Board")
	} else {
		addRow = sectionStyle.Render(addRow)
	}
	lines = append(lines, "", addRow)

	content := strings.Join(lines, "\n")
	if showFooter {
		footer := make([]string, 0, len(sidebarFooterLinks))
		for _, link := range sidebarFooterLinks {
			footer = append(footer, footerStyle.Render(truncate(link, inner)))
		}
		gap := height - 2 - len(lines) - len(footer)
		if gap > 0 {
			content += strings.Repeat("\n", gap)
		}
		content += "\n\n" + strings.Join(footer, "\n")
	}

	borderColor := dim
	if focused {
		borderColor = accent
	}
	style := lipgloss.NewStyle().
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1, 0, 0).
		Width(width)
	if height > 0 {
		content = fitLines(content, height)
	}
	return style.Render(content)
}
