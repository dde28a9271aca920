package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/tasksboard/internal/app"
	"github.com/evanschultz/tasksboard/internal/domain"
)

// panelState describes which edit buffer, if any, a list panel is using.
type panelState int

// panelState values.
const (
	panelViewing panelState = iota
	panelEditingTitle
	panelEditingTask
)

// listMenuItems are the entries of the per-list action menu.
var listMenuItems = []string{"Edit List", "Delete List"}

// Indexes into listMenuItems.
const (
	menuEditList = iota
	menuDeleteList
)

// listPanel is the interaction state for one list: its edit buffer and the
// action menu. The list itself always comes from the store.
type listPanel struct {
	listID        domain.ID
	state         panelState
	editingTaskID domain.ID
	input         textinput.Model
	menuOpen      bool
	menuIndex     int
}

// panelView carries per-render settings for a list panel.
type panelView struct {
	focused    bool
	taskCursor int
	width      int
	height     int
	showCounts bool
}

// newListPanel constructs a viewing panel for one list.
func newListPanel(listID domain.ID) listPanel {
	return listPanel{listID: listID, input: newEditInput("", "", "", listInputWidth)}
}

// capturesInput reports whether the panel needs every key press.
func (p listPanel) capturesInput() bool {
	return p.state != panelViewing || p.menuOpen
}

// startEditTitle loads the list title into the edit buffer.
func (p listPanel) startEditTitle(list domain.List) (listPanel, tea.Cmd) {
	p.menuOpen = false
	p.state = panelEditingTitle
	p.editingTaskID = 0
	p.input = newEditInput("", "list title", list.Title, listInputWidth)
	return p, p.input.Focus()
}

// startEditTask loads one task title into the edit buffer.
func (p listPanel) startEditTask(task domain.Task) (listPanel, tea.Cmd) {
	p.menuOpen = false
	p.state = panelEditingTask
	p.editingTaskID = task.ID
	p.input = newEditInput("", "task title", task.Title, listInputWidth)
	return p, p.input.Focus()
}

// commit ends editing and emits the rename intent for the buffer.
func (p listPanel) commit() (listPanel, app.Intent) {
	var in app.Intent
	switch p.state {
	case panelEditingTitle:
		in = app.Intent{Kind: app.IntentEditList, ListID: p.listID, Title: p.input.Value()}
	case panelEditingTask:
		in = app.Intent{Kind: app.IntentEditTask, ListID: p.listID, TaskID: p.editingTaskID, Title: p.input.Value()}
	}
	return p.discard(), in
}

// discard ends editing without emitting anything.
func (p listPanel) discard() listPanel {
	p.state = panelViewing
	p.editingTaskID = 0
	p.input.Blur()
	return p
}

// blur commits pending edits and closes the menu because focus is leaving the panel.
func (p listPanel) blur() (listPanel, app.Intent) {
	p.menuOpen = false
	return p.commit()
}

// update handles one key press aimed at the focused list.
func (p listPanel) update(msg tea.KeyPressMsg, keys keyMap, list domain.List, taskCursor int) (listPanel, componentOutput) {
	if p.state != panelViewing {
		switch {
		case key.Matches(msg, keys.choose):
			next, in := p.commit()
			return next, componentOutput{intent: in}
		case key.Matches(msg, keys.cancel):
			return p.discard(), componentOutput{}
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, componentOutput{cmd: cmd}
	}

	if p.menuOpen {
		switch {
		case key.Matches(msg, keys.moveUp):
			p.menuIndex = wrapIndex(p.menuIndex, -1, len(listMenuItems))
		case key.Matches(msg, keys.moveDown):
			p.menuIndex = wrapIndex(p.menuIndex, 1, len(listMenuItems))
		case key.Matches(msg, keys.cancel), key.Matches(msg, keys.listMenu):
			p.menuOpen = false
		case key.Matches(msg, keys.choose):
			p.menuOpen = false
			switch p.menuIndex {
			case menuEditList:
				next, cmd := p.startEditTitle(list)
				return next, componentOutput{cmd: cmd}
			case menuDeleteList:
				return p, componentOutput{intent: app.Intent{Kind: app.IntentDeleteList, ListID: list.ID}}
			}
		}
		return p, componentOutput{}
	}

	task, hasTask := taskAt(list, taskCursor)
	switch {
	case key.Matches(msg, keys.listMenu):
		p.menuOpen = true
		p.menuIndex = 0
		return p, componentOutput{}
	case key.Matches(msg, keys.addTask):
		return p, componentOutput{intent: app.Intent{Kind: app.IntentAddTask, ListID: list.ID}}
	case key.Matches(msg, keys.rename), key.Matches(msg, keys.choose):
		if !hasTask {
			next, cmd := p.startEditTitle(list)
			return next, componentOutput{cmd: cmd}
		}
		next, cmd := p.startEditTask(task)
		return next, componentOutput{cmd: cmd}
	case key.Matches(msg, keys.toggleTask):
		if !hasTask {
			return p, componentOutput{}
		}
		return p, componentOutput{intent: app.Intent{Kind: app.IntentToggleTask, ListID: list.ID, TaskID: task.ID}}
	case key.Matches(msg, keys.deleteItem):
		if !hasTask {
			return p, componentOutput{}
		}
		return p, componentOutput{intent: app.Intent{Kind: app.IntentDeleteTask, ListID: list.ID, TaskID: task.ID}}
	}
	return p, componentOutput{}
}

// view renders one list as a bordered column.
func (p listPanel) view(list domain.List, o panelView) string {
	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	countStyle := lipgloss.NewStyle().Foreground(muted)
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	menuStyle := lipgloss.NewStyle().Foreground(muted)
	menuSelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(dim)

	inner := max(8, o.width-4)
	headerLines := make([]string, 0, 1+len(listMenuItems))
	if p.state == panelEditingTitle {
		headerLines = append(headerLines, p.input.View())
	} else {
		header := titleStyle.Render(truncate(list.Title, max(1, inner-10)))
		if o.showCounts {
			header += countStyle.Render(fmt.Sprintf(" (%d/%d)", list.CompletedCount(), len(list.Tasks)))
		}
		headerLines = append(headerLines, header+countStyle.Render(" ⋯"))
	}
	if p.menuOpen {
		for idx, item := range listMenuItems {
			if idx == p.menuIndex {
				headerLines = append(headerLines, menuSelStyle.Render("› "+item))
				continue
			}
			headerLines = append(headerLines, menuStyle.Render("  "+item))
		}
	}

	taskLines := make([]string, 0, len(list.Tasks))
	if len(list.Tasks) == 0 {
		taskLines = append(taskLines, hintStyle.Render("(no tasks)"))
	}
	for idx, task := range list.Tasks {
		selected := o.focused && idx == o.taskCursor
		prefix := "  "
		if selected {
			prefix = "│ "
		}
		if p.state == panelEditingTask && task.ID == p.editingTaskID {
			taskLines = append(taskLines, prefix+p.input.View())
			continue
		}
		check := "[ ] "
		if task.Completed {
			check = "[x] "
		}
		title := truncate(task.Title, max(1, inner-6))
		switch {
		case selected:
			taskLines = append(taskLines, selectedStyle.Render(prefix+check+title))
		case task.Completed:
			taskLines = append(taskLines, prefix+check+doneStyle.Render(title))
		default:
			taskLines = append(taskLines, prefix+check+title)
		}
	}

	innerHeight := max(4, o.height-2)
	window := max(1, innerHeight-len(headerLines)-2)
	start, end := windowBounds(len(taskLines), o.taskCursor, window)
	taskLines = taskLines[start:end]

	lines := append(append([]string{}, headerLines...), "")
	lines = append(lines, taskLines...)
	lines = append(lines, hintStyle.Render("+ Add task"))

	borderColor := dim
	if o.focused {
		borderColor = accent
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		MarginRight(1).
		Width(o.width)
	return style.Render(fitLines(strings.Join(lines, "\n"), innerHeight))
}

// taskAt returns the task at idx.
func taskAt(list domain.List, idx int) (domain.Task, bool) {
	if idx < 0 || idx >= len(list.Tasks) {
		return domain.Task{}, false
	}
	return list.Tasks[idx], true
}
