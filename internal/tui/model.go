package tui

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/evanschultz/tasksboard/internal/app"
	"github.com/evanschultz/tasksboard/internal/domain"
	"github.com/evanschultz/tasksboard/internal/markdown"
)

// focusArea names the component that receives key input.
type focusArea int

// focusArea values.
const (
	focusSidebar focusArea = iota
	focusBoard
)

// overlayMode names the modal drawn over the board, if any.
type overlayMode int

// overlayMode values.
const (
	overlayNone overlayMode = iota
	overlayHelp
	overlayActivityLog
)

// Layout and activity-log limits.
const (
	listPanelWidth        = 30
	listInputWidth        = listPanelWidth - 6
	activityLogMaxItems   = 200
	activityLogViewWindow = 14
)

// activityEntry is one row of the activity log modal.
type activityEntry struct {
	EventID string
	At      time.Time
	Summary string
	Target  string
}

// componentOutput carries what a component produced for one key press.
type componentOutput struct {
	intent     app.Intent
	cmd        tea.Cmd
	focusBoard bool
}

// Model is the root Bubble Tea model. It owns no board data: every render reads
// the store, and every change goes through Store.Apply.
type Model struct {
	store     *app.Store
	journal   app.Journal
	clipboard ClipboardWriter

	ready  bool
	width  int
	height int

	status string

	help     help.Model
	keys     keyMap
	cfg      RuntimeConfig
	helpText *markdown.Renderer

	focus      focusArea
	sidebar    sidebar
	panel      listPanel
	boardID    domain.ID
	listCursor int
	taskCursor int

	overlay     overlayMode
	activityLog []activityEntry
	journalErr  error
	searchInput textinput.Model
}

// journalRecordedMsg reports the outcome of one journal write.
type journalRecordedMsg struct {
	err error
}

// activityLogLoadedMsg carries journal entries for the activity log modal.
type activityLogLoadedMsg struct {
	entries []activityEntry
	err     error
}

// clipboardCopiedMsg reports the outcome of one clipboard write.
type clipboardCopiedMsg struct {
	text string
	err  error
}

// NewModel constructs the root model over a store.
func NewModel(store *app.Store, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	searchInput := textinput.New()
	searchInput.Prompt = "⌕ "
	searchInput.Placeholder = "Search"
	searchInput.CharLimit = 120
	searchInput.SetWidth(len(searchInput.Placeholder))
	m := Model{
		store:       store,
		clipboard:   clipboard.WriteAll,
		status:      "ready",
		help:        h,
		keys:        newKeyMap(),
		cfg:         DefaultRuntimeConfig(),
		helpText:    &markdown.Renderer{},
		focus:       focusBoard,
		activityLog: []activityEntry{},
		searchInput: searchInput,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.sidebar = newSidebar(m.cfg.SidebarWidth).focusActive(store.State())
	m.syncSelection()
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case journalRecordedMsg:
		m.journalErr = msg.err
		return m, nil

	case activityLogLoadedMsg:
		if msg.err != nil {
			// Keep the in-memory log when the journal cannot be read.
			if m.overlay == overlayActivityLog {
				m.status = "activity log unavailable: " + msg.err.Error()
			}
			return m, nil
		}
		m.activityLog = mergeActivityEntries(msg.entries, m.activityLog)
		if m.overlay == overlayActivityLog {
			m.status = "activity log"
		}
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("copied %q", msg.text)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	default:
		return m, nil
	}
}

// handleKey routes one key press to the overlay, the editing component or the focused area.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.overlay != overlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.capturingInput() {
		if key.Matches(msg, m.keys.switchFocus) {
			return m.switchFocus()
		}
		return m.routeToFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggleHelp):
		m.overlay = overlayHelp
		m.status = "help"
		return m, nil
	case key.Matches(msg, m.keys.activityLog):
		cmd := m.openActivityLog()
		return m, cmd
	case key.Matches(msg, m.keys.switchFocus):
		return m.switchFocus()
	case key.Matches(msg, m.keys.addBoard):
		return m.applyIntent(app.Intent{Kind: app.IntentAddBoard})
	case key.Matches(msg, m.keys.copyTitle):
		cmd := m.copySelectedTitle()
		return m, cmd
	}
	return m.routeToFocused(msg)
}

// handleOverlayKey handles keys while a modal is open.
func (m Model) handleOverlayKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.cancel),
		m.overlay == overlayHelp && key.Matches(msg, m.keys.toggleHelp),
		m.overlay == overlayActivityLog && key.Matches(msg, m.keys.activityLog):
		m.overlay = overlayNone
		m.status = "ready"
	}
	return m, nil
}

// capturingInput reports whether the focused component owns every key press.
func (m Model) capturingInput() bool {
	if m.focus == focusSidebar {
		return m.sidebar.editing()
	}
	return m.panel.capturesInput()
}

// routeToFocused hands a key press to the focused area.
func (m Model) routeToFocused(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusSidebar {
		st := m.store.State()
		var out componentOutput
		m.sidebar, out = m.sidebar.update(msg, m.keys, st)
		return m.finishComponent(out)
	}
	return m.handleBoardKey(msg)
}

// handleBoardKey handles navigation across lists and tasks and forwards list actions to the panel.
func (m Model) handleBoardKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	board, ok := m.store.ActiveBoard()
	if !ok {
		return m, nil
	}
	if !m.panel.capturesInput() {
		switch {
		case key.Matches(msg, m.keys.moveLeft):
			m.moveListCursor(m.listCursor - 1)
			return m, nil
		case key.Matches(msg, m.keys.moveRight):
			m.moveListCursor(m.listCursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.moveUp):
			m.taskCursor = max(0, m.taskCursor-1)
			return m, nil
		case key.Matches(msg, m.keys.moveDown):
			if m.listCursor < len(board.Lists) {
				m.taskCursor = clamp(m.taskCursor+1, 0, len(board.Lists[m.listCursor].Tasks)-1)
			}
			return m, nil
		case key.Matches(msg, m.keys.addList):
			return m.applyIntent(app.Intent{Kind: app.IntentAddList})
		}
	}
	if m.listCursor >= len(board.Lists) {
		if key.Matches(msg, m.keys.choose) {
			return m.applyIntent(app.Intent{Kind: app.IntentAddList})
		}
		return m, nil
	}
	var out componentOutput
	m.panel, out = m.panel.update(msg, m.keys, board.Lists[m.listCursor], m.taskCursor)
	return m.finishComponent(out)
}

// finishComponent applies whatever a component emitted.
func (m Model) finishComponent(out componentOutput) (tea.Model, tea.Cmd) {
	if out.focusBoard {
		m.focus = focusBoard
	}
	if out.intent.Kind == 0 {
		return m, out.cmd
	}
	next, cmd := m.applyIntent(out.intent)
	return next, tea.Batch(out.cmd, cmd)
}

// switchFocus commits pending edits in the component losing focus and moves focus.
func (m Model) switchFocus() (tea.Model, tea.Cmd) {
	var in app.Intent
	if m.focus == focusSidebar {
		m.sidebar, in = m.sidebar.blur()
		m.focus = focusBoard
	} else {
		m.panel, in = m.panel.blur()
		m.focus = focusSidebar
		m.sidebar = m.sidebar.focusActive(m.store.State())
	}
	if in.Kind == 0 {
		return m, nil
	}
	return m.applyIntent(in)
}

// moveListCursor moves to another list, or the add-list tile, and resets the task cursor.
func (m *Model) moveListCursor(target int) {
	board, ok := m.store.ActiveBoard()
	if !ok {
		return
	}
	target = clamp(target, 0, len(board.Lists))
	if target == m.listCursor {
		return
	}
	m.listCursor = target
	m.taskCursor = 0
	m.syncSelection()
}

// applyIntent runs one intent against the store and records the resulting change.
// Refused intents change nothing and produce no status.
func (m Model) applyIntent(in app.Intent) (tea.Model, tea.Cmd) {
	ev, ok := m.store.Apply(in)
	if !ok {
		m.syncSelection()
		return m, nil
	}
	st := m.store.State()
	switch in.Kind {
	case app.IntentAddBoard:
		m.sidebar.cursor = st.BoardIndex(ev.BoardID)
	case app.IntentAddList:
		if board, found := st.ActiveBoard(); found {
			m.listCursor = board.ListIndex(ev.ListID)
			m.taskCursor = 0
		}
	case app.IntentAddTask:
		if board, found := st.ActiveBoard(); found {
			if idx := board.ListIndex(ev.ListID); idx >= 0 {
				m.listCursor = idx
				m.taskCursor = board.Lists[idx].TaskIndex(ev.TaskID)
			}
		}
	}
	m.syncSelection()
	m.appendActivity(mapChangeEventToActivityEntry(ev))
	m.status = ev.Operation.Summary()
	if strings.TrimSpace(ev.Title) != "" {
		m.status += ": " + ev.Title
	}
	return m, m.recordChangeEvent(ev)
}

// syncSelection clamps cursors to the current state and resets per-list state
// when the active board or the focused list changed.
func (m *Model) syncSelection() {
	st := m.store.State()
	m.sidebar = m.sidebar.sync(st)
	board, ok := st.ActiveBoard()
	if !ok {
		return
	}
	if board.ID != m.boardID {
		m.boardID = board.ID
		m.listCursor = 0
		m.taskCursor = 0
	}
	m.listCursor = clamp(m.listCursor, 0, len(board.Lists))
	if m.listCursor >= len(board.Lists) {
		m.taskCursor = 0
		m.panel = newListPanel(0)
		return
	}
	list := board.Lists[m.listCursor]
	m.taskCursor = clamp(m.taskCursor, 0, len(list.Tasks)-1)
	if m.panel.listID != list.ID {
		m.panel = newListPanel(list.ID)
	}
}

// selectedTask returns the task under the board cursor.
func (m Model) selectedTask() (domain.List, domain.Task, bool) {
	board, ok := m.store.ActiveBoard()
	if !ok || m.listCursor >= len(board.Lists) {
		return domain.List{}, domain.Task{}, false
	}
	list := board.Lists[m.listCursor]
	task, ok := taskAt(list, m.taskCursor)
	return list, task, ok
}

// recordChangeEvent writes one event to the journal.
func (m Model) recordChangeEvent(ev domain.ChangeEvent) tea.Cmd {
	if m.journal == nil {
		return nil
	}
	journal := m.journal
	return func() tea.Msg {
		return journalRecordedMsg{err: journal.RecordChangeEvent(context.Background(), ev)}
	}
}

// openActivityLog opens the activity log modal and triggers a journal fetch.
func (m *Model) openActivityLog() tea.Cmd {
	m.overlay = overlayActivityLog
	m.status = "activity log"
	if m.journal == nil {
		return nil
	}
	return m.loadActivityLog
}

// loadActivityLog loads journal entries for modal rendering.
func (m Model) loadActivityLog() tea.Msg {
	events, err := m.journal.ListChangeEvents(context.Background(), activityLogMaxItems)
	if err != nil {
		return activityLogLoadedMsg{err: err}
	}
	return activityLogLoadedMsg{entries: mapChangeEventsToActivityEntries(events)}
}

// appendActivity appends one in-memory activity row, trimming to the max size.
func (m *Model) appendActivity(entry activityEntry) {
	m.activityLog = append(m.activityLog, entry)
	if len(m.activityLog) > activityLogMaxItems {
		m.activityLog = append([]activityEntry(nil), m.activityLog[len(m.activityLog)-activityLogMaxItems:]...)
	}
}

// mapChangeEventsToActivityEntries converts newest-first journal events into chronological rows.
func mapChangeEventsToActivityEntries(events []domain.ChangeEvent) []activityEntry {
	if len(events) == 0 {
		return []activityEntry{}
	}
	entries := make([]activityEntry, 0, len(events))
	for idx := len(events) - 1; idx >= 0; idx-- {
		entries = append(entries, mapChangeEventToActivityEntry(events[idx]))
	}
	if len(entries) > activityLogMaxItems {
		entries = append([]activityEntry(nil), entries[len(entries)-activityLogMaxItems:]...)
	}
	return entries
}

// mergeActivityEntries combines journal rows with in-memory rows the journal
// has not stored yet. Rows sharing an event id are kept once and the result is
// chronological, trimmed to the newest activityLogMaxItems.
func mergeActivityEntries(journal, local []activityEntry) []activityEntry {
	seen := make(map[string]struct{}, len(journal))
	merged := make([]activityEntry, 0, len(journal)+len(local))
	for _, entry := range journal {
		if entry.EventID != "" {
			seen[entry.EventID] = struct{}{}
		}
		merged = append(merged, entry)
	}
	for _, entry := range local {
		if _, ok := seen[entry.EventID]; ok {
			continue
		}
		merged = append(merged, entry)
	}
	slices.SortStableFunc(merged, func(a, b activityEntry) int {
		return a.At.Compare(b.At)
	})
	if len(merged) > activityLogMaxItems {
		merged = append([]activityEntry(nil), merged[len(merged)-activityLogMaxItems:]...)
	}
	return merged
}

// mapChangeEventToActivityEntry derives a compact activity row from one event.
func mapChangeEventToActivityEntry(event domain.ChangeEvent) activityEntry {
	target := strings.TrimSpace(event.Title)
	if target == "" {
		target = "-"
	}
	return activityEntry{
		EventID: event.ID,
		At:      event.OccurredAt.UTC(),
		Summary: event.Operation.Summary(),
		Target:  target,
	}
}

// copySelectedTitle copies the selected task title, or the active board title
// when the sidebar has focus.
func (m *Model) copySelectedTitle() tea.Cmd {
	var text string
	if m.focus == focusSidebar {
		if board, ok := m.sidebar.cursorBoard(m.store.State()); ok {
			text = board.Title
		}
	} else if _, task, ok := m.selectedTask(); ok {
		text = task.Title
	}
	if text == "" {
		m.status = "nothing to copy"
		return nil
	}
	write := m.clipboard
	return func() tea.Msg {
		return clipboardCopiedMsg{text: text, err: write(text)}
	}
}

// applyRuntimeConfig applies display settings and key overrides.
func (m *Model) applyRuntimeConfig(cfg RuntimeConfig) {
	if cfg.SidebarWidth <= 0 {
		cfg.SidebarWidth = defaultSidebarWidth
	}
	m.cfg = cfg
	m.keys = newKeyMap()
	m.keys.applyConfig(cfg.Keys)
}

// newEditInput constructs an inline edit buffer with a steady cursor. Width
// bounds the visible buffer and keeps the placeholder readable when empty.
func newEditInput(prompt, placeholder, value string, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.SetWidth(width)
	styles := in.Styles()
	styles.Cursor.Blink = false
	in.SetStyles(styles)
	if value != "" {
		in.SetValue(value)
		in.CursorEnd()
	}
	return in
}

// View handles view.
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render builds the full screen as a string.
func (m Model) render() string {
	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")
	statusStyle := lipgloss.NewStyle().Foreground(dim)

	helpBubble := m.help
	helpBubble.ShowAll = false
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		BorderTop(true).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))

	status := ""
	if strings.TrimSpace(m.status) != "" && m.status != "ready" {
		status = statusStyle.Render(m.status)
	}

	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = max(1, m.height-lipgloss.Height(helpLine)-1)
	}
	st := m.store.State()
	sidebarWidth := clamp(m.cfg.SidebarWidth, 8, max(8, m.width/2))
	side := m.sidebar.view(st, m.focus == focusSidebar, sidebarWidth, bodyHeight, m.cfg.ShowFooter)
	mainWidth := max(listPanelWidth, m.width-lipgloss.Width(side)-1)
	main := m.renderBoard(st, accent, muted, mainWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main)
	if bodyHeight > 0 {
		body = fitLines(body, bodyHeight)
	}
	fullContent := body + "\n" + status + "\n" + helpLine

	overlay := ""
	switch m.overlay {
	case overlayHelp:
		overlay = m.renderHelpOverlay(accent, muted, dim, m.width-8)
	case overlayActivityLog:
		overlay = m.renderActivityLog(accent, muted, m.width-8)
	}
	if overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}
	return fullContent
}

// renderBoard renders the header and the list panels of the active board.
func (m Model) renderBoard(st app.State, accent, muted color.Color, width, height int) string {
	board, ok := st.ActiveBoard()
	if !ok {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	searchStyle := lipgloss.NewStyle().Foreground(muted)
	glyphStyle := lipgloss.NewStyle().Foreground(muted)

	searchBox := searchStyle.Render("[" + m.searchInput.View() + "]")
	settings := glyphStyle.Render("⚙")
	title := titleStyle.Render(truncate(board.Title, max(1, width-lipgloss.Width(searchBox)-6)))
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(searchBox)-lipgloss.Width(settings)-2)
	header := title + strings.Repeat(" ", gap) + searchBox + "  " + settings

	panelHeight := 16
	if height > 0 {
		panelHeight = max(6, height-2)
	}
	total := len(board.Lists) + 1
	fit := max(1, width/(listPanelWidth+1))
	start, end := windowBounds(total, m.listCursor, fit)
	boardFocused := m.focus == focusBoard
	views := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		if idx == len(board.Lists) {
			views = append(views, m.renderAddListTile(accent, muted, boardFocused && m.listCursor == idx, panelHeight))
			continue
		}
		list := board.Lists[idx]
		panel := newListPanel(list.ID)
		if idx == m.listCursor {
			panel = m.panel
		}
		views = append(views, panel.view(list, panelView{
			focused:    boardFocused && idx == m.listCursor,
			taskCursor: m.taskCursor,
			width:      listPanelWidth,
			height:     panelHeight,
			showCounts: m.cfg.ShowCompletedCount,
		}))
	}
	lists := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	return header + "\n\n" + lists
}

// renderAddListTile renders the trailing "+ Add new list" tile.
func (m Model) renderAddListTile(accent, muted color.Color, selected bool, height int) string {
	borderColor := muted
	label := lipgloss.NewStyle().Foreground(muted).Render("+ Add new list")
	if selected {
		borderColor = accent
		label = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Render("+ Add new list")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(listPanelWidth).
		Render(fitLines(label, max(1, min(3, height-2))))
}

// helpMarkdown returns the help overlay body as markdown.
func (m Model) helpMarkdown() string {
	rows := []key.Binding{
		m.keys.switchFocus, m.keys.moveLeft, m.keys.moveRight, m.keys.moveUp, m.keys.moveDown,
		m.keys.choose, m.keys.cancel, m.keys.addBoard, m.keys.addList, m.keys.addTask,
		m.keys.rename, m.keys.toggleTask, m.keys.deleteItem, m.keys.listMenu,
		m.keys.activityLog, m.keys.copyTitle, m.keys.toggleHelp, m.keys.quit,
	}
	var b strings.Builder
	b.WriteString("# tasksboard help\n\n")
	b.WriteString("| key | action |\n|---|---|\n")
	for _, binding := range rows {
		h := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	b.WriteString("\n## Editing\n\n")
	b.WriteString("- `enter` or `tab` keeps the edit, `esc` throws it away.\n")
	b.WriteString("- Blank titles are ignored and the old title stays.\n")
	b.WriteString("- The last board cannot be deleted.\n")
	return b.String()
}

// renderHelpOverlay renders the markdown help modal.
func (m Model) renderHelpOverlay(accent, muted, dim color.Color, maxWidth int) string {
	width := clamp(maxWidth, 56, 90)
	body, err := m.helpText.Render(m.helpMarkdown(), width-4)
	if err != nil {
		body = m.helpMarkdown()
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accent).Render("Help"),
		lipgloss.NewStyle().Foreground(muted).Render("press ? or esc to close"),
		body,
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

// renderActivityLog renders the activity log modal, newest first.
func (m Model) renderActivityLog(accent, muted color.Color, maxWidth int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)
	lines := []string{titleStyle.Render("Activity Log")}
	if len(m.activityLog) == 0 {
		lines = append(lines, hintStyle.Render("(no activity yet)"))
	} else {
		rendered := 0
		for idx := len(m.activityLog) - 1; idx >= 0; idx-- {
			entry := m.activityLog[idx]
			lines = append(lines, fmt.Sprintf("%s  %s • %s", formatActivityTimestamp(entry.At), entry.Summary, truncate(entry.Target, 42)))
			rendered++
			if rendered >= activityLogViewWindow {
				break
			}
		}
	}
	if m.journalErr != nil {
		lines = append(lines, hintStyle.Render("journal write failed: "+m.journalErr.Error()))
	}
	lines = append(lines, hintStyle.Render("esc close"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(clamp(maxWidth, 44, 96)).
		Render(strings.Join(lines, "\n"))
}

// formatActivityTimestamp formats activity timestamps for compact modal rendering.
func formatActivityTimestamp(at time.Time) string {
	if at.IsZero() {
		return "--:--:--"
	}
	local := at.Local()
	now := time.Now().In(local.Location())
	if local.Year() != now.Year() || local.YearDay() != now.YearDay() {
		return local.Format("01-02 15:04")
	}
	return local.Format("15:04:05")
}

// wrapIndex returns current+delta wrapped into [0,total).
func wrapIndex(current int, delta int, total int) int {
	if total <= 0 {
		return 0
	}
	next := current + delta
	for next < 0 {
		next += total
	}
	for next >= total {
		next -= total
	}
	return next
}

// windowBounds returns an inclusive-exclusive list window that keeps selected visible.
func windowBounds(total, selected, windowSize int) (int, int) {
	if total <= 0 || windowSize <= 0 {
		return 0, 0
	}
	if total <= windowSize {
		return 0, total
	}
	selected = clamp(selected, 0, total-1)
	half := windowSize / 2
	start := selected - half
	if start < 0 {
		start = 0
	}
	end := start + windowSize
	if end > total {
		end = total
		start = max(0, end-windowSize)
	}
	return start, end
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent overlays on content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
