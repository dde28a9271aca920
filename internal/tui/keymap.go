package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
)

// keyMap represents key map data used by this package.
type keyMap struct {
	quit        key.Binding
	toggleHelp  key.Binding
	switchFocus key.Binding
	moveLeft    key.Binding
	moveRight   key.Binding
	moveUp      key.Binding
	moveDown    key.Binding
	choose      key.Binding
	cancel      key.Binding
	addBoard    key.Binding
	addList     key.Binding
	addTask     key.Binding
	rename      key.Binding
	toggleTask  key.Binding
	deleteItem  key.Binding
	listMenu    key.Binding
	activityLog key.Binding
	copyTitle   key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		toggleHelp:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		switchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "sidebar/board")),
		moveLeft:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "list left")),
		moveRight:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "list right")),
		moveUp:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		moveDown:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		choose:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/commit")),
		cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard/close")),
		addBoard:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "new board")),
		addList:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		addTask:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new task")),
		rename:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		toggleTask:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		deleteItem:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		listMenu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "list menu")),
		activityLog: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "activity log")),
		copyTitle:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),
	}
}

// applyConfig applies configured key overrides. Blank values keep the current binding.
func (k *keyMap) applyConfig(cfg KeyConfig) {
	configureBinding(&k.addBoard, cfg.AddBoard, "b", "new board")
	configureBinding(&k.addList, cfg.AddList, "n", "new list")
	configureBinding(&k.addTask, cfg.AddTask, "a", "new task")
	configureBinding(&k.rename, cfg.Rename, "e", "rename")
	configureBinding(&k.toggleTask, cfg.Toggle, "space", "toggle done")
	configureBinding(&k.deleteItem, cfg.Delete, "d", "delete")
	configureBinding(&k.listMenu, cfg.ListMenu, "m", "list menu")
	configureBinding(&k.activityLog, cfg.ActivityLog, "g", "activity log")
	configureBinding(&k.copyTitle, cfg.Copy, "y", "copy title")
}

// configureBinding replaces the keys and help text of one binding.
func configureBinding(b *key.Binding, raw, fallback, desc string) {
	keys, help := parseBindingKeys(raw, fallback)
	b.SetKeys(keys...)
	b.SetHelp(help, desc)
}

// parseBindingKeys converts one configured key into matcher keys and help text.
// "space" matches both spellings bubbletea reports, an uppercase rune also
// matches its shift+ form, and named keys match case-insensitively.
func parseBindingKeys(raw, fallback string) ([]string, string) {
	value := strings.TrimSpace(raw)
	if value == "" && raw == " " {
		value = "space"
	}
	if value == "" {
		value = strings.TrimSpace(fallback)
	}
	if strings.EqualFold(value, "space") {
		return []string{" ", "space"}, "space"
	}
	if utf8.RuneCountInString(value) == 1 {
		r, _ := utf8.DecodeRuneInString(value)
		if unicode.IsUpper(r) {
			return []string{value, "shift+" + string(unicode.ToLower(r))}, value
		}
		return []string{value}, value
	}
	return []string{strings.ToLower(value)}, value
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.switchFocus, k.addTask, k.rename, k.toggleTask, k.deleteItem, k.listMenu, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.switchFocus, k.moveLeft, k.moveRight, k.moveUp, k.moveDown, k.choose, k.cancel},
		{k.addBoard, k.addList, k.addTask, k.rename, k.toggleTask, k.deleteItem, k.listMenu},
		{k.activityLog, k.copyTitle, k.toggleHelp, k.quit},
	}
}
