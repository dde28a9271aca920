package tui

import "github.com/evanschultz/tasksboard/internal/app"

// KeyConfig holds configurable key overrides for board actions.
type KeyConfig struct {
	AddBoard    string
	AddList     string
	AddTask     string
	Rename      string
	Toggle      string
	Delete      string
	ListMenu    string
	ActivityLog string
	Copy        string
}

// RuntimeConfig holds display settings the model reads while rendering.
type RuntimeConfig struct {
	ShowCompletedCount bool
	SidebarWidth       int
	ShowFooter         bool
	Keys               KeyConfig
}

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(string) error

type Option func(*Model)

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ShowCompletedCount: true,
		SidebarWidth:       defaultSidebarWidth,
		ShowFooter:         true,
	}
}

func WithRuntimeConfig(cfg RuntimeConfig) Option {
	return func(m *Model) {
		m.applyRuntimeConfig(cfg)
	}
}

// WithJournal records every applied change and backs the activity log.
func WithJournal(journal app.Journal) Option {
	return func(m *Model) {
		m.journal = journal
	}
}

func WithClipboard(write ClipboardWriter) Option {
	return func(m *Model) {
		if write != nil {
			m.clipboard = write
		}
	}
}
