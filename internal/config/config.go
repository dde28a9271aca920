package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Sidebar width bounds accepted by Validate.
const (
	MinSidebarWidth = 16
	MaxSidebarWidth = 60
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Board   BoardConfig   `toml:"board"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeyConfig     `toml:"keys"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

// DevFileConfig controls the logfmt file sink used in dev mode. An empty Dir
// falls back to the platform log directory.
type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type BoardConfig struct {
	SeedSample         bool `toml:"seed_sample"`
	ShowCompletedCount bool `toml:"show_completed_count"`
}

type UIConfig struct {
	SidebarWidth int  `toml:"sidebar_width"`
	ShowFooter   bool `toml:"show_footer"`
}

// KeyConfig overrides the default key for board actions. Blank values keep the
// built-in binding.
type KeyConfig struct {
	AddBoard    string `toml:"add_board"`
	AddList     string `toml:"add_list"`
	AddTask     string `toml:"add_task"`
	Rename      string `toml:"rename"`
	Toggle      string `toml:"toggle"`
	Delete      string `toml:"delete"`
	ListMenu    string `toml:"list_menu"`
	ActivityLog string `toml:"activity_log"`
	Copy        string `toml:"copy"`
}

// reservedKeys are bound to navigation and cannot be reassigned.
var reservedKeys = map[string]struct{}{
	"tab": {}, "shift+tab": {}, "enter": {}, "esc": {}, "q": {}, "?": {}, "ctrl+c": {},
	"up": {}, "down": {}, "left": {}, "right": {}, "j": {}, "k": {}, "h": {}, "l": {},
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
			},
		},
		Board: BoardConfig{
			SeedSample:         true,
			ShowCompletedCount: true,
		},
		UI: UIConfig{
			SidebarWidth: 26,
			ShowFooter:   true,
		},
		Keys: KeyConfig{
			AddBoard:    "b",
			AddList:     "n",
			AddTask:     "a",
			Rename:      "e",
			Toggle:      "space",
			Delete:      "d",
			ListMenu:    "m",
			ActivityLog: "g",
			Copy:        "y",
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.TrimSpace(strings.ToLower(c.Logging.Level)) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	if c.UI.SidebarWidth < MinSidebarWidth || c.UI.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("ui.sidebar_width must be between %d and %d", MinSidebarWidth, MaxSidebarWidth)
	}

	seen := map[string]string{}
	for _, binding := range c.Keys.bindings() {
		key := normalizeKey(binding.value)
		if key == "" {
			continue
		}
		if _, ok := reservedKeys[key]; ok {
			return fmt.Errorf("keys.%s uses reserved key %q", binding.name, binding.value)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("keys.%s duplicates keys.%s (%q)", binding.name, other, binding.value)
		}
		seen[key] = binding.name
	}

	return nil
}

// namedKey pairs a TOML field name with its configured value.
type namedKey struct {
	name  string
	value string
}

// bindings lists the configured keys in declaration order.
func (k KeyConfig) bindings() []namedKey {
	return []namedKey{
		{"add_board", k.AddBoard},
		{"add_list", k.AddList},
		{"add_task", k.AddTask},
		{"rename", k.Rename},
		{"toggle", k.Toggle},
		{"delete", k.Delete},
		{"list_menu", k.ListMenu},
		{"activity_log", k.ActivityLog},
		{"copy", k.Copy},
	}
}

// normalizeKey folds equivalent spellings of one key together.
func normalizeKey(raw string) string {
	if raw == " " {
		return "space"
	}
	key := strings.TrimSpace(raw)
	if len([]rune(key)) > 1 {
		key = strings.ToLower(key)
	}
	return key
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
