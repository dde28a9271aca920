package tui

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// TestParseBindingKeys verifies key parsing behavior for configured overrides.
func TestParseBindingKeys(t *testing.T) {
	t.Run("space aliases", func(t *testing.T) {
		keys, help := parseBindingKeys("space", ".")
		if len(keys) != 2 || keys[0] != " " || keys[1] != "space" {
			t.Fatalf("unexpected parsed space keys %#v", keys)
		}
		if help != "space" {
			t.Fatalf("unexpected space help text %q", help)
		}
	})

	t.Run("literal space", func(t *testing.T) {
		keys, help := parseBindingKeys(" ", "x")
		if len(keys) != 2 || keys[0] != " " || help != "space" {
			t.Fatalf("unexpected literal space parse %#v %q", keys, help)
		}
	})

	t.Run("uppercase rune includes shift alias", func(t *testing.T) {
		keys, help := parseBindingKeys("Z", "z")
		if len(keys) != 2 || keys[0] != "Z" || keys[1] != "shift+z" {
			t.Fatalf("unexpected uppercase parsed keys %#v", keys)
		}
		if help != "Z" {
			t.Fatalf("unexpected uppercase help text %q", help)
		}
	})

	t.Run("multi rune lowercases key matcher", func(t *testing.T) {
		keys, help := parseBindingKeys("Ctrl+R", "r")
		if len(keys) != 1 || keys[0] != "ctrl+r" {
			t.Fatalf("unexpected multi-rune parsed keys %#v", keys)
		}
		if help != "Ctrl+R" {
			t.Fatalf("unexpected multi-rune help text %q", help)
		}
	})

	t.Run("blank uses fallback", func(t *testing.T) {
		keys, help := parseBindingKeys("", "x")
		if len(keys) != 1 || keys[0] != "x" {
			t.Fatalf("unexpected fallback parsed keys %#v", keys)
		}
		if help != "x" {
			t.Fatalf("unexpected fallback help text %q", help)
		}
	})
}

// TestConfigureBinding verifies binding override application behavior.
func TestConfigureBinding(t *testing.T) {
	b := key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "old"))
	configureBinding(&b, "v", "g", "activity log")
	keys := b.Keys()
	if len(keys) != 1 || keys[0] != "v" {
		t.Fatalf("unexpected configured keys %#v", keys)
	}
	if b.Help().Key != "v" || b.Help().Desc != "activity log" {
		t.Fatalf("unexpected configured help %#v", b.Help())
	}
}

// TestKeyMapApplyConfig verifies dynamic key map override behavior.
func TestKeyMapApplyConfig(t *testing.T) {
	k := newKeyMap()
	k.applyConfig(KeyConfig{
		AddTask:     "t",
		Toggle:      "x",
		Delete:      "D",
		ActivityLog: "v",
	})

	assertKeys := func(name string, binding key.Binding, expected ...string) {
		t.Helper()
		got := binding.Keys()
		if len(got) != len(expected) {
			t.Fatalf("%s key count mismatch got=%#v expected=%#v", name, got, expected)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Fatalf("%s key mismatch got=%#v expected=%#v", name, got, expected)
			}
		}
	}

	assertKeys("add task", k.addTask, "t")
	assertKeys("toggle", k.toggleTask, "x")
	assertKeys("delete", k.deleteItem, "D", "shift+d")
	assertKeys("activity log", k.activityLog, "v")
	assertKeys("add board (unchanged)", k.addBoard, "b")
	assertKeys("copy (unchanged)", k.copyTitle, "y")
}

// TestKeyMapSpaceMatchesKeyPress verifies the default toggle binding matches a space press.
func TestKeyMapSpaceMatchesKeyPress(t *testing.T) {
	k := newKeyMap()
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, k.toggleTask) {
		t.Fatal("expected space key press to match toggle binding")
	}
}
