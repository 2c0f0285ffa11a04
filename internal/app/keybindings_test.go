package app

import (
	"testing"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
)

func TestActionForKeySupportsDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{})

	cases := map[string]string{
		"left":      actionScrollLeft,
		"h":         actionScrollLeft,
		"right":     actionScrollRight,
		"L":         actionPageRight,
		"pgup":      actionPageLeft,
		"+":         actionZoomIn,
		"=":         actionZoomIn,
		"-":         actionZoomOut,
		"0":         actionFit,
		"g":         actionStart,
		"G":         actionEnd,
		"tab":       actionNextDeployment,
		"shift+tab": actionPrevDeployment,
		"k":         actionServiceUp,
		"down":      actionServiceDown,
		"ctrl+r":    actionRefresh,
		"ctrl+c":    actionQuit,
	}
	for key, want := range cases {
		if got := m.actionForKey(key); got != want {
			t.Fatalf("actionForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestEveryActionHasDefaultKeyAndDescription(t *testing.T) {
	described := map[string]bool{}
	for _, desc := range actionDescriptions {
		described[desc.action] = true
		if len(defaultActionKeys[desc.action]) == 0 {
			t.Fatalf("action %q has no default key", desc.action)
		}
	}
	for action := range defaultActionKeys {
		if !described[action] {
			t.Fatalf("action %q is missing from the help panel", action)
		}
	}
}

func TestLoadKeybindingsOverrideReplacesDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionZoomIn: "I",
		},
	})

	if got := m.actionForKey("shift+i"); got != actionZoomIn {
		t.Fatalf("expected override key to map to zoom in, got %q", got)
	}
	if got := m.actionForKey("I"); got != actionZoomIn {
		t.Fatalf("expected uppercase key to normalize to the override, got %q", got)
	}
	if got := m.actionForKey("+"); got != "" {
		t.Fatalf("expected default alias '+' to be replaced, got %q", got)
	}
}

func TestLoadKeybindingsIgnoresUnknownActions(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{"timeline.explode": "x"},
	})
	if got := m.actionForKey("x"); got != "" {
		t.Fatalf("expected unknown action to be ignored, got %q", got)
	}
}

func TestLoadKeybindingsConflictKeepsFirstActionInSortedOrder(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{actionZoomIn: "h"},
	})
	if got := m.actionForKey("h"); got != actionScrollLeft {
		t.Fatalf("expected conflicting key to stay on scroll left, got %q", got)
	}
}

func TestHumanizeKeyLabel(t *testing.T) {
	cases := map[string]string{
		"ctrl+r":    "Ctrl+R",
		"shift+tab": "Shift+Tab",
		"pgdown":    "PgDn",
		"+":         "+",
		"-":         "-",
		"G":         "Shift+G",
		"left":      "←",
	}
	for key, want := range cases {
		if got := humanizeKeyLabel(key); got != want {
			t.Fatalf("humanizeKeyLabel(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestAllActionKeysJoinsLabels(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{})
	if got := m.allActionKeys(actionScrollLeft, ""); got != "←, H" {
		t.Fatalf("expected '←, H', got %q", got)
	}
	if got := m.allActionKeys("missing", "unbound"); got != "unbound" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
