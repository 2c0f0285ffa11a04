package app

import (
	"slices"
	"strings"

	"github.com/AnatoleLucet/railway-timeline/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Actions are the layer between physical key presses and behavior: a key is
// looked up in keyToAction and the resulting action is dispatched in
// handleBrowseKey. Defaults live in defaultActionKeys; users can override any
// of them through the "keybindings" object in config.json.
// ---------------------------------------------------------------------------

const (
	// actionScrollLeft moves the timeline ScrollStep columns back in time.
	actionScrollLeft = "timeline.scroll.left"

	// actionScrollRight moves the timeline ScrollStep columns forward.
	actionScrollRight = "timeline.scroll.right"

	// actionPageLeft moves back by most of a viewport.
	actionPageLeft = "timeline.page.left"

	// actionPageRight moves forward by most of a viewport.
	actionPageRight = "timeline.page.right"

	// actionZoomIn zooms in around the viewport center.
	actionZoomIn = "timeline.zoom.in"

	// actionZoomOut zooms out around the viewport center.
	actionZoomOut = "timeline.zoom.out"

	// actionFit fits the whole timeline range into the viewport.
	actionFit = "timeline.fit"

	// actionNow centers the viewport on the current time.
	actionNow = "timeline.now"

	// actionStart jumps to the beginning of the timeline.
	actionStart = "timeline.start"

	// actionEnd jumps to the end of the timeline.
	actionEnd = "timeline.end"

	// actionNextDeployment selects the next deployment in time.
	actionNextDeployment = "deployment.next"

	// actionPrevDeployment selects the previous deployment in time.
	actionPrevDeployment = "deployment.prev"

	// actionServiceUp moves the selection to the service row above.
	actionServiceUp = "service.up"

	// actionServiceDown moves the selection to the service row below.
	actionServiceDown = "service.down"

	// actionFocusDeployment zooms the viewport onto the selected deployment.
	actionFocusDeployment = "deployment.focus"

	// actionCopyID copies the selected deployment ID to the clipboard.
	actionCopyID = "deployment.copy_id"

	// actionDetailToggle shows or hides the deployment detail pane.
	actionDetailToggle = "detail.toggle"

	// actionDetailScrollUp scrolls the detail pane up by half a page.
	actionDetailScrollUp = "detail.scroll.up"

	// actionDetailScrollDown scrolls the detail pane down by half a page.
	actionDetailScrollDown = "detail.scroll.down"

	// actionRefresh reloads the data source.
	actionRefresh = "data.refresh"

	// actionHelp toggles the in-app keyboard shortcut reference panel.
	actionHelp = "help.toggle"

	// actionQuit exits the application.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "up", "down", "left", "right"
//   - Single characters: "f", "?", "+", etc.
var defaultActionKeys = map[string][]string{
	actionScrollLeft:       {"left", "h"},
	actionScrollRight:      {"right", "l"},
	actionPageLeft:         {"pgup", "shift+h"},
	actionPageRight:        {"pgdown", "shift+l"},
	actionZoomIn:           {"+", "="},
	actionZoomOut:          {"-", "_"},
	actionFit:              {"f", "0"},
	actionNow:              {"t"},
	actionStart:            {"home", "g"},
	actionEnd:              {"end", "shift+g"},
	actionNextDeployment:   {"tab", "]"},
	actionPrevDeployment:   {"shift+tab", "["},
	actionServiceUp:        {"up", "k"},
	actionServiceDown:      {"down", "j"},
	actionFocusDeployment:  {"enter"},
	actionCopyID:           {"y"},
	actionDetailToggle:     {"d"},
	actionDetailScrollUp:   {"ctrl+u"},
	actionDetailScrollDown: {"ctrl+d"},
	actionRefresh:          {"r", "ctrl+r"},
	actionHelp:             {"?"},
	actionQuit:             {"q", "ctrl+c"},
}

// actionDescriptions is the help panel text for each action, in display
// order.
var actionDescriptions = []struct {
	action string
	text   string
}{
	{actionScrollLeft, "scroll left"},
	{actionScrollRight, "scroll right"},
	{actionPageLeft, "page left"},
	{actionPageRight, "page right"},
	{actionZoomIn, "zoom in"},
	{actionZoomOut, "zoom out"},
	{actionFit, "fit whole range"},
	{actionNow, "center on now"},
	{actionStart, "jump to start"},
	{actionEnd, "jump to end"},
	{actionNextDeployment, "next deployment"},
	{actionPrevDeployment, "previous deployment"},
	{actionServiceUp, "service above"},
	{actionServiceDown, "service below"},
	{actionFocusDeployment, "zoom to deployment"},
	{actionCopyID, "copy deployment ID"},
	{actionDetailToggle, "toggle details"},
	{actionDetailScrollUp, "scroll details up"},
	{actionDetailScrollDown, "scroll details down"},
	{actionRefresh, "reload data"},
	{actionHelp, "toggle help"},
	{actionQuit, "quit"},
}

// ---------------------------------------------------------------------------
// Keybinding initialization
// ---------------------------------------------------------------------------

// loadKeybindings initializes the key↔action maps from defaultActionKeys and
// then applies cfg.Keybindings on top.
//
// Unknown action names in overrides are logged and ignored. An override
// replaces the action's full default key set. When two actions claim the same
// key the first one keeps it and a warning is logged.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// applyKeybindingOverride updates a single action's key binding, replacing the
// action's full default key set.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex constructs the reverse lookup map (keyToAction) from
// the current keyForAction map. Actions are visited in sorted order so
// conflicts resolve the same way on every run.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// ---------------------------------------------------------------------------
// Key string normalization
// ---------------------------------------------------------------------------

// normalizeKeyString converts a user-provided key string into the canonical
// lowercase form used by Bubble Tea and the keybinding maps.
//
// A single uppercase letter (e.g. "G") becomes "shift+g" because Bubble Tea
// may report shifted letters as uppercase runes.
//
// Examples:
//
//	normalizeKeyString("Ctrl+R")  → "ctrl+r"
//	normalizeKeyString(" G ")     → "shift+g"
//	normalizeKeyString("")        → ""
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey looks up the action bound to the given key string. Returns an
// empty string if no action is bound.
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	if normalized == "+" {
		return "+"
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "":
			parts[i] = "+"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}
