package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/punch/internal/config"
)

// KeyDefinition defines the metadata for a configurable key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions is the single source of truth for key names, defaults and help text
var AllKeyDefinitions = []KeyDefinition{
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "more keys"},
	{Name: "quit", Defaults: []string{"q", "esc"}, Help: "quit"},
	{Name: "toggle", Defaults: []string{" ", "enter"}, Help: "clock in/out"},
}

// GetValidKeyNames returns all configurable key names, sorted
func GetValidKeyNames() []string {
	names := make([]string, 0, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

// GetDefaultKeyBindings returns the default keys of every binding
func GetDefaultKeyBindings() map[string][]string {
	defaults := make(map[string][]string, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		defaults[def.Name] = def.Defaults
	}
	return defaults
}

// IsValidKeyName reports whether name is a configurable binding
func IsValidKeyName(name string) bool {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			return true
		}
	}
	return false
}

// KeyMap holds the clock widget key bindings
type KeyMap struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
	Toggle    key.Binding
}

// NewKeyMap builds the key map from defaults, applying overrides from settings
func NewKeyMap(overrides config.KeyBindingsConfig) KeyMap {
	bindings := make(map[string]key.Binding, len(AllKeyDefinitions))
	for _, def := range AllKeyDefinitions {
		keys := def.Defaults
		if custom, ok := overrides[def.Name]; ok && len(custom) > 0 {
			keys = normalizeKeys(custom)
		}
		bindings[def.Name] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeyLabel(keys[0]), def.Help),
		)
	}

	return KeyMap{
		ForceQuit: bindings["force_quit"],
		Help:      bindings["help"],
		Quit:      bindings["quit"],
		Toggle:    bindings["toggle"],
	}
}

// normalizeKeys maps the "space" alias used in settings.json to the key string bubbletea reports
func normalizeKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = config.NormalizeKey(k)
	}
	return out
}

// helpKeyLabel renders keys that are invisible in help text
func helpKeyLabel(k string) string {
	return config.DisplayKey(k)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.Quit, k.ForceQuit, k.Help},
	}
}
