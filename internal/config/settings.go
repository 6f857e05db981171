package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Defaults applied when neither flags, env vars nor settings.json provide a value
const (
	DefaultListenAddress         = "127.0.0.1:8080"
	DefaultRequestTimeoutSeconds = 10
	DefaultServiceURL            = "http://127.0.0.1:8080"
	DefaultSSHHost               = "localhost"
	DefaultSSHPort               = "23234"
	DefaultUserID                = "1"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g., "toggle", "quit"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names, empty keys and keys assigned twice.
// Duplicates are checked on the effective bindings: overrides merged over defaults,
// so an override cannot steal a key another binding still uses.
// The defaults parameter should come from ui.GetDefaultKeyBindings().
func (k KeyBindingsConfig) Validate(defaults map[string][]string) error {
	if k == nil {
		return nil
	}

	for name, keys := range k {
		if _, ok := defaults[name]; !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
		}
	}

	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToAction := make(map[string]string)
	for _, name := range names {
		keys := defaults[name]
		if custom, ok := k[name]; ok && len(custom) > 0 {
			keys = custom
		}
		for _, key := range keys {
			key = NormalizeKey(key)
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", DisplayKey(key), existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// NormalizeKey maps the "space" alias used in settings.json to the key string bubbletea reports
func NormalizeKey(key string) string {
	if key == "space" {
		return " "
	}
	return key
}

// DisplayKey is the inverse of NormalizeKey
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// Settings represents the structure of $PUNCH_HOME/settings.json
type Settings struct {
	DBPath                string            `json:"db_path,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	ListenAddress         string            `json:"listen_address,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	RequestTimeoutSeconds *int              `json:"request_timeout_seconds,omitempty"`
	ServiceURL            string            `json:"service_url,omitempty"`
	SSHHost               string            `json:"ssh_host,omitempty"`
	SSHPort               string            `json:"ssh_port,omitempty"`
	UserID                string            `json:"user_id,omitempty"`
}

// LoadSettings loads settings from $PUNCH_HOME/settings.json.
// Returns empty Settings if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $PUNCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path, creating its directory
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
