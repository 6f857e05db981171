package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	timeout := 3
	debug := true

	require.NoError(t, SaveSettingsTo(path, &Settings{
		Debug:                 &debug,
		Keys:                  KeyBindingsConfig{"toggle": {"t"}},
		RequestTimeoutSeconds: &timeout,
		ServiceURL:            "http://timesheet.local",
		UserID:                "42",
	}))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://timesheet.local", loaded.ServiceURL)
	assert.Equal(t, "42", loaded.UserID)
	require.NotNil(t, loaded.RequestTimeoutSeconds)
	assert.Equal(t, 3, *loaded.RequestTimeoutSeconds)
	assert.Equal(t, KeyBindingValue{"t"}, loaded.Keys["toggle"])
}

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected KeyBindingValue
	}{
		{"single string", `"t"`, KeyBindingValue{"t"}},
		{"array", `["space", "enter"]`, KeyBindingValue{"space", "enter"}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kv KeyBindingValue
			require.NoError(t, kv.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.expected, kv)
		})
	}
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	defaults := map[string][]string{
		"help":   {"?"},
		"quit":   {"q", "esc"},
		"toggle": {" ", "enter"},
	}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{"nil config", nil, ""},
		{"valid override", KeyBindingsConfig{"toggle": {"t"}}, ""},
		{"unknown name", KeyBindingsConfig{"archive": {"a"}}, "unknown key binding 'archive'"},
		{"empty key", KeyBindingsConfig{"quit": {""}}, "contains empty value"},
		{"duplicate key", KeyBindingsConfig{"toggle": {"q"}, "quit": {"q"}}, "is assigned to both"},
		{"override takes a default key", KeyBindingsConfig{"toggle": {"q"}}, "key 'q' is assigned to both 'quit' and 'toggle'"},
		{"space alias collides with default", KeyBindingsConfig{"help": {"space"}}, "key 'space' is assigned to both 'help' and 'toggle'"},
		{"default key freed by its override", KeyBindingsConfig{"toggle": {"q"}, "quit": {"x"}}, ""},
		{"override repeats its own default", KeyBindingsConfig{"toggle": {"enter"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(defaults)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetPunchHome(t *testing.T) {
	t.Setenv("PUNCH_HOME", "/tmp/punch-test")

	assert.Equal(t, "/tmp/punch-test", GetPunchHome())
	assert.Equal(t, "/tmp/punch-test/settings.json", GetSettingsPath())
	assert.Equal(t, "/tmp/punch-test/timesheet.db", GetDBPath())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, DefaultServiceURL, example["service_url"])
	assert.Equal(t, DefaultUserID, example["user_id"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Contains(t, example, "keys")
	assert.Len(t, example, 10)
}
