package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"toggle": []string{"space", "enter"},
			"quit":   "q",
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "request_timeout_seconds":
				return DefaultRequestTimeoutSeconds
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_path":
			return "~/.punch/timesheet.db"
		case "listen_address":
			return DefaultListenAddress
		case "service_url":
			return DefaultServiceURL
		case "ssh_host":
			return DefaultSSHHost
		case "ssh_port":
			return DefaultSSHPort
		case "user_id":
			return DefaultUserID
		default:
			return "example"
		}
	}

	return nil
}
