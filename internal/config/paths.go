package config

import (
	"os"
	"path/filepath"
)

// GetPunchHome returns PUNCH_HOME or the ~/.punch default
func GetPunchHome() string {
	punchHome := os.Getenv("PUNCH_HOME")
	if punchHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".punch"
		}
		return filepath.Join(homeDir, ".punch")
	}
	return ExpandPath(punchHome)
}

// GetDBPath returns $PUNCH_HOME/timesheet.db
func GetDBPath() string {
	return filepath.Join(GetPunchHome(), "timesheet.db")
}

// GetSettingsPath returns $PUNCH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPunchHome(), "settings.json")
}

// GetSSHDir returns $PUNCH_HOME/ssh, where the SSH host key lives
func GetSSHDir() string {
	return filepath.Join(GetPunchHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
