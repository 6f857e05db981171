// Package harness provides utilities for integration testing the punch CLI.
// It handles binary compilation, environment isolation, command execution
// and running the time-tracking service in the background.
//
// Environment variables managed:
//   - PUNCH_HOME: Isolated per test (temp directory)
//   - PUNCH_DEBUG: Disabled to reduce noise
//   - PUNCH_SERVICE_URL: Points at the service started by StartService
package harness
