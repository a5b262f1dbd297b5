package cli

// Exit codes for the reqcheck CLI.
// These codes are stable for scripting, pre-commit hooks, and CI use.
const (
	// ExitSuccess indicates every required file is present.
	ExitSuccess = 0

	// ExitMissingFiles indicates one or more required files are missing.
	// Unexpected runtime errors (I/O failures) also exit with this code.
	ExitMissingFiles = 1
)
