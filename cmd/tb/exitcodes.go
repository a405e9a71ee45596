package main

// Exit codes shared by all subcommands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (runtime failure, I/O)
	ExitConfigError = 2 // No catalog found / configuration error
	ExitDataError   = 3 // Validation failure or malformed input
)
