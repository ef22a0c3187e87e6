package command

import "errors"

// Sentinel errors surfaced by Initialize. Directory-creation and write
// failures are reported as wrapped filesystem errors instead.
var (
	// ErrInvalidName rejects names outside [A-Za-z0-9_-]+ before any
	// filesystem access happens.
	ErrInvalidName = errors.New("command name must contain only letters, digits, hyphens, and underscores")

	// ErrAlreadyExists refuses to overwrite an existing command file.
	ErrAlreadyExists = errors.New("command already exists")
)
