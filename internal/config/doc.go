// Package config manages user-level settings stored at ~/.claude/slashcmd.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default scope and template variant used when scaffolding.
package config
