package command

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// NormalizeName strips an optional trailing ".md" suffix from a raw
// command name, so "foo.md" and "foo" both scaffold foo.md.
func NormalizeName(raw string) string {
	return strings.TrimSuffix(raw, ".md")
}

// ValidateName checks a normalized command name. The name becomes both a
// file name and a trigger token, so it is restricted to ASCII letters,
// digits, hyphens, and underscores.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: %w", name, ErrInvalidName)
	}
	return nil
}
