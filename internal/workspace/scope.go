package workspace

import "fmt"

// Scope selects which commands directory an operation targets.
type Scope string

const (
	// ScopeProject targets <project-root>/.claude/commands/.
	ScopeProject Scope = "project"
	// ScopeUser targets <home>/.claude/commands/.
	ScopeUser Scope = "user"
)

// ParseScope converts a user-supplied string into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeProject, ScopeUser:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be %q or %q", s, ScopeProject, ScopeUser)
	}
}

func (s Scope) String() string { return string(s) }
