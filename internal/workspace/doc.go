// Package workspace resolves where slash command files live and inspects
// what is already there. Commands are stored per-project under
// <root>/.claude/commands/ or per-user under ~/.claude/commands/; both
// locations are plain directories of Markdown files, optionally nested
// one or more levels deep for namespaced commands.
package workspace
