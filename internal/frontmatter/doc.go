// Package frontmatter reads the YAML header block of slash command files.
// A command file is Markdown whose optional leading "---" block carries
// keys like description, argument-hint, and allowed-tools; the rest of the
// file is the prompt body. The package splits the two, parses the header
// into a typed struct, and validates it against an embedded JSON Schema.
package frontmatter
