// Package command scaffolds new slash command definition files from embedded
// templates. It powers the root invocation of the CLI, producing a Markdown
// file with pre-filled YAML frontmatter and TODO placeholder prose in the
// project or user commands directory.
package command
