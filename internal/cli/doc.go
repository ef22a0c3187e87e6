// Package cli defines the Cobra command tree for the slashcmd CLI. The root
// command itself scaffolds a new slash command from its positional argument;
// each other file in this package registers one subcommand (list, check,
// config, doctor, version) with the root. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
