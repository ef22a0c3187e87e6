// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed, so a fork can rename the tool (and the
// dot-directory it writes into) without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	CommandsDir string `yaml:"commands_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "slashcmd",
			DisplayName: "SlashCmd",
			Description: "Scaffolder for Claude Code slash commands",
			HomeDir:     ".claude",
			CommandsDir: "commands",
			EnvPrefix:   "SLASHCMD",
			GoModule:    "github.com/slashcmd-labs/slashcmd",
			GitHubRepo:  "slashcmd-labs/slashcmd",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "slashcmd").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "SlashCmd").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name commands live under (e.g., ".claude").
func HomeDir() string { load(); return defaults.HomeDir }

// CommandsDir returns the directory name inside HomeDir that holds
// slash command files (e.g., "commands").
func CommandsDir() string { load(); return defaults.CommandsDir }

// EnvPrefix returns the environment variable prefix (e.g., "SLASHCMD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release tooling, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("HOME") → "SLASHCMD_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
