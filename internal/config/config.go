package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slashcmd-labs/slashcmd/internal/branding"
	"github.com/slashcmd-labs/slashcmd/internal/workspace"
	"github.com/spf13/viper"
)

const (
	fileName = "slashcmd"
	fileType = "yaml"
)

// Recognized settings keys.
const (
	// KeyDefaultScope ("project" or "user") is consulted when neither
	// --project nor --user is given.
	KeyDefaultScope = "default_scope"
	// KeyDefaultTemplate ("simple" or "tools") is consulted when
	// --with-tools is not given.
	KeyDefaultTemplate = "default_template"
	// KeyMinVersion pins the minimum tool version the doctor accepts.
	KeyMinVersion = "min_version"
)

// Dir returns the directory the settings file lives in (~/.claude/).
func Dir() string {
	home, err := workspace.ResolveHome()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file (~/.claude/slashcmd.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, workspace.DirPerm); err != nil {
		return fmt.Errorf("creating settings directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the settings file and environment.
// A missing file is not an error; a malformed one is.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a settings value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a settings key-value pair and saves the file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating settings file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}
