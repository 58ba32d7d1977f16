// Package config provides hierarchical configuration management for agmigrate
// using koanf. Configuration is loaded with priority: environment variables >
// user config (~/.config/agmigrate/config.yml) > defaults. CLI flags are
// applied on top by the cli package after loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds the resolved migration options passed into the pipeline.
type Settings struct {
	// DryRun logs every mutating action with a simulated prefix and skips it.
	// Can be set via AGMIGRATE_DRY_RUN env var.
	DryRun bool `koanf:"dry_run"`

	// SourceDir is the project-local agent workspace to migrate from.
	SourceDir string `koanf:"source_dir"`

	// DestDir is the user-global Antigravity directory to migrate into.
	DestDir string `koanf:"dest_dir"`

	// BackupDir is the root under which timestamped backups of DestDir are
	// created before any mutation.
	BackupDir string `koanf:"backup_dir"`
}

// Load loads configuration from defaults, the user config file, and
// environment variables. customConfigPath overrides the user config file
// location when non-empty (the --config flag).
func Load(customConfigPath string) (*Settings, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k, customConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("AGMIGRATE_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeSettings(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config when it exists. A custom path
// must exist; the default path is optional. The parser is chosen by file
// extension, so --config can point at either YAML or JSON.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		defaultPath, err := UserConfigPath()
		if err != nil {
			return nil // no home dir, nothing to load
		}
		if !fileExists(defaultPath) {
			return nil
		}
		path = defaultPath
	}

	if filepath.Ext(path) == ".json" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load user config %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for user config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// finalizeSettings unmarshals and applies final transformations
func finalizeSettings(k *koanf.Koanf) (*Settings, error) {
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	s.SourceDir = expandHomePath(s.SourceDir)
	s.DestDir = expandHomePath(s.DestDir)
	s.BackupDir = expandHomePath(s.BackupDir)

	return &s, nil
}

// envTransform converts environment variable names to config keys
// Example: AGMIGRATE_SOURCE_DIR -> source_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "AGMIGRATE_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
