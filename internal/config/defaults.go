package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# Agmigrate Configuration
# Every key can also be set via AGMIGRATE_* env vars or the matching CLI flag.

dry_run: false                          # Log actions without performing them
source_dir: .agent                      # Project-local agent workspace
dest_dir: ~/.gemini/antigravity         # Global Antigravity directory
backup_dir: ~/.gemini/antigravity_backups  # Root for pre-migration backups
`
}

// GetDefaults returns the built-in default configuration values keyed by
// koanf config key.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"dry_run":    false,
		"source_dir": ".agent",
		"dest_dir":   "~/.gemini/antigravity",
		"backup_dir": "~/.gemini/antigravity_backups",
	}
}
