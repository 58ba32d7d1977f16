// Package cli implements the agmigrate command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agmigrate/internal/build"
	"github.com/ariel-frischer/agmigrate/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "agmigrate",
	Short: "Migrate a project-local .agent workspace to the global Antigravity directory",
	Long: `agmigrate migrates a project-local agent workspace into the user-global
Antigravity configuration directory.

It copies the workspace subdirectories (agents, skills, workflows, rules,
scripts) into the global layout, merges the mcpServers registry from
mcp_config.json into the global config, and snapshots the existing global
state into a timestamped backup first.

Note: a workspace directory that collides with an existing global directory
of the same name replaces it entirely; global-only files underneath it are
discarded. The backup taken before migration is the way back.`,
	Example: `  agmigrate                         # migrate ./.agent to ~/.gemini/antigravity
  agmigrate --dry-run               # log planned actions without touching anything
  agmigrate --src ./my-agent        # migrate a different workspace
  agmigrate --dest /tmp/antigravity # migrate into a non-default destination`,
	Version:       build.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMigration,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to user config file (default: ~/.config/agmigrate/config.yml)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Log actions without performing them")
	rootCmd.PersistentFlags().String("src", "", "Source .agent directory (default: .agent)")
	rootCmd.PersistentFlags().String("dest", "", "Destination global directory (default: ~/.gemini/antigravity)")
	rootCmd.PersistentFlags().String("backup-dir", "", "Directory for backups (default: ~/.gemini/antigravity_backups)")
}

// Execute runs the root command, printing a structured error to stderr on
// failure. The caller exits non-zero on any returned error.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return err
	}
	errors.PrintError(errors.Wrap(err, errors.Runtime))
	return err
}
