package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agmigrate/internal/config"
	"github.com/ariel-frischer/agmigrate/internal/errors"
	"github.com/ariel-frischer/agmigrate/internal/migrate"
	"github.com/ariel-frischer/agmigrate/internal/output"
	"github.com/ariel-frischer/agmigrate/internal/progress"
)

// runMigration resolves options and executes the migration pipeline.
func runMigration(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	opts.Out = cmd.OutOrStdout()
	opts.Progress = progress.NewIndicator()

	result, err := migrate.New(opts).Run()
	if err != nil {
		return errors.Wrap(err, errors.Filesystem,
			"Check permissions on the source and destination directories",
			"Re-run with --dry-run to preview planned actions")
	}

	printSummary(cmd, opts, result)
	output.PrintSuccess(cmd.OutOrStdout(), "Migration completed successfully!")
	return nil
}

// resolveOptions loads the settings hierarchy (env > user config > defaults)
// and applies any CLI flags set on this invocation on top.
func resolveOptions(cmd *cobra.Command) (migrate.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")

	settings, err := config.Load(configPath)
	if err != nil {
		return migrate.Options{}, errors.WrapWithMessage(err, errors.Configuration,
			"loading configuration",
			"Fix the reported syntax error in the config file",
			"Or pass --config with a different file")
	}

	if cmd.Flags().Changed("dry-run") {
		settings.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	if cmd.Flags().Changed("src") {
		settings.SourceDir, _ = cmd.Flags().GetString("src")
	}
	if cmd.Flags().Changed("dest") {
		settings.DestDir, _ = cmd.Flags().GetString("dest")
	}
	if cmd.Flags().Changed("backup-dir") {
		settings.BackupDir, _ = cmd.Flags().GetString("backup-dir")
	}

	return migrate.Options{
		SourceDir: settings.SourceDir,
		DestDir:   settings.DestDir,
		BackupDir: settings.BackupDir,
		DryRun:    settings.DryRun,
	}, nil
}

// printSummary reports what the run did, one line per pipeline step.
func printSummary(cmd *cobra.Command, opts migrate.Options, result *migrate.Result) {
	out := cmd.OutOrStdout()

	if result.BackupPath != "" {
		output.PrintSuccess(out, fmt.Sprintf("Backup: %s", result.BackupPath))
	}
	if len(result.MigratedDirs) > 0 {
		output.PrintSuccess(out, fmt.Sprintf("Directories: %s", strings.Join(result.MigratedDirs, ", ")))
	}
	switch {
	case result.ConfigCopied:
		output.PrintSuccess(out, fmt.Sprintf("Config: copied %s to %s", migrate.ConfigFileName, opts.DestDir))
	case result.ConfigMerged && len(result.OverwrittenServers) > 0:
		output.PrintSuccess(out, fmt.Sprintf("Config: merged, overwrote %s", strings.Join(result.OverwrittenServers, ", ")))
	case result.ConfigMerged:
		output.PrintSuccess(out, "Config: merged")
	}
}
