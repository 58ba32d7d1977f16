// Package migrate implements the workspace migration pipeline: backup the
// global Antigravity directory, copy the mapped workspace subdirectories into
// it, and merge the MCP server registry from the project config into the
// global one.
package migrate

import (
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/agmigrate/internal/output"
	"github.com/ariel-frischer/agmigrate/internal/progress"
)

// Options configures a migration run. Defaults are resolved once by the
// config layer at startup; nothing in this package reads global state.
type Options struct {
	// SourceDir is the project-local agent workspace.
	SourceDir string
	// DestDir is the global Antigravity directory.
	DestDir string
	// BackupDir is the root under which timestamped backups are created.
	BackupDir string
	// DryRun logs mutating actions with a simulated prefix and skips them.
	DryRun bool
	// Out receives status lines (default: stdout).
	Out io.Writer
	// Progress, when non-nil, is shown while the backup snapshot is copied.
	Progress *progress.Indicator
}

// Result summarizes what a migration run did.
type Result struct {
	// BackupPath is the created backup snapshot, empty when no backup was
	// taken (destination absent, or dry run).
	BackupPath string
	// MigratedDirs lists the destination subdirectory names that received a
	// migration, in mapping order.
	MigratedDirs []string
	// ConfigCopied is true when the source config was copied verbatim
	// because no global config existed.
	ConfigCopied bool
	// ConfigMerged is true when both configs existed and were merged.
	ConfigMerged bool
	// OverwrittenServers lists server names whose global entry was replaced
	// during the merge.
	OverwrittenServers []string
}

// Runner executes the migration pipeline.
type Runner struct {
	opts Options
	log  *output.Logger
}

// New returns a Runner for the given options.
func New(opts Options) *Runner {
	return &Runner{
		opts: opts,
		log:  output.NewLogger(opts.Out, opts.DryRun),
	}
}

// Run executes the pipeline in order: backup, ensure destination, migrate
// directories, merge configs, print the rules advisory. Steps that find
// their input missing skip themselves with a log line. There is no rollback:
// when a later step fails, earlier mutations stay in place and the backup
// taken up front is the only safety net.
func (r *Runner) Run() (*Result, error) {
	r.log.Info("Starting migration from %s to %s", r.opts.SourceDir, r.opts.DestDir)

	backupPath, err := r.backupDestination()
	if err != nil {
		return nil, err
	}

	if !r.opts.DryRun {
		if err := os.MkdirAll(r.opts.DestDir, 0755); err != nil {
			return nil, fmt.Errorf("creating destination %s: %w", r.opts.DestDir, err)
		}
	}

	migrated, err := r.migrateDirectories()
	if err != nil {
		return nil, err
	}

	merge, err := r.mergeConfigs()
	if err != nil {
		return nil, err
	}

	r.printRulesAdvisory()

	return &Result{
		BackupPath:         backupPath,
		MigratedDirs:       migrated,
		ConfigCopied:       merge.copied,
		ConfigMerged:       merge.merged,
		OverwrittenServers: merge.overwritten,
	}, nil
}

// printRulesAdvisory explains the manual step migration cannot perform:
// global rules are read from ~/.gemini/GEMINI.md, not from the migrated
// rules directory.
func (r *Runner) printRulesAdvisory() {
	output.PrintAdvisory(r.log.Out, "⚠️  IMPORTANT NOTE ON RULES:", []string{
		"The directory 'rules/' has been migrated to your global Antigravity folder.",
		"However, for global effects, the system primarily reads '~/.gemini/GEMINI.md'.",
		"To make these rules active globally, you must manually merge or copy",
		"the contents from 'antigravity/rules/GEMINI.md' to '~/.gemini/GEMINI.md'.",
	})
}
