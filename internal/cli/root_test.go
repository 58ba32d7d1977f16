// Package cli tests the root command and option resolution.
// Related: internal/cli/root.go, internal/cli/migrate.go
// Tags: cli, root, flags, dry-run

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/agmigrate/internal/testutil"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "agmigrate", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.NotEmpty(t, rootCmd.Version)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName string
		wantFlag bool
	}{
		"config flag exists": {
			flagName: "config",
			wantFlag: true,
		},
		"dry-run flag exists": {
			flagName: "dry-run",
			wantFlag: true,
		},
		"src flag exists": {
			flagName: "src",
			wantFlag: true,
		},
		"dest flag exists": {
			flagName: "dest",
			wantFlag: true,
		},
		"backup-dir flag exists": {
			flagName: "backup-dir",
			wantFlag: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			if tt.wantFlag {
				assert.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			}
		})
	}
}

// newTestCmd builds an isolated command carrying the same flags as rootCmd.
func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "agmigrate", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().String("src", "", "")
	cmd.Flags().String("dest", "", "")
	cmd.Flags().String("backup-dir", "", "")
	return cmd
}

func TestResolveOptions_FlagsBeatEnvBeatDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AGMIGRATE_SOURCE_DIR", "./from-env")
	t.Setenv("AGMIGRATE_DEST_DIR", filepath.Join(home, "env-dest"))

	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("src", "./from-flag"))

	opts, err := resolveOptions(cmd)
	require.NoError(t, err)

	assert.Equal(t, "./from-flag", opts.SourceDir, "flag wins over env")
	assert.Equal(t, filepath.Join(home, "env-dest"), opts.DestDir, "env wins over default")
	assert.Equal(t, filepath.Join(home, ".gemini", "antigravity_backups"), opts.BackupDir, "default used when nothing set")
	assert.False(t, opts.DryRun)
}

func TestResolveOptions_DryRunFlag(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("dry-run", "true"))

	opts, err := resolveOptions(cmd)
	require.NoError(t, err)
	assert.True(t, opts.DryRun)
}

func TestRunMigration_DryRunEndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	srcDir := filepath.Join(home, ".agent")
	destDir := filepath.Join(home, "antigravity")
	backupDir := filepath.Join(home, "backups")

	testutil.WriteTree(t, srcDir, map[string]string{
		"agents/a.md":     "a",
		"mcp_config.json": `{"mcpServers": {"x": {}}}`,
	})

	cmd := newTestCmd()
	cmd.RunE = runMigration
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--dry-run",
		"--src", srcDir,
		"--dest", destDir,
		"--backup-dir", backupDir,
	})

	require.NoError(t, cmd.Execute())

	assert.NoDirExists(t, destDir)
	assert.NoDirExists(t, backupDir)
	assert.Contains(t, buf.String(), "[DRY RUN]")
	assert.Contains(t, buf.String(), "Migration completed successfully!")
}

func TestRunMigration_MigratesAndReportsSummary(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	srcDir := filepath.Join(home, ".agent")
	destDir := filepath.Join(home, "antigravity")
	backupDir := filepath.Join(home, "backups")

	testutil.WriteTree(t, srcDir, map[string]string{
		"workflows/deploy.md": "deploy",
	})

	cmd := newTestCmd()
	cmd.RunE = runMigration
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{
		"--src", srcDir,
		"--dest", destDir,
		"--backup-dir", backupDir,
	})

	require.NoError(t, cmd.Execute())

	got := testutil.ReadTree(t, destDir)
	assert.Equal(t, "deploy", got["global_workflows/deploy.md"])
	assert.Contains(t, buf.String(), "Directories: global_workflows")
}
