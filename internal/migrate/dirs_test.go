// Package migrate tests the fixed-mapping directory migration.
// Related: internal/migrate/dirs.go
// Tags: migrate, directories, overwrite

package migrate

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/agmigrate/internal/testutil"
)

func TestDirectoryMappings_Contract(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"agents":    "agents",
		"skills":    "skills",
		"workflows": "global_workflows",
		"rules":     "rules",
		"scripts":   "scripts",
	}

	mappings := DirectoryMappings()
	require.Len(t, mappings, len(want))
	for _, m := range mappings {
		assert.Equal(t, want[m.Source], m.Dest, "mapping for %s", m.Source)
	}
}

func TestMigrateDirectories_RenamesWorkflows(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{
		"workflows/foo.md": "do the thing",
	})

	r := New(Options{SourceDir: srcDir, DestDir: destDir, Out: &bytes.Buffer{}})
	migrated, err := r.migrateDirectories()
	require.NoError(t, err)

	assert.Equal(t, []string{"global_workflows"}, migrated)
	got := testutil.ReadTree(t, destDir)
	assert.Equal(t, "do the thing", got["global_workflows/foo.md"])
}

func TestMigrateDirectories_OverwritesFilesInPlace(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{
		"agents/reviewer.md": "new",
	})
	testutil.WriteTree(t, destDir, map[string]string{
		"agents/reviewer.md": "old",
		"agents/keeper.md":   "untouched",
	})

	r := New(Options{SourceDir: srcDir, DestDir: destDir, Out: &bytes.Buffer{}})
	_, err := r.migrateDirectories()
	require.NoError(t, err)

	got := testutil.ReadTree(t, destDir)
	assert.Equal(t, "new", got["agents/reviewer.md"])
	assert.Equal(t, "untouched", got["agents/keeper.md"], "entries absent from source stay in place")
}

func TestMigrateDirectories_ReplacesCollidingDirectoriesWholesale(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{
		"skills/search/skill.md": "v2",
	})
	testutil.WriteTree(t, destDir, map[string]string{
		"skills/search/skill.md": "v1",
		"skills/search/notes.md": "local-only",
	})

	r := New(Options{SourceDir: srcDir, DestDir: destDir, Out: &bytes.Buffer{}})
	_, err := r.migrateDirectories()
	require.NoError(t, err)

	got := testutil.ReadTree(t, destDir)
	assert.Equal(t, "v2", got["skills/search/skill.md"])
	assert.NotContains(t, got, "skills/search/notes.md", "colliding directories are replaced, not merged")
}

func TestMigrateDirectories_SkipsAbsentSources(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{"README.md": "not a mapped dir"})
	testutil.WriteTree(t, destDir, map[string]string{"rules/GEMINI.md": "keep"})

	var buf bytes.Buffer
	r := New(Options{SourceDir: srcDir, DestDir: destDir, Out: &buf})
	migrated, err := r.migrateDirectories()
	require.NoError(t, err)

	assert.Empty(t, migrated)
	assert.NotContains(t, buf.String(), "Migrating")
	got := testutil.ReadTree(t, destDir)
	assert.Equal(t, "keep", got["rules/GEMINI.md"])
}

func TestMigrateDirectories_MigratesInMappingOrder(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{
		"scripts/run.sh": "#!/bin/sh",
		"agents/a.md":    "a",
		"workflows/w.md": "w",
	})

	r := New(Options{SourceDir: srcDir, DestDir: destDir, Out: &bytes.Buffer{}})
	migrated, err := r.migrateDirectories()
	require.NoError(t, err)

	assert.Equal(t, []string{"agents", "global_workflows", "scripts"}, migrated)
}

func TestMigrateDirectories_DryRunCreatesNothing(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, ".agent")
	destDir := filepath.Join(tmp, "antigravity")

	testutil.WriteTree(t, srcDir, map[string]string{"agents/a.md": "a"})

	var buf bytes.Buffer
	r := New(Options{SourceDir: srcDir, DestDir: destDir, DryRun: true, Out: &buf})
	migrated, err := r.migrateDirectories()
	require.NoError(t, err)

	assert.Equal(t, []string{"agents"}, migrated)
	assert.Contains(t, buf.String(), "[DRY RUN] Migrating")
	assert.NoDirExists(t, destDir)
}
