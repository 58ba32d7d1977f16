package migrate

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirMapping pairs a source subdirectory name with its destination name.
type DirMapping struct {
	Source string
	Dest   string
}

// DirectoryMappings is the fixed contract between the project workspace
// layout and the global layout. Workflows are renamed on the global side;
// every other subdirectory keeps its name.
func DirectoryMappings() []DirMapping {
	return []DirMapping{
		{Source: "agents", Dest: "agents"},
		{Source: "skills", Dest: "skills"},
		{Source: "workflows", Dest: "global_workflows"},
		{Source: "rules", Dest: "rules"},
		{Source: "scripts", Dest: "scripts"},
	}
}

// migrateDirectories copies every mapped subdirectory present in the source
// workspace into the destination. Top-level files are overwritten in place;
// a colliding directory is removed and replaced wholesale, not merged, so
// destination-only files underneath it are discarded. Mapped pairs whose
// source subdirectory is absent are skipped silently. Returns the
// destination names that received a migration, in mapping order.
func (r *Runner) migrateDirectories() ([]string, error) {
	var migrated []string

	for _, m := range DirectoryMappings() {
		srcPath := filepath.Join(r.opts.SourceDir, m.Source)
		destPath := filepath.Join(r.opts.DestDir, m.Dest)

		if !fileExists(srcPath) {
			continue
		}

		r.log.Action("Migrating %s -> %s", srcPath, destPath)
		migrated = append(migrated, m.Dest)
		if r.opts.DryRun {
			continue
		}

		if err := os.MkdirAll(destPath, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", destPath, err)
		}

		entries, err := os.ReadDir(srcPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", srcPath, err)
		}
		for _, entry := range entries {
			s := filepath.Join(srcPath, entry.Name())
			d := filepath.Join(destPath, entry.Name())

			if entry.IsDir() {
				if fileExists(d) {
					if err := os.RemoveAll(d); err != nil {
						return nil, fmt.Errorf("removing %s: %w", d, err)
					}
				}
				if err := copyTree(s, d); err != nil {
					return nil, err
				}
				continue
			}
			if err := copyFile(s, d); err != nil {
				return nil, err
			}
		}
	}

	return migrated, nil
}
