package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// backupPrefix is the fixed name prefix for backup snapshots under the
	// backup root.
	backupPrefix = "antigravity_backup_"
	// backupTimestampLayout names snapshots as <prefix>YYYYMMDD_HHMMSS.
	backupTimestampLayout = "20060102_150405"
)

// backupDestination snapshots the destination directory into a timestamped
// directory under the backup root before anything mutates it. Returns the
// snapshot path, or "" when no backup was taken (destination absent, or dry
// run). The copy is all-or-nothing from the caller's view: an error mid-copy
// propagates and the run stops.
func (r *Runner) backupDestination() (string, error) {
	if !fileExists(r.opts.DestDir) {
		r.log.Info("Destination %s does not exist. Skipping backup.", r.opts.DestDir)
		return "", nil
	}

	timestamp := time.Now().Format(backupTimestampLayout)
	backupPath := filepath.Join(r.opts.BackupDir, backupPrefix+timestamp)

	r.log.Action("Creating backup of %s at %s", r.opts.DestDir, backupPath)
	if r.opts.DryRun {
		return "", nil
	}

	if err := os.MkdirAll(r.opts.BackupDir, 0755); err != nil {
		return "", fmt.Errorf("creating backup root %s: %w", r.opts.BackupDir, err)
	}

	r.opts.Progress.Start("Backing up " + r.opts.DestDir)
	err := copyTree(r.opts.DestDir, backupPath)
	r.opts.Progress.Stop()
	if err != nil {
		return "", fmt.Errorf("backing up %s: %w", r.opts.DestDir, err)
	}
	return backupPath, nil
}
