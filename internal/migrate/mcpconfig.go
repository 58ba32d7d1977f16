package migrate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ConfigFileName is the JSON config file carried in both workspaces.
const ConfigFileName = "mcp_config.json"

// serversKey is the top-level key holding the server registry.
const serversKey = "mcpServers"

// mergeOutcome records what mergeConfigs did.
type mergeOutcome struct {
	copied      bool
	merged      bool
	overwritten []string
}

// mergeConfigs merges the source MCP config into the global one. When the
// source has no config this is a no-op; when the global side has none the
// source file is copied verbatim. Otherwise both files are parsed, every
// source server entry is inserted into the global registry (overwriting on
// name collision, with a conflict log line), and the global object is
// written back with 2-space indentation. Global-only servers and global-only
// top-level keys are preserved. Malformed JSON on either side aborts before
// anything is written.
func (r *Runner) mergeConfigs() (*mergeOutcome, error) {
	srcPath := filepath.Join(r.opts.SourceDir, ConfigFileName)
	destPath := filepath.Join(r.opts.DestDir, ConfigFileName)

	if !fileExists(srcPath) {
		r.log.Info("No %s found in source. Skipping merge.", ConfigFileName)
		return &mergeOutcome{}, nil
	}

	if !fileExists(destPath) {
		r.log.Action("No global %s found. Copying from %s", ConfigFileName, srcPath)
		if r.opts.DryRun {
			return &mergeOutcome{copied: true}, nil
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return nil, err
		}
		return &mergeOutcome{copied: true}, nil
	}

	r.log.Action("Merging %s into %s", srcPath, destPath)
	if r.opts.DryRun {
		return &mergeOutcome{merged: true}, nil
	}

	srcConfig, err := readJSONObject(srcPath)
	if err != nil {
		return nil, err
	}
	destConfig, err := readJSONObject(destPath)
	if err != nil {
		return nil, err
	}

	srcServers := serverRegistry(srcConfig)
	destServers := serverRegistry(destConfig)

	// Map iteration order is randomized; sort so conflict logging and the
	// reported overwrite list are stable.
	names := make([]string, 0, len(srcServers))
	for name := range srcServers {
		names = append(names, name)
	}
	sort.Strings(names)

	var overwritten []string
	for _, name := range names {
		if _, exists := destServers[name]; exists {
			r.log.Info("  Conflict: Overwriting global config for server '%s'", name)
			overwritten = append(overwritten, name)
		}
		destServers[name] = srcServers[name]
	}
	destConfig[serversKey] = destServers

	data, err := json.MarshalIndent(destConfig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", destPath, err)
	}
	if err := os.WriteFile(destPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", destPath, err)
	}

	return &mergeOutcome{merged: true, overwritten: overwritten}, nil
}

// readJSONObject reads and parses path as a JSON object.
func readJSONObject(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}

// serverRegistry extracts the server registry from a parsed config,
// defaulting to an empty registry when the key is absent or not an object.
func serverRegistry(cfg map[string]interface{}) map[string]interface{} {
	if servers, ok := cfg[serversKey].(map[string]interface{}); ok {
		return servers
	}
	return map[string]interface{}{}
}
