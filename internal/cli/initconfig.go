package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agmigrate/internal/config"
	"github.com/ariel-frischer/agmigrate/internal/errors"
	"github.com/ariel-frischer/agmigrate/internal/output"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a commented default config file",
	Long: `Write a fully commented default configuration file to the user config
location (~/.config/agmigrate/config.yml), or to the path given with
--config. Refuses to overwrite an existing file.`,
	RunE: runInitConfig,
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		defaultPath, err := config.UserConfigPath()
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "resolving user config path")
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		return errors.NewConfigError(
			fmt.Sprintf("config already exists at %s", path),
			"Edit the existing file directly",
			"Or remove it and re-run 'agmigrate init-config'")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	output.PrintSuccess(cmd.OutOrStdout(), "Config created at "+path)
	return nil
}
