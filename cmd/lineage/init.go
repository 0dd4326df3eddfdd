// Init command for the lineage CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFileYAML is the structure written to config.yaml.
type configFileYAML struct {
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lineage configuration and catalog storage",
	Long:  "Create the configuration directory, a default config.yaml, and the catalog database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve config dir:", err)
			os.Exit(exitSysError)
		}

		if err := os.MkdirAll(configDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "create config directory:", err)
			os.Exit(exitSysError)
		}

		if err := writeConfigIfMissing(filepath.Join(configDir, configFileFullName), flagDataDir); err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(exitSysError)
		}

		// Create the data directory and catalog database via Open then Close.
		store, err := openCatalog()
		if err != nil {
			fmt.Fprintln(os.Stderr, "initialize catalog:", err)
			os.Exit(exitSysError)
		}
		if err := store.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "finalize catalog:", err)
			os.Exit(exitSysError)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Lineage initialized successfully")
		return nil
	},
}

// writeConfigIfMissing creates config.yaml with the given data directory
// if the file does not exist. If it already exists, the function returns
// nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFileYAML{DataDir: dataDir}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
