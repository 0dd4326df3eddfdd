// Config loading for the lineage CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName     = "config"
	configFileType     = "yaml"
	configFileFullName = "config.yaml"

	// Config keys.
	cfgKeyDataDir = "data_dir"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config directory or config.yaml is not an error; the
// init command creates them.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
