// Package paths decides where the lineage CLI keeps its configuration
// and its catalog data. Each location is resolved through a precedence
// chain so a flag always beats an environment variable, which beats the
// platform convention. See docs/ARCHITECTURE § Directories.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the per-application directory created under the
// platform config and data roots.
const appDirName = "lineage"

// Directory names used relative to the working directory when nothing
// else selects a location.
const (
	DefaultConfigDirName = ".lineage"
	DefaultDataDirName   = ".lineage-db"
)

// Environment variables overriding the resolved directories.
const (
	EnvConfigDir = "LINEAGE_CONFIG_DIR"
	EnvDataDir   = "LINEAGE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// userDir appends appDirName to the OS user config root. On macOS that
// root is ~/Library/Application Support, on Windows %APPDATA%.
func userDir() (string, error) {
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// DefaultConfigDir returns where configuration lives when no override
// is active. Linux honors $XDG_CONFIG_HOME and falls back to
// ~/.config/lineage; other platforms use the OS user config root.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS != "linux" {
		return userDir()
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// DefaultDataDir returns the platform data location. Linux honors
// $XDG_DATA_HOME and falls back to ~/.local/share/lineage; other
// platforms keep data next to configuration.
func DefaultDataDir() (string, error) {
	if runtime.GOOS != "linux" {
		return userDir()
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// ResolveConfigDir picks the configuration directory. A non-empty flag
// wins, then LINEAGE_CONFIG_DIR, then DefaultConfigDir. Flag and env
// values are made absolute so later chdirs cannot move the config.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory: flag, then the data_dir
// value from config.yaml, then LINEAGE_DATA_DIR, then .lineage-db
// under the working directory. The working-directory default keeps one
// catalog per project checkout rather than one per user.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
