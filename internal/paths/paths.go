// Package paths resolves the configuration and data directories of the
// recipebox CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config and data
// roots.
const appDirName = "recipebox"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RECIPEBOX_CONFIG_DIR"
	EnvDataDir   = "RECIPEBOX_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgRoot describes one XDG base directory: the variable that overrides
// it and its location relative to $HOME when unset.
type xdgRoot struct {
	env      string
	fallback []string
}

var (
	xdgConfig = xdgRoot{env: "XDG_CONFIG_HOME", fallback: []string{".config"}}
	xdgData   = xdgRoot{env: "XDG_DATA_HOME", fallback: []string{".local", "share"}}
)

// appDir returns recipebox's directory under root. Linux follows the XDG
// base directory layout; macOS and Windows keep config and data together
// under os.UserConfigDir (~/Library/Application Support, %APPDATA%).
func appDir(root xdgRoot) (string, error) {
	if runtime.GOOS != "linux" {
		base, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, appDirName), nil
	}
	if base := os.Getenv(root.env); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, root.fallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}

// DefaultConfigDir returns the platform default configuration directory,
// e.g. ~/.config/recipebox on Linux.
func DefaultConfigDir() (string, error) { return appDir(xdgConfig) }

// DefaultDataDir returns the platform default data directory,
// e.g. ~/.local/share/recipebox on Linux.
func DefaultDataDir() (string, error) { return appDir(xdgData) }

// firstAbs returns the first non-empty candidate made absolute, and false
// when every candidate is empty.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}

// ResolveConfigDir picks the configuration directory: the --config-dir
// flag, then RECIPEBOX_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, os.Getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the data directory: the --data-dir flag, then the
// data_dir value from config.yaml, then RECIPEBOX_DATA_DIR, then
// DefaultDataDir.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if dir, ok, err := firstAbs(flag, configYAMLValue, os.Getenv(EnvDataDir)); ok {
		return dir, err
	}
	return DefaultDataDir()
}
