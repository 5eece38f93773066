package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/recipebox/internal/paths"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "RECIPEBOX"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeySlotKey   = "slot_key"
	cfgKeyRedisAddr = "redis_addr"
	cfgKeyLocale    = "locale"

	defaultRedisAddr = "localhost:6379"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# recipebox configuration

# Storage backend: file, sqlite, redis or memory
backend: file

# Name of the slot holding the recipe collection
slot_key: recipebox_v1

# Locale used to sort titles and tags
locale: en

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Redis address, used when backend is redis
# redis_addr: localhost:6379
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. Every key can be
// overridden by a RECIPEBOX_<KEY> environment variable.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendFile)
	v.SetDefault(cfgKeySlotKey, types.DefaultSlotKey)
	v.SetDefault(cfgKeyLocale, types.DefaultLocale)
	v.SetDefault(cfgKeyRedisAddr, defaultRedisAddr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfig builds the storage Config for this invocation.
// Precedence for the backend is --backend flag > RECIPEBOX_BACKEND >
// config.yaml > default; for the data directory it is --data-dir flag >
// RECIPEBOX_DATA_DIR > config.yaml > platform default.
func resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := v.GetString(cfgKeyBackend)
	if flags.backend != "" {
		backend = flags.backend
	}

	cfg := types.Config{
		Backend:   backend,
		DataDir:   dataDir,
		SlotKey:   v.GetString(cfgKeySlotKey),
		RedisAddr: v.GetString(cfgKeyRedisAddr),
		Locale:    v.GetString(cfgKeyLocale),
	}
	return cfg.WithDefaults(), nil
}
