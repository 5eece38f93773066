package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/recipebox/internal/paths"
	"github.com/mesh-intelligence/recipebox/internal/ui"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// configFile holds the structure init writes to config.yaml.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	SlotKey   string `yaml:"slot_key"`
	RedisAddr string `yaml:"redis_addr,omitempty"`
	Locale    string `yaml:"locale"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize recipebox storage",
		Long: "Create the configuration and data directories, write config.yaml\n" +
			"from the global flags if it does not exist, and store the sample\n" +
			"recipes when the slot is empty.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	cfg := configFile{
		Backend: types.BackendFile,
		SlotKey: types.DefaultSlotKey,
		Locale:  types.DefaultLocale,
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if flags.dataDir != "" {
		abs, err := filepath.Abs(flags.dataDir)
		if err != nil {
			return sysError("resolve data dir: %w", err)
		}
		cfg.DataDir = abs
	}
	if cfg.Backend == types.BackendRedis {
		cfg.RedisAddr = defaultRedisAddr
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, cfg); err != nil {
		return sysError("write config: %w", err)
	}

	return withApp(cmd, func(_ context.Context, a *app) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.RenderPass("Recipe box initialized"))
		fmt.Fprintf(out, "  config:  %s\n", configPath)
		fmt.Fprintf(out, "  backend: %s\n", a.cfg.Backend)
		fmt.Fprintf(out, "  data:    %s\n", a.cfg.DataDir)
		fmt.Fprintf(out, "  recipes: %d\n", a.repo().Len())
		return nil
	})
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string, cfg configFile) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
