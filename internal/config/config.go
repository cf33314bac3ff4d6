package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ConsoleConfig configures one kvadmin console instance.
type ConsoleConfig struct {
	Name             string            `toml:"name"`
	Addr             string            `toml:"addr"`
	BasePath         string            `toml:"base_path"`
	CorsOrigins      []string          `toml:"cors_origins"`
	AuthToken        string            `toml:"auth_token"`
	ExcludedCommands []string          `toml:"excluded_commands"`
	RemappedCommands map[string]string `toml:"remapped_commands"`
	Store            StoreConfig       `toml:"store"`
}

// StoreConfig configures the in-memory backend contents at boot.
type StoreConfig struct {
	Seed map[string]string `toml:"seed"`
}

// Default returns the console configuration used when no file is given.
// The default exclusion set forbids the pub/sub controls and the
// connection-factory operation; del aliases delete.
func Default() ConsoleConfig {
	return ConsoleConfig{
		Name:             "kv-admin",
		Addr:             ":9000",
		BasePath:         "/console",
		ExcludedCommands: []string{"subscribe", "publish", "fromurl"},
		RemappedCommands: map[string]string{"del": "delete"},
	}
}

func Load(path string) (ConsoleConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return ConsoleConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return ConsoleConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return ConsoleConfig{}, err
	}
	return cfg, nil
}

func Validate(cfg ConsoleConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("console config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("console config missing addr")
	}
	if cfg.BasePath != "" && !strings.HasPrefix(cfg.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %q", cfg.BasePath)
	}
	for alias, canonical := range cfg.RemappedCommands {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(canonical) == "" {
			return fmt.Errorf("remapped_commands entries must be non-empty (%q = %q)", alias, canonical)
		}
	}
	for i, name := range cfg.ExcludedCommands {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("excluded_commands[%d] is empty", i)
		}
	}
	return nil
}
