package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/kvadmin/internal/config"
)

type fileConfig struct {
	Name             string            `toml:"name"`
	Addr             string            `toml:"addr"`
	BasePath         string            `toml:"base_path"`
	CorsOrigins      []string          `toml:"cors_origins"`
	AuthToken        string            `toml:"auth_token"`
	ExcludedCommands []string          `toml:"excluded_commands"`
	RemappedCommands map[string]string `toml:"remapped_commands"`
	Store            struct {
		Seed map[string]string `toml:"seed"`
	} `toml:"store"`
}

// loadConsoleConfig overlays a config file onto the defaults. Only keys
// actually present in the file override, so an explicit empty
// excluded_commands list clears the default exclusions while an absent
// one keeps them.
func loadConsoleConfig(path string) (config.ConsoleConfig, error) {
	cfg := config.Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.ConsoleConfig{}, fmt.Errorf("load console config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}
	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Addr = addr
		}
	}
	if meta.IsDefined("base_path") {
		cfg.BasePath = strings.TrimSpace(raw.BasePath)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("auth_token") {
		cfg.AuthToken = raw.AuthToken
	}
	if meta.IsDefined("excluded_commands") {
		cfg.ExcludedCommands = raw.ExcludedCommands
	}
	if meta.IsDefined("remapped_commands") {
		cfg.RemappedCommands = raw.RemappedCommands
	}
	if meta.IsDefined("store", "seed") {
		cfg.Store.Seed = raw.Store.Seed
	}

	if err := config.Validate(cfg); err != nil {
		return config.ConsoleConfig{}, err
	}
	return cfg, nil
}
