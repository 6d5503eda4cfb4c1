package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds server settings. Every field can also be set by flag, and
// flags win when both are present.
type Config struct {
	Port     int    `toml:"port"`
	Database string `toml:"database"`
	Workers  int    `toml:"workers"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{Port: 9019}

	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
