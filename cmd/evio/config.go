package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the evio CLI's configuration file
// (~/.config/evio/config.yaml): fields are overridden by CLI flags
// whenever a flag is explicitly set.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	HexChunk  int    `yaml:"hex_chunk_size"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "evio", "config.yaml")
}

// LoadConfig reads the config file, returning a zero Config if absent
// or unreadable — a missing config file is not an error.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
