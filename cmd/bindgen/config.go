package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type toolConfig struct {
	MinSpecVersion string
	Verbose        bool
}

type fileConfig struct {
	MinSpecVersion string `toml:"min_spec_version"`
	Verbose        bool   `toml:"verbose"`
}

func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return toolConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("min_spec_version") {
		cfg.MinSpecVersion = strings.TrimSpace(raw.MinSpecVersion)
	}

	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}
