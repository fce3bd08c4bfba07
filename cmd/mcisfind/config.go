package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcislab/mcis/mcis"
)

// Config mirrors the search option table. Fields absent from the YAML keep
// their defaults; budget, timeout and cutoff must be positive.
type Config struct {
	NodeBudget int    `yaml:"node_budget"`
	TimeoutMS  int    `yaml:"timeout_ms"`
	SizeCutoff int    `yaml:"size_cutoff"`
	DiagramDir string `yaml:"diagram_dir"`
}

// defaultConfig carries the library defaults into the CLI layer.
func defaultConfig() Config {
	return Config{
		NodeBudget: mcis.DefaultNodeBudget,
		TimeoutMS:  int(mcis.DefaultTimeout / time.Millisecond),
		SizeCutoff: mcis.DefaultSizeCutoff,
		DiagramDir: "diagrams",
	}
}

// loadConfig reads a YAML config file over the defaults. A missing path is
// not an error; malformed YAML is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.NodeBudget <= 0 || cfg.TimeoutMS <= 0 || cfg.SizeCutoff <= 0 {
		return cfg, fmt.Errorf("config %s: budget, timeout and cutoff must be positive", path)
	}

	return cfg, nil
}
