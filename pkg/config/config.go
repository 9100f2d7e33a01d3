// Package config holds the synbuild pipeline configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root pipeline configuration.
type Config struct {
	Scrape ScrapeConfig `yaml:"scrape"`
	Mine   MineConfig   `yaml:"mine"`
	Build  BuildConfig  `yaml:"build"`
}

// ScrapeConfig holds Wiktionary scraper settings.
type ScrapeConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"SCRAPE_BASE_URL"   env-default:"https://el.wiktionary.org"`
	UserAgent string        `yaml:"user_agent" env:"SCRAPE_USER_AGENT" env-default:"synbuild/1.0 (+https://github.com/daxida/grac)"`
	Timeout   time.Duration `yaml:"timeout"    env:"SCRAPE_TIMEOUT"    env-default:"30s"`
	OutputDir string        `yaml:"output_dir" env:"SCRAPE_OUTPUT_DIR" env-default:"data"`
}

// MineConfig holds dictionary miner settings.
type MineConfig struct {
	DictPath   string `yaml:"dict_path"   env:"MINE_DICT_PATH"   env-default:"data/el_GR.dic"`
	OutputPath string `yaml:"output_path" env:"MINE_OUTPUT_PATH" env-default:"data/neuters.txt"`
}

// BuildConfig holds table builder output settings.
type BuildConfig struct {
	TablePath    string `yaml:"table_path"    env:"BUILD_TABLE_PATH"    env-default:"pkg/synizesis/table.go"`
	RegistryPath string `yaml:"registry_path" env:"BUILD_REGISTRY_PATH" env-default:"data/registry.txt"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path comes from CONFIG_PATH (fallback "./synbuild.yaml").
// A missing fallback file is fine; a missing explicit CONFIG_PATH is not.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./synbuild.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
