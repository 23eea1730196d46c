package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ycwei/folio"
	"gopkg.in/yaml.v3"
)

// Config holds user defaults applied before any live quote: fallback
// exchange rates and manual prices for securities no provider serves.
type Config struct {
	USDTWD float64            `yaml:"usdtwd"`
	JPYTWD float64            `yaml:"jpytwd"`
	Prices map[string]float64 `yaml:"prices"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".folio.yaml"
	}
	return filepath.Join(home, ".folio.yaml")
}

// LoadConfig reads the YAML configuration. A missing file is not an error:
// it yields an empty configuration.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return cfg, nil
}

// Quotes seeds a quote set from the configuration defaults.
func (c *Config) Quotes() folio.Quotes {
	quotes := folio.Quotes{
		Prices:  make(map[string]float64),
		Details: make(map[string]folio.PriceDetail),
		USDTWD:  c.USDTWD,
		JPYTWD:  c.JPYTWD,
	}
	for symbol, price := range c.Prices {
		quotes.Prices[symbol] = price
	}
	return quotes
}
