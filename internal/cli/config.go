package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the YAML config file shape. Every field is optional; flags
// set explicitly on the command line win over the file.
type Config struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Format  string `yaml:"format"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfigFile fills options from --config, leaving explicitly set
// flags untouched.
func applyConfigFile(cmd *cobra.Command, opts *RootOptions) error {
	if opts.Config == "" {
		return nil
	}
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.Backend != "" && !flags.Changed("backend") {
		opts.Backend = cfg.Backend
	}
	if cfg.Path != "" && !flags.Changed("db") {
		opts.DBPath = cfg.Path
	}
	if cfg.Format != "" && !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	return nil
}
