package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/brunoga/deep"
	"gopkg.in/yaml.v3"

	"tower-simulator/internal/game/savefile"
	"tower-simulator/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the settings shared by the client and the command line tool.
type Config struct {
	SaveDir  string             `yaml:"save_dir"`
	LogLevel string             `yaml:"log_level"`
	LogFile  string             `yaml:"log_file,omitempty"`
	TickRate float64            `yaml:"tick_rate"`
	Window   WindowConfig       `yaml:"window"`
	Files    savefile.FileNames `yaml:"files"`
}

var defaultConfig = Config{
	SaveDir:  "saves/default",
	LogLevel: "info",
	TickRate: 1,
	Window:   WindowConfig{Width: 1024, Height: 768},
	Files:    savefile.DefaultFileNames,
}

// Default returns a copy of the default configuration that the caller may
// modify freely.
func Default() *Config {
	c := deep.MustCopy(defaultConfig)
	return &c
}

// Load reads a YAML config file on top of the defaults. Environment variables
// in the file are expanded. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %v", ErrInvalidConfig, c.TickRate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]string)
	for key, name := range map[string]string{
		"tick":      c.Files.Tick,
		"aircraft":  c.Files.Aircraft,
		"queues":    c.Files.Queues,
		"terminals": c.Files.Terminals,
	} {
		if name == "" {
			return fmt.Errorf("%w: files.%s must not be empty", ErrInvalidConfig, key)
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%w: files.%s and files.%s are both %q", ErrInvalidConfig, key, other, name)
		}
		seen[name] = key
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
