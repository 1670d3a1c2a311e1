package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the host configuration of the haunted house viewer. The diorama
// itself is fixed; only the window, assets and loop are configurable.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetsConfig `yaml:"assets"`
	Layout LayoutConfig `yaml:"layout"`
	Engine EngineConfig `yaml:"engine"`
}

// WindowConfig contains the host window settings
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// AssetsConfig locates the texture files
type AssetsConfig struct {
	Root string `yaml:"root"` // directory containing assets/
}

// LayoutConfig controls the grave layout
type LayoutConfig struct {
	Seed uint64 `yaml:"seed"` // 0 means seeded from the clock
}

// EngineConfig contains frame loop settings
type EngineConfig struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
	Headless  bool    `yaml:"headless"` // render without a GPU, for smoke runs
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Haunted House",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Assets: AssetsConfig{
			Root: ".",
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
	}
}

// LoadConfig loads the configuration from a file. The defaults are returned
// together with the error when the file is missing or malformed.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
