// Package config loads runtime settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/actorsim/common"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Timing    string  `yaml:"timing"`
	Speed     float64 `yaml:"speed"`
	Seed      int32   `yaml:"seed"`
	Level     string  `yaml:"level"`
	DBPath    string  `yaml:"db_path"`
	HotReload bool    `yaml:"hot_reload"`
	Log       Log     `yaml:"log"`
	Window    Window  `yaml:"window"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Window struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Scale  int  `yaml:"scale"`
	Debug  bool `yaml:"debug"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{Timing: "50hz", Speed: 1, Level: "frog_arena.json", Window: Window{Width: 320, Height: 256, Scale: 3}}
	}
	return cfg
}

// Load reads configuration. Search order: customPath -> ~/.actorsim/config.yaml ->
// ./configs/config.yaml -> embedded default. Files are overlaid on the default, so a
// partial file only overrides what it names.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := common.ParseTimingMode(c.Timing); err != nil {
		return fmt.Errorf("config: %w: %v", ErrInvalid, err)
	}
	if c.Speed < common.MinSpeed || c.Speed > common.MaxSpeed {
		return fmt.Errorf("config: %w: speed %.2f outside %.1f-%.1f", ErrInvalid, c.Speed, common.MinSpeed, common.MaxSpeed)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: %w: window scale %d", ErrInvalid, c.Window.Scale)
	}
	return nil
}

// TimingMode parses the validated timing name.
func (c Config) TimingMode() common.TimingMode {
	m, err := common.ParseTimingMode(c.Timing)
	if err != nil {
		return common.Timing50Hz
	}
	return m
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".actorsim", "config.yaml")
}
