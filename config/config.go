// Package config loads the game configuration: window setup, key bindings,
// fade timing, and the per-mode scene sequences the director plays.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sablewing/timerift/director"
)

//go:embed config.yaml
var defaultConfig []byte

type Config struct {
	Window     WindowConfig        `yaml:"window"`
	FadeFrames int                 `yaml:"fade_frames"`
	Keys       KeysConfig          `yaml:"keys"`
	Scenes     ScenesConfig        `yaml:"scenes"`
	Sequences  map[string][]string `yaml:"sequences"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type KeysConfig struct {
	TimeTravel string `yaml:"time_travel"`
	Reset      string `yaml:"reset"`
	Menu       string `yaml:"menu"`
}

type ScenesConfig struct {
	Menu string `yaml:"menu"`
	End  string `yaml:"end"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return parse(defaultConfig)
}

// Load reads a config file from disk, or the embedded default when path is
// empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FadeFrames <= 0 {
		return fmt.Errorf("config: fade_frames must be positive, got %d", c.FadeFrames)
	}
	if c.Scenes.Menu == "" || c.Scenes.End == "" {
		return fmt.Errorf("config: scenes.menu and scenes.end are required")
	}
	if len(c.Sequences) == 0 {
		return fmt.Errorf("config: at least one mode sequence is required")
	}
	for name, scenes := range c.Sequences {
		if _, ok := director.ParseMode(name); !ok {
			return fmt.Errorf("config: unknown mode %q in sequences", name)
		}
		if len(scenes) == 0 {
			return fmt.Errorf("config: sequence for mode %q is empty", name)
		}
		for _, s := range scenes {
			if s == "" {
				return fmt.Errorf("config: sequence for mode %q has an empty scene name", name)
			}
		}
	}
	return nil
}

// DirectorSequences converts the config's string-keyed sequences into the
// form the director consumes. Validation has already rejected unknown mode
// names.
func (c *Config) DirectorSequences() director.Sequences {
	byMode := make(map[director.Mode][]string, len(c.Sequences))
	for name, scenes := range c.Sequences {
		mode, ok := director.ParseMode(name)
		if !ok {
			continue
		}
		byMode[mode] = append([]string(nil), scenes...)
	}
	return director.Sequences{
		ByMode:    byMode,
		MenuScene: c.Scenes.Menu,
		EndScene:  c.Scenes.End,
	}
}

// SceneNames returns every scene name the config references, sequences
// first, then the menu and end scenes.
func (c *Config) SceneNames() []string {
	var names []string
	for _, scenes := range c.Sequences {
		names = append(names, scenes...)
	}
	return append(names, c.Scenes.Menu, c.Scenes.End)
}
