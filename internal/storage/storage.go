package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lunit-heesungyang/color-picker/internal/model"
	"github.com/lunit-heesungyang/color-picker/internal/picker"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "cpick"
	configFileName = "config.yaml"
)

// Config is the on-disk picker configuration
type Config struct {
	Color   string   `yaml:"color"`
	Presets []string `yaml:"presets"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Color:   picker.DefaultHex,
		Presets: model.DefaultPresets(),
	}
}

// Validate checks the initial color and every preset
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Color, "#") {
		return fmt.Errorf("invalid color %q: want #RRGGBB", c.Color)
	}
	if _, err := model.HexToRGB(c.Color); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette builds the preset palette described by the config
func (c *Config) Palette() (*model.Palette, error) {
	return model.NewPalette(c.Presets...)
}

// Storage handles reading and writing the config file
type Storage struct {
	ConfigDir string
	FileName  string
	// Logger receives watcher errors. log.Default() is used if nil.
	Logger *log.Logger
}

// New creates a Storage for the given config file path. An empty path uses
// the per-user config directory.
func New(configPath string) *Storage {
	if configPath == "" {
		return &Storage{ConfigDir: defaultConfigDir(), FileName: configFileName}
	}
	return &Storage{
		ConfigDir: filepath.Dir(configPath),
		FileName:  filepath.Base(configPath),
	}
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.Getwd()
	}
	return filepath.Join(dir, appDirName)
}

func (s *Storage) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// ConfigPath returns the full path of the config file
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.ConfigDir, s.FileName)
}

// EnsureDir creates the config directory if it doesn't exist
func (s *Storage) EnsureDir() error {
	return os.MkdirAll(s.ConfigDir, 0755)
}

// Exists reports whether the config file is present
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.ConfigPath())
	return err == nil
}

// Load reads the config file. A missing file yields the defaults; fields
// left out of the file keep their default values.
func (s *Storage) Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.ConfigPath(), err)
	}
	return cfg, nil
}

// Save writes cfg to the config file
func (s *Storage) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(s.ConfigPath(), data, 0644)
}
