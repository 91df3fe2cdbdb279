package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"lasso/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	UISettings UISettings     `toml:"ui"`
	Search     SearchSettings `toml:"search"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SidebarVisible bool `toml:"sidebar_visible"`
	SidebarWidth   int  `toml:"sidebar_width"`
	WrapWidth      int  `toml:"wrap_width"` // 0 wraps to the viewport width
}

// SearchSettings represents find-bar configuration
type SearchSettings struct {
	Placeholder string `toml:"placeholder"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			SidebarVisible: true,
			SidebarWidth:   28,
		},
		Search: SearchSettings{
			Placeholder: "Find in document",
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	lassoDir := filepath.Join(configDir, "lasso")
	os.MkdirAll(lassoDir, 0755)

	return &configService{
		filePath: filepath.Join(lassoDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Backfill zero values so an old or partial file still works
	if cfg.UISettings.SidebarWidth <= 0 {
		cfg.UISettings.SidebarWidth = DefaultConfig().UISettings.SidebarWidth
	}
	if cfg.Search.Placeholder == "" {
		cfg.Search.Placeholder = DefaultConfig().Search.Placeholder
	}

	cs.publishLoaded(path)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

func (cs *configService) publishLoaded(path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}
