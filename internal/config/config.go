package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"deckle/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	UISettings UISettings     `toml:"ui"`
	Scroll     ScrollSettings `toml:"scroll"`
	Watch      WatchSettings  `toml:"watch"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SidebarHidden bool `toml:"sidebar_hidden"`
	ShowProgress  bool `toml:"show_progress"`
}

// ScrollSettings holds the scroll-tracker thresholds, in rendered rows
type ScrollSettings struct {
	ActivationOffset int `toml:"activation_offset"`
	BackToTopOffset  int `toml:"back_to_top_offset"`
}

// WatchSettings controls the document file watcher
type WatchSettings struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		UISettings: UISettings{
			SidebarHidden: false,
			ShowProgress:  true,
		},
		Scroll: ScrollSettings{
			ActivationOffset: 3,
			BackToTopOffset:  10,
		},
		Watch: WatchSettings{Enabled: true},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
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

	deckleDir := filepath.Join(configDir, "deckle")
	_ = os.MkdirAll(deckleDir, 0o755)

	return &configService{
		filePath: filepath.Join(deckleDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	data, err := os.ReadFile(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		cs.notifyLoaded()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.notifyLoaded()
	return cfg, nil
}

// Save writes the configuration to file
func (cs *configService) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(cs.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

func (cs *configService) notifyLoaded() {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
}
