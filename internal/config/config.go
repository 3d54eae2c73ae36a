package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-directory config file name
const FileName = ".pastelines.toml"

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Link       LinkSettings `toml:"link"`
	UISettings UISettings   `toml:"ui"`
}

// LinkSettings controls how selections are written into shareable links
type LinkSettings struct {
	BaseURL           string `toml:"base_url"`
	Parameter         string `toml:"parameter"`
	PasswordParameter string `toml:"password_parameter"`
	Separator         string `toml:"separator"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SyntaxHighlight  bool   `toml:"syntax_highlight"`
	Style            string `toml:"style"`
	ShowWarnings     bool   `toml:"show_warnings"`
	CopyLinkOnChange bool   `toml:"copy_link_on_change"`
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
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
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

	return &configService{
		filePath: filepath.Join(configDir, "pastelines", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service reading and writing one file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration, returning defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()

	return cfg, nil
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

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Link: LinkSettings{
			BaseURL:           "https://paste.invalid/",
			Parameter:         "lines",
			PasswordParameter: "pastePassword",
			Separator:         "_",
		},
		UISettings: UISettings{
			SyntaxHighlight: true,
			Style:           "monokai",
			ShowWarnings:    true,
		},
	}
}

// fillDefaults restores values that an explicit empty string would break
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Link.BaseURL == "" {
		c.Link.BaseURL = def.Link.BaseURL
	}
	if c.Link.Parameter == "" {
		c.Link.Parameter = def.Link.Parameter
	}
	if c.Link.Separator == "" {
		c.Link.Separator = def.Link.Separator
	}
	if c.UISettings.Style == "" {
		c.UISettings.Style = def.UISettings.Style
	}
}
