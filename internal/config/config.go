package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Invoice rendering settings
	Invoice InvoiceConfig `yaml:"invoice"`

	// Preferences file location
	Preferences PreferencesConfig `yaml:"preferences"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type InvoiceConfig struct {
	OutputDir    string `yaml:"output_dir"`    // Directory for rendered invoice documents
	TemplatePath string `yaml:"template_path"` // Custom HTML template; empty uses the built-in one
}

type PreferencesConfig struct {
	Path string `yaml:"path"` // Path to company preferences JSON file
}

// DefaultConfigPath returns ~/.config/billfold/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "billfold", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "billfold", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	base := filepath.Join(homeDir, ".config", "billfold")

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(base, "billfold.db"),
		},
		Invoice: InvoiceConfig{
			OutputDir:    filepath.Join(base, "invoices"),
			TemplatePath: "",
		},
		Preferences: PreferencesConfig{
			Path: filepath.Join(base, "preferences.json"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates all necessary directories (database, rendered invoices)
func (c *Config) EnsureDirectories() error {
	dbDir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Invoice.OutputDir, 0755); err != nil {
		return err
	}

	return nil
}
