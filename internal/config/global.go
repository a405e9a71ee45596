package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/tb/config.yml.
type GlobalConfig struct {
	CatalogPath string `yaml:"catalog_path,omitempty"` // Default catalog when none is found upward
	ExportPath  string `yaml:"export_path,omitempty"`
	Timezone    string `yaml:"timezone,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "tb"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/tb/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.CatalogPath != "" {
		cfg.CatalogPath = ExpandPath(cfg.CatalogPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetCatalogPath returns the configured default catalog path.
func GetCatalogPath() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.CatalogPath
}

// DisplayLocation resolves the timezone used for human-readable
// timestamps: the catalog config wins, then the global config, then
// the system's local zone. An unknown zone name falls back to local.
func DisplayLocation(catalogTZ string) *time.Location {
	name := catalogTZ
	if name == "" {
		cfg, _ := LoadGlobalConfig()
		name = cfg.Timezone
	}
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// ValidateTimezone checks that a timezone name is a loadable IANA zone.
func ValidateTimezone(name string) error {
	if name == "" {
		return nil // Empty means local time
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone: %s", name)
	}
	return nil
}
