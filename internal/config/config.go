// Package config handles catalog discovery and configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config represents catalog configuration stored in .toolshed/config.json.
type Config struct {
	ExportPath string `json:"export_path,omitempty"` // Default target for export-csv, relative to the catalog root
	Timezone   string `json:"timezone,omitempty"`    // IANA zone for human-readable timestamps (empty = local)
}

const (
	ToolshedDir       = ".toolshed"
	ConfigFile        = "config.json"
	DBFile            = "tools.db"
	DefaultExportFile = "tools.csv"

	// RootEnv overrides catalog discovery when set.
	RootEnv = "TOOLSHED_ROOT"
)

// ToolshedPath returns the path to the .toolshed directory from a root path.
func ToolshedPath(root string) string {
	return filepath.Join(root, ToolshedDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ToolshedDir, ConfigFile)
}

// DBPath returns the path to tools.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, ToolshedDir, DBFile)
}

// IsCatalog checks if the given path contains a toolshed catalog.
func IsCatalog(root string) bool {
	info, err := os.Stat(ToolshedPath(root))
	return err == nil && info.IsDir()
}

// StartDir returns the directory catalog discovery starts from.
// A .env file in the working directory is honored, then the
// TOOLSHED_ROOT variable, then the working directory itself.
func StartDir() (string, error) {
	// Ignore the error: a missing .env is the normal case.
	_ = godotenv.Load()

	if root := os.Getenv(RootEnv); root != "" {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// FindCatalog walks up from the given path to find a toolshed catalog,
// falling back to the global config's catalog_path. Returns the
// catalog root or an error telling the user how to create one.
func FindCatalog(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsCatalog(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	if path := GetCatalogPath(); path != "" && IsCatalog(path) {
		return path, nil
	}

	return "", fmt.Errorf("not in a toolshed catalog (no %s directory found; run 'tb init' to create one)", ToolshedDir)
}

// Load reads configuration from the catalog at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the catalog at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolveExportPath returns the absolute export target for a catalog:
// the configured export_path if set, otherwise tools.csv at the root.
func (c *Config) ResolveExportPath(root string) string {
	p := c.ExportPath
	if p == "" {
		p = DefaultExportFile
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return p
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
