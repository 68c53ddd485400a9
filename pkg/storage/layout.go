package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional workspace configuration at the project root.
const ConfigFile = "specdrift.yaml"

// Layout declares where a project keeps its specification documents. Zero
// values fall back to the conventional paths.
type Layout struct {
	UseCases string `yaml:"use_cases"`
	BDD      string `yaml:"bdd"`
	Services string `yaml:"services"`
}

func DefaultLayout() Layout {
	return Layout{
		UseCases: filepath.Join("specs", "use-cases"),
		BDD:      filepath.Join("tests", "bdd"),
		Services: "services",
	}
}

// LoadLayout reads specdrift.yaml from the workspace root. A missing file
// yields the default layout; a malformed file is an error.
func LoadLayout(root string) (Layout, error) {
	layout := DefaultLayout()

	path := filepath.Join(root, ConfigFile)
	data, err := os.ReadFile(filepath.Clean(path))
	if os.IsNotExist(err) {
		return layout, nil
	}
	if err != nil {
		return layout, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var cfg Layout
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return layout, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if cfg.UseCases != "" {
		layout.UseCases = cfg.UseCases
	}
	if cfg.BDD != "" {
		layout.BDD = cfg.BDD
	}
	if cfg.Services != "" {
		layout.Services = cfg.Services
	}
	return layout, nil
}
