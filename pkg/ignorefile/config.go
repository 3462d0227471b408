package ignorefile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigName is the optional per-project config file.
const ConfigName = ".orbit.yaml"

// Config is the subset of a project's .orbit.yaml that affects
// packaging.
type Config struct {
	Package PackageConfig `yaml:"package"`
}

// PackageConfig configures how a root is packaged for upload.
type PackageConfig struct {
	// Exclude lists extra ignore patterns compiled before the ignore
	// file's rules.
	Exclude []string `yaml:"exclude"`

	// IgnoreFile overrides the ignore file name for this project.
	IgnoreFile string `yaml:"ignore_file"`
}

// LoadConfig reads the project config at root.
// A missing config is a normal state and returns nil.
func LoadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ConfigName)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}
	return &cfg, nil
}
