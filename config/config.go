package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the fixed configuration file name expected at the
// project root.
const FileName = "deploy.yaml"

// Config is the top-level configuration for gitship.
type Config struct {
	Deploy DeployConfig `yaml:"deploy"`
	CDN    CDNConfig    `yaml:"cdn"`
}

// DeployConfig holds the deployment settings. Mode stays a raw string
// here; the orchestrator parses it so that unrecognized values take the
// warn-and-skip path instead of failing the load.
type DeployConfig struct {
	Mode        string `yaml:"mode"` // "none", "public-only", "split"
	Branch      string `yaml:"branch"`
	PublicRepo  string `yaml:"public_repo"`
	PrivateRepo string `yaml:"private_repo"`
}

// CDNConfig holds the CDN settings. Only User and Org feed into the
// push flow (they decide the repository owner).
type CDNConfig struct {
	BaseURL string `yaml:"base_url"`
	User    string `yaml:"user"`
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch"`
	Org     bool   `yaml:"org"`
}

// Load reads and parses the configuration file. A missing file means
// "deployment disabled": it warns and returns (nil, nil) so the caller
// can skip quietly. A file that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("No %s found, skipping deployment", filepath.Base(path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, unmarshalErr)
	}

	return &cfg, nil
}

// Path returns the configuration file path for a project root.
func Path(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}
