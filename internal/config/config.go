// Package config loads the optional mocksmith configuration file, which
// supplies defaults for flags the user does not pass on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory
// and in the user's home directory, in that order.
const FileName = ".mocksmith.yaml"

// Config represents the top-level configuration structure
type Config struct {
	// Registry is the default registry hostname for push operations.
	Registry string `yaml:"registry"`
	// Port is the default mock-server port baked into built images.
	Port int `yaml:"port"`
	// Build holds defaults for the image build step.
	Build BuildConfig `yaml:"build"`
	// Push holds defaults for the registry push step.
	Push PushConfig `yaml:"push"`
}

// BuildConfig contains settings for the image build step
type BuildConfig struct {
	Dockerfile string            `yaml:"dockerfile"`
	Context    string            `yaml:"context"`
	Args       map[string]string `yaml:"args"`
}

// PushConfig contains settings for the registry push step
type PushConfig struct {
	Username string `yaml:"username"`
	// Password is deliberately not read from the file; credentials come
	// from flags or the daemon's credential store.
	ExtraTags []string `yaml:"extraTags"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port: 3000,
		Build: BuildConfig{
			Dockerfile: "Dockerfile",
			Context:    ".",
		},
	}
}

// Load reads the configuration file at path. An empty path searches the
// working directory and then the home directory; a missing file in that
// mode yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = discover()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func discover() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
