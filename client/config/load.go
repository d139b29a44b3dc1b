package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// ConfigEnv is the environment variable naming the config file to use.
const ConfigEnv = "KUBECONFIG"

// RecommendedPath returns the config path from the ConfigEnv environment
// variable, falling back to ~/.kube/config.
func RecommendedPath() (string, error) {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to find config: %w", err)
	}
	return filepath.Join(home, ".kube", "config"), nil
}

// Load reads and parses one kubeconfig file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	return &cfg, nil
}
