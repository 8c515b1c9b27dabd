package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is everything the binary needs from its environment. APIKey is a
// secret: it goes into request headers and nowhere else.
type Settings struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type Environment string

const (
	EnvironmentLocal      Environment = "local"
	EnvironmentProduction Environment = "production"
)

func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case EnvironmentLocal, EnvironmentProduction:
		return Environment(s), nil
	default:
		return "", fmt.Errorf("%q is not a supported environment, use %q or %q",
			s, EnvironmentLocal, EnvironmentProduction)
	}
}

// Load reads settings from the configuration directory next to the binary's
// working directory. Layering: base.yaml, then {APP_ENVIRONMENT}.yaml, then
// APP__-prefixed environment variables.
func Load() (Settings, error) {
	return LoadFrom("configuration")
}

func LoadFrom(dir string) (Settings, error) {
	// .env is a local convenience; absence is not an error.
	_ = godotenv.Load()

	envName := os.Getenv("APP_ENVIRONMENT")
	if envName == "" {
		envName = string(EnvironmentLocal)
	}
	env, err := ParseEnvironment(envName)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := mergeFile(&s, filepath.Join(dir, "base.yaml")); err != nil {
		return Settings{}, err
	}
	if err := mergeFile(&s, filepath.Join(dir, string(env)+".yaml")); err != nil {
		return Settings{}, err
	}

	if v := os.Getenv("APP__API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("APP__BASE_URL"); v != "" {
		s.BaseURL = v
	}

	if s.APIKey == "" {
		return Settings{}, fmt.Errorf("api_key is required (set it in %s or via APP__API_KEY)", dir)
	}
	return s, nil
}

// mergeFile overlays the file's keys onto s; keys absent from the file keep
// their current values.
func mergeFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read configuration file: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
