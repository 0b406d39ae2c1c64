package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ProviderLocal selects the built-in template generator; no API key, no
// network.
const ProviderLocal = "local"

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderLocal,
	}
}

// Remote reports whether the clarification should go to a chat-completion
// service. A missing key for a keyed provider routes to the local generator;
// that is a routing decision, not an error.
func (c *Config) Remote() bool {
	if c == nil || c.Provider == "" || c.Provider == ProviderLocal {
		return false
	}
	if p := GetProvider(c.Provider); p != nil && p.NeedsAPIKey && c.APIKey == "" {
		return false
	}
	return true
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clarifier"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file and applies environment overrides. A .env file
// in the working directory is honored. Returns nil (not an error) when
// neither a file nor any CLARIFIER_* variable is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg *Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to env
	default:
		return nil, err
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays CLARIFIER_* variables on cfg. When no file existed, an
// API key or provider in the environment is enough to produce a config.
func applyEnv(cfg *Config) *Config {
	provider := os.Getenv("CLARIFIER_PROVIDER")
	apiKey := os.Getenv("CLARIFIER_API_KEY")
	model := os.Getenv("CLARIFIER_MODEL")
	baseURL := os.Getenv("CLARIFIER_BASE_URL")

	if cfg == nil {
		if provider == "" && apiKey == "" {
			return nil
		}
		cfg = DefaultConfig()
		if provider == "" {
			// A bare key implies the default keyed provider.
			cfg.Provider = "openai"
		}
	}

	if provider != "" {
		cfg.Provider = provider
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if model != "" {
		cfg.Model = model
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
