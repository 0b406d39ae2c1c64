package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsNil(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLARIFIER_PROVIDER", "")
	t.Setenv("CLARIFIER_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v, want nil when nothing is configured", cfg)
	}
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLARIFIER_API_KEY", "sk-test")
	t.Setenv("CLARIFIER_PROVIDER", "")
	t.Setenv("CLARIFIER_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() = nil, want config built from environment")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai implied by bare key", cfg.Provider)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", cfg.APIKey)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "clarifier")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	file := "provider: openai\napi_key: from-file\nmodel: gpt-4o-mini\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CLARIFIER_API_KEY", "from-env")
	t.Setenv("CLARIFIER_PROVIDER", "")
	t.Setenv("CLARIFIER_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env override", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want value from file", cfg.Model)
	}
}

func TestRemote(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want bool
	}{
		{"nil config", nil, false},
		{"local provider", &Config{Provider: ProviderLocal}, false},
		{"keyed provider without key", &Config{Provider: "openai"}, false},
		{"keyed provider with key", &Config{Provider: "openai", APIKey: "sk"}, true},
		{"ollama needs no key", &Config{Provider: "ollama"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Remote(); got != tt.want {
				t.Errorf("Remote() = %v, want %v", got, tt.want)
			}
		})
	}
}
