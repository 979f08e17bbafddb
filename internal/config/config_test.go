package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PAPERLENS_PROVIDER", "")
	path := filepath.Join(t.TempDir(), "paperlens.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected default config file to be written: %v", err)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("Expected default port 8090, got %d", cfg.Server.Port)
	}
	if cfg.Analysis.Provider != "gemini" {
		t.Errorf("Expected default provider gemini, got %s", cfg.Analysis.Provider)
	}
	if cfg.Analysis.MaxPages != 5 {
		t.Errorf("Expected default max pages 5, got %d", cfg.Analysis.MaxPages)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PAPERLENS_PROVIDER", "")
	path := filepath.Join(t.TempDir(), "paperlens.yaml")
	content := `server:
  port: 9000
analysis:
  provider: openai
  openai_model: gpt-4o
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Expected port 9000 from file, got %d", cfg.Server.Port)
	}
	if cfg.Analysis.Provider != "openai" {
		t.Errorf("Expected provider openai from file, got %s", cfg.Analysis.Provider)
	}
	if cfg.Analysis.OpenAIModel != "gpt-4o" {
		t.Errorf("Expected model gpt-4o from file, got %s", cfg.Analysis.OpenAIModel)
	}
	// Unset fields keep their defaults
	if cfg.Analysis.MaxPages != 5 {
		t.Errorf("Expected default max pages 5, got %d", cfg.Analysis.MaxPages)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("PAPERLENS_PROVIDER", "openai")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("OPENAI_API_KEY", "oai-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "paperlens.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Expected PORT override 7070, got %d", cfg.Server.Port)
	}
	if cfg.Analysis.Provider != "openai" {
		t.Errorf("Expected provider override openai, got %s", cfg.Analysis.Provider)
	}
	if cfg.GeminiAPIKey != "gem-key" || cfg.OpenAIAPIKey != "oai-key" {
		t.Error("Expected API keys from environment")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		gemKey   string
		oaiKey   string
		wantErr  bool
	}{
		{"gemini with key", "gemini", "k", "", false},
		{"gemini without key", "gemini", "", "", true},
		{"openai with key", "openai", "", "k", false},
		{"openai without key", "openai", "", "", true},
		{"unknown provider", "anthropic", "k", "k", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Analysis.Provider = tt.provider
			cfg.GeminiAPIKey = tt.gemKey
			cfg.OpenAIAPIKey = tt.oaiKey

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestSaveNeverWritesCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paperlens.yaml")

	cfg := Default()
	cfg.GeminiAPIKey = "secret-gemini-key"
	cfg.OpenAIAPIKey = "secret-openai-key"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if strings.Contains(string(data), "secret-gemini-key") ||
		strings.Contains(string(data), "secret-openai-key") {
		t.Error("Credentials must never be written to the config file")
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.RequestTimeout() != 120*time.Second {
		t.Errorf("Expected 120s request timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.ResultMaxAge() != 30*time.Minute {
		t.Errorf("Expected 30m result max age, got %v", cfg.ResultMaxAge())
	}
	if cfg.CleanupInterval() != 5*time.Minute {
		t.Errorf("Expected 5m cleanup interval, got %v", cfg.CleanupInterval())
	}
	if cfg.GetServerAddr() != "0.0.0.0:8090" {
		t.Errorf("Unexpected server addr %s", cfg.GetServerAddr())
	}
}
