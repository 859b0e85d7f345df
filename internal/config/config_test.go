package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emovoice-config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Backend != "local" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "local")
	}
	if cfg.BaseRate != DefaultBaseRate {
		t.Errorf("BaseRate = %d, want %d", cfg.BaseRate, DefaultBaseRate)
	}
	if cfg.BaseVolume != DefaultBaseVolume {
		t.Errorf("BaseVolume = %d, want %d", cfg.BaseVolume, DefaultBaseVolume)
	}
	if cfg.PlayVolume != DefaultPlayVolume {
		t.Errorf("PlayVolume = %d, want %d", cfg.PlayVolume, DefaultPlayVolume)
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should be enabled by default")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := writeConfig(t, `{
		"backend": "openai",
		"output_dir": "wavs",
		"base_rate": 175,
		"credentials": {"openai_api_key": "sk-test"},
		"openai": {"model": "tts-1-hd", "voices": {"happy": "shimmer"}}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "openai" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "openai")
	}
	if cfg.OutputDir != "wavs" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "wavs")
	}
	if cfg.BaseRate != 175 {
		t.Errorf("BaseRate = %d, want 175", cfg.BaseRate)
	}
	// Unset fields keep their defaults.
	if cfg.BaseVolume != DefaultBaseVolume {
		t.Errorf("BaseVolume = %d, want default %d", cfg.BaseVolume, DefaultBaseVolume)
	}
	if cfg.Credentials.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q, want %q", cfg.Credentials.OpenAIAPIKey, "sk-test")
	}
	if cfg.OpenAI.Voices["happy"] != "shimmer" {
		t.Errorf("happy voice = %q, want %q", cfg.OpenAI.Voices["happy"], "shimmer")
	}
}

func TestLoadMissingExplicitPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestHistoryDisabled(t *testing.T) {
	path := writeConfig(t, `{"history": false}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled")
	}
}

func TestAPIKeyEnvFallback(t *testing.T) {
	orig := os.Getenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", orig)
	os.Setenv("OPENAI_API_KEY", "sk-env")

	path := writeConfig(t, `{}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Credentials.OpenAIAPIKey != "sk-env" {
		t.Errorf("OpenAIAPIKey = %q, want env fallback %q", cfg.Credentials.OpenAIAPIKey, "sk-env")
	}
}

func TestConfigValueBeatsEnv(t *testing.T) {
	orig := os.Getenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", orig)
	os.Setenv("OPENAI_API_KEY", "sk-env")

	path := writeConfig(t, `{"credentials": {"openai_api_key": "sk-file"}}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Credentials.OpenAIAPIKey != "sk-file" {
		t.Errorf("OpenAIAPIKey = %q, config value should win", cfg.Credentials.OpenAIAPIKey)
	}
}
