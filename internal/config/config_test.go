package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 6 {
		t.Fatalf("PageSize = %d, want 6", cfg.PageSize)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %s, want 30s", cfg.Timeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GUARDIA_API_BASE_URL", "https://backend.guarda.pa.gov.br")
	t.Setenv("GUARDIA_PAGE_SIZE", "10")
	t.Setenv("GUARDIA_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://backend.guarda.pa.gov.br" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize = %d", cfg.PageSize)
	}
	if !cfg.Debug {
		t.Fatal("Debug should be true")
	}
}

func TestFileOverridesEnvironment(t *testing.T) {
	t.Setenv("GUARDIA_API_BASE_URL", "http://from-env:3333")
	t.Setenv("GUARDIA_PAGE_SIZE", "10")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_base_url: http://from-file:3333\ntimeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://from-file:3333" {
		t.Fatalf("file should win over env, got %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %s, want 5s", cfg.Timeout)
	}
	// Keys absent from the file keep their env values.
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize = %d, want env value 10", cfg.PageSize)
	}
}

func TestMissingFileIsFine(t *testing.T) {
	t.Setenv("GUARDIA_API_BASE_URL", "http://from-env:3333")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://from-env:3333" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
}

func TestBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout: nonsense\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a bad timeout")
	}
}

func TestBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_base_url: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
