package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
pipeline:
  name: builder-cards
  log_level: debug
services:
  extraction:
    url: http://localhost:9001
  timeout: 5s
extraction:
  chunk_chars: 4000
aggregation:
  strict: true
paths:
  outputs: /tmp/out
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.Name != "builder-cards" || cfg.Pipeline.LogLvl != "debug" {
		t.Errorf("pipeline: %+v", cfg.Pipeline)
	}
	if cfg.Services.Extraction.URL != "http://localhost:9001" || cfg.Services.Timeout != 5*time.Second {
		t.Errorf("services: %+v", cfg.Services)
	}
	if cfg.Extraction.ChunkChars != 4000 || !cfg.Aggregation.Strict || cfg.Paths.Outputs != "/tmp/out" {
		t.Errorf("config: %+v", cfg)
	}
	// untouched keys keep defaults
	if cfg.Extraction.Concurrency != 3 || cfg.Chunking.ChunkSeconds != 480 || cfg.Pipeline.LogFormat != "text" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	p := writeConfig(t, "extraction:\n  concurrency: 2\n")
	t.Setenv("WFP_EXTRACTION_CONCURRENCY", "7")
	t.Setenv("WFP_SERVICES_RENDER_URL", "http://render")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extraction.Concurrency != 7 {
		t.Errorf("concurrency: want=7 got=%d", cfg.Extraction.Concurrency)
	}
	if cfg.Services.Render.URL != "http://render" {
		t.Errorf("render url: got=%q", cfg.Services.Render.URL)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Outputs != "outputs" || cfg.Services.Timeout != 60*time.Second {
		t.Fatalf("defaults: %+v", cfg)
	}
}
