package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NATS.URL != "" {
		t.Errorf("expected publishing disabled by default, got URL %s", cfg.NATS.URL)
	}
	if cfg.NATS.Subject != "graph.ingest.entity" {
		t.Errorf("expected default subject graph.ingest.entity, got %s", cfg.NATS.Subject)
	}
	if cfg.NATS.Name != "gocam" {
		t.Errorf("expected default client name gocam, got %s", cfg.NATS.Name)
	}
	if cfg.Export.Format != "json" {
		t.Errorf("expected default export format json, got %s", cfg.Export.Format)
	}
	if cfg.Watch.GetDebounceDelay() <= 0 {
		t.Error("expected positive default debounce delay")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing subject",
			modify:  func(c *Config) { c.NATS.Subject = "" },
			wantErr: true,
		},
		{
			name:    "missing client name",
			modify:  func(c *Config) { c.NATS.Name = "" },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "rdf export format accepted",
			modify:  func(c *Config) { c.Export.Format = "turtle" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
nats:
  url: "nats://test:4222"
  name: "gocam-test"
models:
  dir: "/data/models"
export:
  format: "yaml"
watch:
  debounce_delay: "2s"
  exclude_dirs:
    - .git
    - tmp
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.NATS.URL != "nats://test:4222" {
		t.Errorf("expected NATS URL nats://test:4222, got %s", cfg.NATS.URL)
	}
	if cfg.NATS.Name != "gocam-test" {
		t.Errorf("expected client name gocam-test, got %s", cfg.NATS.Name)
	}
	// Subject keeps its default when the file omits it.
	if cfg.NATS.Subject != "graph.ingest.entity" {
		t.Errorf("expected default subject, got %s", cfg.NATS.Subject)
	}
	if cfg.Models.Dir != "/data/models" {
		t.Errorf("expected models dir /data/models, got %s", cfg.Models.Dir)
	}
	if cfg.Export.Format != "yaml" {
		t.Errorf("expected export format yaml, got %s", cfg.Export.Format)
	}
	if cfg.Watch.DebounceDelay != "2s" {
		t.Errorf("expected debounce 2s, got %s", cfg.Watch.DebounceDelay)
	}
	if len(cfg.Watch.ExcludeDirs) != 2 {
		t.Errorf("expected 2 exclude dirs, got %d", len(cfg.Watch.ExcludeDirs))
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		NATS: NATSConfig{
			URL: "nats://override:4222",
		},
		Models: ModelsConfig{
			Dir: "/override/models",
		},
	}

	base.Merge(override)

	if base.NATS.URL != "nats://override:4222" {
		t.Errorf("expected overridden NATS URL, got %s", base.NATS.URL)
	}
	// Subject should remain from base since override didn't set it
	if base.NATS.Subject != "graph.ingest.entity" {
		t.Errorf("expected subject to remain default, got %s", base.NATS.Subject)
	}
	if base.Models.Dir != "/override/models" {
		t.Errorf("expected models dir /override/models, got %s", base.Models.Dir)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Models.Dir = "/saved/models"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Models.Dir != "/saved/models" {
		t.Errorf("expected models dir /saved/models, got %s", loaded.Models.Dir)
	}
}
