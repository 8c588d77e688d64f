package sys

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigManager(t *testing.T) {
	// Temporarily redirect home for testing
	tmpHome := t.TempDir()

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpHome)
	defer os.Setenv("HOME", origHome)

	cm, err := NewConfigManager()
	if err != nil {
		t.Fatalf("NewConfigManager failed: %v", err)
	}

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify defaults
	if cfg.Agent.Provider != "claude" {
		t.Errorf("got provider %q, want 'claude'", cfg.Agent.Provider)
	}
	if cfg.Agent.Command != "claude" {
		t.Errorf("got command %q, want 'claude'", cfg.Agent.Command)
	}
	if cfg.Agent.TimeoutSeconds != 300 {
		t.Errorf("got timeout %d, want 300", cfg.Agent.TimeoutSeconds)
	}
	if cfg.Export.DefaultBib != "refs.bib" {
		t.Errorf("got default bib %q, want 'refs.bib'", cfg.Export.DefaultBib)
	}

	// Verify file existence
	configPath := filepath.Join(tmpHome, ".vibecite", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Test Save/Update
	cfg.Agent.Provider = "ollama"
	cfg.Model.Name = "custom-model"
	if err := cm.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Reload and verify
	cm2, _ := NewConfigManager()
	cfg2, _ := cm2.Load()
	if cfg2.Agent.Provider != "ollama" {
		t.Errorf("got provider %q, want 'ollama'", cfg2.Agent.Provider)
	}
	if cfg2.Model.Name != "custom-model" {
		t.Errorf("got model name %q, want 'custom-model'", cfg2.Model.Name)
	}
}
