package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	// Check defaults
	if cfg.Sim.NumHalos != 1000 {
		t.Errorf("expected default num_halos 1000, got %d", cfg.Sim.NumHalos)
	}

	if cfg.Sim.BoxSize != 250.0 {
		t.Errorf("expected default box_size 250, got %g", cfg.Sim.BoxSize)
	}

	if cfg.Cache.Path != "halotools_cache.db" {
		t.Errorf("expected default cache path 'halotools_cache.db', got %s", cfg.Cache.Path)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	// Write config file
	configContent := `
sim:
  num_halos: 5000
  box_size: 400
  redshift: 1.0
  seed: 7
cache:
  path: /tmp/catalogs.db
logging:
  level: debug
`
	os.WriteFile("halotools.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.Sim.NumHalos != 5000 {
		t.Errorf("expected num_halos 5000, got %d", cfg.Sim.NumHalos)
	}

	if cfg.Sim.Redshift != 1.0 {
		t.Errorf("expected redshift 1.0, got %g", cfg.Sim.Redshift)
	}

	if cfg.Sim.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Sim.Seed)
	}

	if cfg.Cache.Path != "/tmp/catalogs.db" {
		t.Errorf("expected cache path '/tmp/catalogs.db', got %s", cfg.Cache.Path)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "non-positive num_halos",
			content: `
sim:
  num_halos: 0
`,
		},
		{
			name: "negative redshift",
			content: `
sim:
  redshift: -0.5
`,
		},
		{
			name: "unknown logging level",
			content: `
logging:
  level: loud
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.WriteFile("halotools.yml", []byte(tt.content), 0644)
			defer os.Remove("halotools.yml")

			if _, err := Load(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
