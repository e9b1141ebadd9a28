package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	configContent := `
server:
  port: 9090
log:
  level: "debug"
  format: "json"
store:
  seed_file: "contracts.yaml"
  fetch_delay_ms: 150
  default_page_size: 10
session:
  data_dir: "/tmp/session-test"
  token_expire_days: 14
upload:
  tick_interval_ms: 250
  max_increment: 20
  success_rate: 0.9
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(configContent); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Store.SeedFile != "contracts.yaml" {
		t.Errorf("Expected seed file contracts.yaml, got %s", cfg.Store.SeedFile)
	}
	if cfg.Store.FetchDelayMs != 150 {
		t.Errorf("Expected fetch delay 150, got %d", cfg.Store.FetchDelayMs)
	}
	if cfg.Session.TokenExpireDays != 14 {
		t.Errorf("Expected token expire days 14, got %d", cfg.Session.TokenExpireDays)
	}
	if cfg.Upload.TickIntervalMs != 250 {
		t.Errorf("Expected tick interval 250, got %d", cfg.Upload.TickIntervalMs)
	}
	if cfg.Upload.SuccessRate != 0.9 {
		t.Errorf("Expected success rate 0.9, got %f", cfg.Upload.SuccessRate)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("server: {}\n"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Store.FetchDelayMs != 300 {
		t.Errorf("Expected default fetch delay 300, got %d", cfg.Store.FetchDelayMs)
	}
	if cfg.Store.DefaultPageSize != 5 {
		t.Errorf("Expected default page size 5, got %d", cfg.Store.DefaultPageSize)
	}
	if cfg.Session.DataDir != "./data/session" {
		t.Errorf("Expected default session dir, got %s", cfg.Session.DataDir)
	}
	if cfg.Session.TokenExpireDays != 7 {
		t.Errorf("Expected default token expire days 7, got %d", cfg.Session.TokenExpireDays)
	}
	if cfg.Upload.TickIntervalMs != 500 {
		t.Errorf("Expected default tick interval 500, got %d", cfg.Upload.TickIntervalMs)
	}
	if cfg.Upload.MaxIncrement != 30 {
		t.Errorf("Expected default max increment 30, got %f", cfg.Upload.MaxIncrement)
	}
	if cfg.Upload.SuccessRate != 0.8 {
		t.Errorf("Expected default success rate 0.8, got %f", cfg.Upload.SuccessRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/non/existent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("server: [not a map"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	if _, err := Load(tmpFile.Name()); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Upload.SuccessRate != 0.8 {
		t.Errorf("Expected default success rate 0.8, got %f", cfg.Upload.SuccessRate)
	}
}
