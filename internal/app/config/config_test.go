package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.ServicePort != 5002 {
		t.Errorf("ServicePort = %d, want 5002", cfg.ServicePort)
	}
	if cfg.Redis.MetricsTTL != 10*time.Minute {
		t.Errorf("MetricsTTL = %v, want 10m", cfg.Redis.MetricsTTL)
	}
	if cfg.Coach.Model != "gemini-pro" || cfg.Coach.MaxTokens != 1024 {
		t.Errorf("coach defaults = %+v", cfg.Coach)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestNewConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := `
ServicePort = 8080

[Redis]
Host = "cache"
MetricsTTL = "2m"

[MinIO]
Bucket = "labels"
`
	if err := os.WriteFile(filepath.Join(dir, "test.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_NAME", "test")
	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("PORT", "9090")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.ServicePort != 9090 {
		t.Errorf("ServicePort = %d, want env override 9090", cfg.ServicePort)
	}
	if cfg.Redis.Host != "cache" || cfg.Redis.MetricsTTL != 2*time.Minute {
		t.Errorf("redis = %+v", cfg.Redis)
	}
	if cfg.MinIO.Bucket != "labels" || cfg.MinIO.Port != "9000" {
		t.Errorf("minio = %+v", cfg.MinIO)
	}
	if cfg.Coach.APIKey != "secret" {
		t.Errorf("APIKey not taken from env")
	}
}
