package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cardiorec_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "10000" {
		t.Errorf("expected default port 10000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.DBMaxConns != 20 {
		t.Errorf("expected default max conns 20, got %d", cfg.DBMaxConns)
	}
	if cfg.TemplateDir != "./templates" {
		t.Errorf("expected default template dir ./templates, got %s", cfg.TemplateDir)
	}
	if cfg.PDFTimeoutSec != 60 {
		t.Errorf("expected default PDF timeout 60s, got %d", cfg.PDFTimeoutSec)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cardiorec_test")
	t.Setenv("PORT", "8080")
	t.Setenv("PDF_RENDER_TIMEOUT", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.PDFTimeoutSec != 15 {
		t.Errorf("expected PDF timeout 15, got %d", cfg.PDFTimeoutSec)
	}
}

func TestConfig_IsDev(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDev() {
		t.Error("expected IsDev true for development")
	}
	cfg.Env = "production"
	if cfg.IsDev() {
		t.Error("expected IsDev false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{DBMaxConns: 10, DBMinConns: 2, PDFTimeoutSec: 60}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.DBMinConns = 20
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when min conns exceed max conns")
	}

	cfg.DBMinConns = 2
	cfg.PDFTimeoutSec = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero PDF timeout")
	}
}
