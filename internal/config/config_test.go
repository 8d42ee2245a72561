package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("BED_CAPACITY_DISPLAY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.BedCapacityDisplay != 150 {
		t.Errorf("expected default bed capacity display 150, got %d", cfg.BedCapacityDisplay)
	}
	if cfg.PrintDelayMS != 300 {
		t.Errorf("expected default print delay 300, got %d", cfg.PrintDelayMS)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("ENV", "production")
	os.Setenv("BED_CAPACITY_DISPLAY", "200")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("BED_CAPACITY_DISPLAY")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("expected production mode")
	}
	if cfg.BedCapacityDisplay != 200 {
		t.Errorf("expected bed capacity display 200, got %d", cfg.BedCapacityDisplay)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "8000", RateLimitRPS: 100}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = &Config{Port: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty port")
	}

	cfg = &Config{Port: "8000", RateLimitRPS: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative rate limit")
	}

	cfg = &Config{Port: "8000", BedCapacityDisplay: -5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative capacity display")
	}
}
