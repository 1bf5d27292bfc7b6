package config

import (
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "medscribe-secret-key" {
		t.Errorf("expected default JWT secret, got %s", cfg.JWTSecret)
	}
	if cfg.JWTExpirationHours != 24 {
		t.Errorf("expected default expiry 24h, got %d", cfg.JWTExpirationHours)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected default environment development, got %s", cfg.Environment)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.JWTExpirationHours != 1 {
		t.Errorf("expected expiry 1h, got %d", cfg.JWTExpirationHours)
	}
}

func TestLoadConfig_InvalidExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric JWT_EXPIRATION_HOURS")
	}
}
