package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Seed int64 `env:"DICECAST_TEST_SEED" envDefault:"42"`
}

// TestParseEnvDefaults ensures envDefault tags apply when vars are unset.
func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected default seed 42, got %d", cfg.Seed)
	}
}

// TestParseEnvOverride ensures set vars override defaults.
func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICECAST_TEST_SEED", "7")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}
}

// TestParseEnvError ensures malformed values surface with context.
func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DICECAST_TEST_SEED", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
