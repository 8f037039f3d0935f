package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	DBPath string `env:"TEST_DB_PATH" envDefault:"data/prizes.db"`
	Limit  int    `env:"TEST_LIMIT" envDefault:"50"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "data/prizes.db" {
		t.Fatalf("DBPath = %q, want data/prizes.db", cfg.DBPath)
	}
	if cfg.Limit != 50 {
		t.Fatalf("Limit = %d, want 50", cfg.Limit)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_LIMIT", "7")
	t.Setenv("ANDARIA_TEST_LIMIT", "9")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Limit != 9 {
		t.Fatalf("Limit = %d, want 9", cfg.Limit)
	}
}

func TestParseEnvFrom(t *testing.T) {
	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{"ANDARIA_TEST_DB_PATH": "/tmp/p.db"})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "/tmp/p.db" || cfg.Limit != 50 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ANDARIA_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
