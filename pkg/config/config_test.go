package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/toplangs/pkg/errors"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
token = "file-token"
top = 8
output = "out/langs.svg"
title = "Languages"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Token != "file-token" || cfg.TopN != 8 || cfg.Output != "out/langs.svg" || cfg.Title != "Languages" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("top = "), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{TokenEnvVar: "env-token"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var cfg Config
	cfg.ApplyEnv(lookup)
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want env-token", cfg.Token)
	}

	// The environment overlays a file token; flags are merged afterwards.
	cfg = Config{Token: "file-token"}
	cfg.ApplyEnv(lookup)
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want env-token (env beats file)", cfg.Token)
	}

	// An empty variable counts as unset.
	cfg = Config{Token: "file-token"}
	cfg.ApplyEnv(func(string) (string, bool) { return "", true })
	if cfg.Token != "file-token" {
		t.Errorf("Token = %q, want file-token (empty env ignored)", cfg.Token)
	}
}

func TestMerge(t *testing.T) {
	base := Config{Token: "file-token", TopN: 8, Output: "a.svg", Title: "File"}
	flags := Config{TopN: 3, Title: "Flag"}

	got := base.Merge(flags)

	if got.Token != "file-token" {
		t.Errorf("Token = %q, want file-token (unset flag must not clear)", got.Token)
	}
	if got.TopN != 3 || got.Title != "Flag" {
		t.Errorf("Merge() = %+v, flag values must win", got)
	}
	if got.Output != "a.svg" {
		t.Errorf("Output = %q, want a.svg", got.Output)
	}
}
