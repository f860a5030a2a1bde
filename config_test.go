package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("SCROLLKIT_THEME", "")
	cfg, err := ParseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "auto" || cfg.Export != "" || cfg.Preview {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if filepath.Base(cfg.StoragePath()) != "storage.json" {
		t.Fatalf("storage path = %q", cfg.StoragePath())
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scrollkit.toml")
	settings := "data_dir = \"/from/file\"\nexport_dir = \"/exports/file\"\ntheme = \"light\"\n"
	if err := os.WriteFile(file, []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCROLLKIT_DATA_DIR", "")
	t.Setenv("SCROLLKIT_EXPORT_DIR", "/exports/env")
	t.Setenv("SCROLLKIT_THEME", "")

	cfg, err := ParseFlags([]string{"-config", file, "-theme", "dark", "-export", "scss"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataDir != "/from/file" {
		t.Errorf("data dir = %q, want value from file", cfg.DataDir)
	}
	if cfg.ExportDir != "/exports/env" {
		t.Errorf("export dir = %q, want env override", cfg.ExportDir)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q, want flag value", cfg.Theme)
	}
	if cfg.Export != "scss" {
		t.Errorf("export = %q", cfg.Export)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Setenv("SCROLLKIT_THEME", "")
	if _, err := ParseFlags([]string{"-theme", "sepia"}, io.Discard); err == nil {
		t.Error("expected invalid theme error")
	}
	if _, err := ParseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard); err == nil {
		t.Error("expected missing settings file error")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("theme = = ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFlags([]string{"-config", bad}, io.Discard); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvDebug(t *testing.T) {
	t.Setenv("SCROLLKIT_DEBUG", "true")
	t.Setenv("SCROLLKIT_THEME", "")
	cfg, err := ParseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Fatal("expected debug from environment")
	}
}
