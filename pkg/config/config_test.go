package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GlassBricks/TypeScriptToLua/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)
	config.Reset()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Emit.IndentWidth != 4 {
		t.Errorf("expected default indent width 4, got %d", cfg.Emit.IndentWidth)
	}
	if cfg.Emit.BitOpLibrary != "bit" {
		t.Errorf("expected default bit-op library %q, got %q", "bit", cfg.Emit.BitOpLibrary)
	}
}

func TestLoadProjectFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	toml := "[emit]\nbit_op_library = \"bit32\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".tstl.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)
	config.Reset()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Emit.BitOpLibrary != "bit32" {
		t.Errorf("expected project config to override bit-op library to %q, got %q", "bit32", cfg.Emit.BitOpLibrary)
	}
}
