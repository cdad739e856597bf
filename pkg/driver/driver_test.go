package driver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GlassBricks/TypeScriptToLua/pkg/driver"
	"github.com/GlassBricks/TypeScriptToLua/pkg/errors"
	"github.com/GlassBricks/TypeScriptToLua/pkg/transpile"
)

func TestTranspileReturnsRunIDAndOutput(t *testing.T) {
	res, err := driver.Transpile(`let x = 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RunID.String() == "" {
		t.Error("expected a non-empty run id")
	}
	if !strings.Contains(res.Output, "local x = ") {
		t.Errorf("unexpected output: %q", res.Output)
	}
	if res.Bytes != len(res.Output) {
		t.Errorf("byte count %d does not match output length %d", res.Bytes, len(res.Output))
	}
}

func TestTranspilePropagatesTranslationErrorUnwrapped(t *testing.T) {
	_, err := driver.Transpile(`for (let i = 0; i < 1; i++) { continue; }`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*transpile.TranslationError); !ok {
		t.Fatalf("expected *transpile.TranslationError, got %T", err)
	}
}

func TestTranspileFileReadsAndTranspiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.sl")
	if err := os.WriteFile(path, []byte(`let x = 1;`), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	res, err := driver.TranspileFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Output, "local x = 1") {
		t.Errorf("unexpected output: %q", res.Output)
	}
}

func TestTranspileFileMissingIsWrapped(t *testing.T) {
	_, err := driver.TranspileFile(filepath.Join(t.TempDir(), "missing.sl"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errors.ErrSourceNotFound) {
		t.Errorf("expected wrapped ErrSourceNotFound, got %v", err)
	}
}
