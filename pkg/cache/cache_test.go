package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/GlassBricks/TypeScriptToLua/pkg/cache"
)

func TestTranspileMissesThenHits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	c, err := cache.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	src := `let x = 1 + 2;`

	res1, hit1, err := c.Transpile(src, 1)
	if err != nil {
		t.Fatalf("first transpile: %v", err)
	}
	if hit1 {
		t.Error("expected a miss on first call")
	}

	res2, hit2, err := c.Transpile(src, 2)
	if err != nil {
		t.Fatalf("second transpile: %v", err)
	}
	if !hit2 {
		t.Error("expected a hit on second call")
	}
	if res1.Output != res2.Output {
		t.Errorf("cached output %q does not match original %q", res2.Output, res1.Output)
	}
}

func TestTranspilePropagatesTranslationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	c, err := cache.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	_, _, err = c.Transpile(`for (let i = 0; i < 1; i++) { continue; }`, 1)
	if err == nil {
		t.Fatal("expected an error")
	}
}
