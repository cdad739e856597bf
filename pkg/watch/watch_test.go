package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GlassBricks/TypeScriptToLua/pkg/watch"
)

func TestWatcherDebouncesBurstIntoOneCallback(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.ts")
	if err := os.WriteFile(target, []byte("let x = 1;"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	calls := make(chan string, 10)
	w, err := watch.New(dir, ".ts", 50*time.Millisecond, func(path string) {
		calls <- path
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Stop()

	go w.Run()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("let x = 2;"), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case path := <-calls:
		if path != target {
			t.Errorf("expected callback for %s, got %s", target, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced callback")
	}
}

func TestWatcherIgnoresOtherSuffixes(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "readme.md")
	if err := os.WriteFile(target, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	calls := make(chan string, 10)
	w, err := watch.New(dir, ".ts", 20*time.Millisecond, func(path string) {
		calls <- path
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Stop()

	go w.Run()

	if err := os.WriteFile(target, []byte("hello again"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case path := <-calls:
		t.Errorf("unexpected callback for %s", path)
	case <-time.After(200 * time.Millisecond):
	}
}
