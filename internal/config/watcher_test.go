package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLayout(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	writeLayout(t, path, "[[widgets]]\nid = 1\nwidth = 10\nheight = 10\n")

	reloaded := make(chan Layout, 1)
	w, err := NewWatcher(path, func(l Layout) {
		select {
		case reloaded <- l:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeLayout(t, path, "[[widgets]]\nid = 2\nwidth = 10\nheight = 10\n")

	select {
	case l := <-reloaded:
		if len(l.Widgets) != 1 || l.Widgets[0].ID != 2 {
			t.Errorf("reloaded layout = %v, want widget id 2", l.Widgets)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	writeLayout(t, path, "[[widgets]]\nid = 1\n")

	errs := make(chan error, 1)
	w, err := NewWatcher(path,
		func(Layout) { t.Error("reload delivered for a malformed layout") },
		WithDebounce(10*time.Millisecond),
		WithErrorFunc(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeLayout(t, path, "[[widgets]\nnot toml")

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("no error within 5s")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	writeLayout(t, path, "[[widgets]]\nid = 1\nwidth = 10\nheight = 10\n")

	reloaded := make(chan Layout, 1)
	w, err := NewWatcher(path, func(l Layout) {
		reloaded <- l
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeLayout(t, filepath.Join(dir, "other.toml"), "[[widgets]]\nid = 9\n")

	select {
	case <-reloaded:
		t.Error("reload triggered by a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	writeLayout(t, path, "[[widgets]]\nid = 1\nwidth = 10\nheight = 10\n")

	w, err := NewWatcher(path, func(Layout) {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Double close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
