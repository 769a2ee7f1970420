package dictionary

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("li A\n"), 0644))

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func() {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("li A\nlon B\n"), 0644))

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("reload callback never fired")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("li A\n"), 0644))

	reloaded := make(chan struct{}, 8)
	w, err := NewWatcher(path, 150*time.Millisecond, func() {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("li A\nlon B\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("reload callback never fired")
	}

	// the burst settled, no second reload should follow
	select {
	case <-reloaded:
		t.Error("burst of writes triggered more than one reload")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("li A\n"), 0644))

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func() {
		reloaded <- struct{}{}
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0644))

	select {
	case <-reloaded:
		t.Error("write to a sibling file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
