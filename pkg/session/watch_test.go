package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team,Wins\nEagles,14\n"), 0o644))

	changed := make(chan string, 1)
	w, err := NewWatcher(testLogger(), 0, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(path))

	require.NoError(t, os.WriteFile(path, []byte("Team,Wins\nEagles,15\n"), 0o644))

	select {
	case got := <-changed:
		abs, _ := filepath.Abs(path)
		require.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback after write")
	}
}

func TestWatcher_SaveBurstReloadsFinalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team,Wins\nEagles,14\n"), 0o644))

	contents := make(chan string, 8)
	w, err := NewWatcher(testLogger(), 2*time.Second, func(p string) {
		body, err := os.ReadFile(p)
		if err == nil {
			contents <- string(body)
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(path))

	// Editor-style double save inside one holdoff window. The second write
	// must still be re-imported once the window passes, or the session stays
	// on stale data until the file changes again.
	require.NoError(t, os.WriteFile(path, []byte("Team,Wins\nEagles,15\n"), 0o644))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("Team,Wins\nEagles,16\n"), 0o644))

	deadline := time.After(10 * time.Second)
	for {
		select {
		case body := <-contents:
			if strings.Contains(body, "Eagles,16") {
				return
			}
		case <-deadline:
			t.Fatal("final write of the burst was never reloaded")
		}
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team\nEagles\n"), 0o644))

	changed := make(chan string, 1)
	w, err := NewWatcher(testLogger(), 0, func(p string) { changed <- p })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(path))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected callback for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_FollowEmptyStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team\nEagles\n"), 0o644))

	changed := make(chan string, 1)
	w, err := NewWatcher(testLogger(), 0, func(p string) { changed <- p })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Follow(path))
	require.NoError(t, w.Follow(""))

	require.NoError(t, os.WriteFile(path, []byte("Team\nGiants\n"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected callback for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}
