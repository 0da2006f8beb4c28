package ledger

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		base, player, want string
	}{
		{"bestScore", "", "bestScore"},
		{"bestScore", "local", "bestScore"},
		{"bestScore", "alice", "bestScore/alice"},
		{"", "bob", "bestScore/bob"},
		{"custom", "", "custom"},
		{"bestScore", RemotePlayer("local"), "bestScore/ssh:local"},
		{"bestScore", RemotePlayer("alice"), "bestScore/ssh:alice"},
	}
	for _, tt := range tests {
		if got := KeyFor(tt.base, tt.player); got != tt.want {
			t.Errorf("KeyFor(%q, %q) = %q, want %q", tt.base, tt.player, got, tt.want)
		}
	}
}

func TestRemoteLocalUserKeepsOwnBest(t *testing.T) {
	store := openStore(t)

	local := New(store, DefaultKey, LocalPlayer, nil)
	local.Save(30)
	local.Close()

	remote := New(store, DefaultKey, RemotePlayer(LocalPlayer), nil)
	if best, ok := remote.Load(); ok {
		t.Errorf("remote user %q sees the local best %d", LocalPlayer, best)
	}
	remote.Save(4)
	remote.Record(4)
	remote.Close()

	if best, _, _ := store.BestScore(DefaultKey); best != 30 {
		t.Errorf("local best = %d, want 30", best)
	}
	if scores, _ := store.TopScores(LocalPlayer, 10); len(scores) != 0 {
		t.Errorf("remote session leaked into local history: %v", scores)
	}
}

func TestLoadAbsent(t *testing.T) {
	l := New(openStore(t), DefaultKey, "", nil)
	defer l.Close()

	if best, ok := l.Load(); ok || best != 0 {
		t.Errorf("Load() = %d, %v; want 0, false", best, ok)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := openStore(t)

	l := New(store, DefaultKey, "", nil)
	l.Save(12)
	l.Save(12)
	l.Save(15)
	l.Close()

	reopened := New(store, DefaultKey, "", nil)
	defer reopened.Close()
	if best, ok := reopened.Load(); !ok || best != 15 {
		t.Errorf("Load() = %d, %v; want 15, true", best, ok)
	}
}

func TestReset(t *testing.T) {
	store := openStore(t)

	l := New(store, DefaultKey, "", nil)
	l.Save(9)
	l.Reset()
	l.Close()

	if _, ok, err := store.BestScore(DefaultKey); err != nil || ok {
		t.Errorf("best score should be cleared (ok=%v, err=%v)", ok, err)
	}
}

func TestPlayersAreIsolated(t *testing.T) {
	store := openStore(t)

	alice := New(store, DefaultKey, "alice", nil)
	bob := New(store, DefaultKey, "bob", nil)
	alice.Save(30)
	alice.Record(30)
	bob.Save(4)
	alice.Close()
	bob.Close()

	if v, _, _ := store.BestScore("bestScore/alice"); v != 30 {
		t.Errorf("alice best = %d, want 30", v)
	}
	if v, _, _ := store.BestScore("bestScore/bob"); v != 4 {
		t.Errorf("bob best = %d, want 4", v)
	}
	if _, ok, _ := store.BestScore(DefaultKey); ok {
		t.Error("local best should be untouched")
	}

	history, err := store.TopScores("alice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(history) != 1 || history[0].Score != 30 {
		t.Errorf("alice history = %v", history)
	}
}

func TestNilStore(t *testing.T) {
	l := New(nil, DefaultKey, "", nil)
	l.Save(3)
	l.Record(3)
	l.Reset()
	if _, ok := l.Load(); ok {
		t.Error("nil store should never report a best score")
	}
	l.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	l := New(openStore(t), DefaultKey, "", nil)
	l.Close()
	l.Close()

	// Writes after close are dropped, not panics.
	l.Save(1)
}
