package tui

import (
	"testing"
	"time"
)

func TestSSHSessionRuntime(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.TickInterval = 20 * time.Millisecond
	cfg.Seed = 42
	srv := &SSHServer{config: cfg}

	a, b := srv.runtimeFor(100, 30), srv.runtimeFor(60, 20)
	if a.Seed != 42 || b.Seed != 42 {
		t.Errorf("seeds = %d, %d; want the configured 42 for every session", a.Seed, b.Seed)
	}
	if a.ScreenW != 100 || a.ScreenH != 30 || a.TickInterval != 20*time.Millisecond {
		t.Errorf("runtime = %+v", a)
	}

	srv.config.Seed = 0
	if got := srv.runtimeFor(80, 24).Seed; got == 0 {
		t.Error("unset seed should be drawn from the clock")
	}
}
