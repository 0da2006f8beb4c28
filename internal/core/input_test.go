package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	var f InputFrame
	if len(f.Actions()) != 0 {
		t.Error("zero frame should have no actions")
	}

	f.Push(ActionJump)
	f.Push(ActionPause)
	f.Push(ActionPause)
	want := []Action{ActionJump, ActionPause, ActionPause}
	if !slices.Equal(f.Actions(), want) {
		t.Errorf("Actions() = %v, want %v", f.Actions(), want)
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Errorf("Clear left %v", f.Actions())
	}
	f.Push(ActionRestart)
	if !slices.Equal(f.Actions(), []Action{ActionRestart}) {
		t.Errorf("after reuse Actions() = %v", f.Actions())
	}
}

func TestNewInputFrameCopiesActions(t *testing.T) {
	src := []Action{ActionConfirm, ActionJump}
	f := NewInputFrame(src...)
	src[0] = ActionQuit
	if f.Actions()[0] != ActionConfirm {
		t.Error("frame should not share the caller's slice")
	}
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state SessionState
		want  string
	}{
		{StateIdle, "Idle"},
		{StateRunning, "Running"},
		{StatePaused, "Paused"},
		{StateOver, "Over"},
		{SessionState(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}
