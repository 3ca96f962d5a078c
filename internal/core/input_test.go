package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should mark the action")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop the action")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestHoldStateExpires(t *testing.T) {
	h := NewHoldState(3)
	h.Press(ActionMoveRight)

	for i := 0; i < 3; i++ {
		if !h.Sample().Has(ActionMoveRight) {
			t.Fatalf("tick %d: MoveRight should still be held", i)
		}
		h.Advance()
	}

	if h.Held(ActionMoveRight) {
		t.Error("MoveRight should be released after the window")
	}
}

func TestHoldStateRepeatRefreshes(t *testing.T) {
	h := NewHoldState(2)
	h.Press(ActionJump)
	h.Advance()
	h.Press(ActionJump)
	h.Advance()

	if !h.Held(ActionJump) {
		t.Error("repeat press should refresh the hold")
	}
}

func TestHoldStateOpposingDirections(t *testing.T) {
	h := NewHoldState(10)
	h.Press(ActionMoveLeft)
	h.Press(ActionMoveRight)

	if h.Held(ActionMoveLeft) {
		t.Error("pressing right should release left")
	}
	if !h.Held(ActionMoveRight) {
		t.Error("right should be held")
	}

	h.Press(ActionJump)
	h.Release(ActionJump)
	if h.Held(ActionJump) {
		t.Error("Release should drop the action")
	}

	h.Reset()
	if len(h.Sample().Actions) != 0 {
		t.Error("Reset should release everything")
	}
}

func TestHoldStateMinimumWindow(t *testing.T) {
	h := NewHoldState(0)
	h.Press(ActionMoveLeft)
	if !h.Held(ActionMoveLeft) {
		t.Error("window should be clamped to one tick")
	}
	h.Advance()
	if h.Held(ActionMoveLeft) {
		t.Error("one-tick hold should expire after a single Advance")
	}
}
