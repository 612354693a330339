package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStretchBegin)
	f.Set(ActionNone)

	if !f.Has(ActionStretchBegin) {
		t.Error("Has(StretchBegin) should be true after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if len(f.Actions) != 1 {
		t.Errorf("expected 1 recorded action, got %d", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionStretchBegin) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionStretchBegin, "StretchBegin"},
		{ActionStretchRelease, "StretchRelease"},
		{ActionStretchToggle, "StretchToggle"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
