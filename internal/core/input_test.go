package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionShoot)
	if f.Empty() {
		t.Error("frame with actions reported empty")
	}
	if !f.Has(ActionJump) || !f.Has(ActionShoot) || f.Has(ActionLeft) {
		t.Errorf("unexpected actions %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions behind")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionToggleDefense, "ToggleDefense"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.expected {
			t.Errorf("%d.String() = %q, expected %q", tt.a, got, tt.expected)
		}
	}
}
