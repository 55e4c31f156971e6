package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionKick) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionKick)
	if !f.Has(ActionKick) {
		t.Error("Has(ActionKick) should be true after Set")
	}
	if f.Has(ActionStart) {
		t.Error("Has(ActionStart) should be false")
	}
}

func TestInputFrameClicksAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Click(3, 4)
	f.Click(5, 6)
	f.Set(ActionQuit)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Errorf("Clear should empty the frame, got %+v", f)
	}
	if len(clone.Clicks) != 2 || clone.Clicks[1] != (Point{X: 5, Y: 6}) {
		t.Errorf("Clone should keep clicks, got %v", clone.Clicks)
	}
	if !clone.Has(ActionQuit) {
		t.Error("Clone should keep actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionKick:  "Kick",
		ActionStart: "Start",
		ActionBack:  "Back",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
