package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in       string
		expected Action
		wantErr  bool
	}{
		{"left", ActionLeft, false},
		{"HARD_DROP", ActionHardDrop, false},
		{"rotate-ccw", ActionRotateCCW, false},
		{" rotate_180 ", ActionRotate180, false},
		{"jump", ActionNone, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAction(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseAction(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for a := ActionNone; a <= ActionPause; a++ {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v; expected %v", a.String(), got, err, a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() should report only set actions")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}
