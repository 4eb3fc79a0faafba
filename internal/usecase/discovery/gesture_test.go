package discovery

import "testing"

func drag(g *Gesture, from, to float64) Decision {
	g.PointerDown(from)
	g.PointerMove(to)
	return g.PointerUp()
}

func TestGestureThreshold(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   Decision
	}{
		{"just under threshold snaps back", 99, DecisionNone},
		{"exactly at threshold snaps back", 100, DecisionNone},
		{"just past threshold likes", 101, DecisionLike},
		{"just under negative threshold snaps back", -99, DecisionNone},
		{"exactly at negative threshold snaps back", -100, DecisionNone},
		{"just past negative threshold passes", -101, DecisionPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGesture(100)
			got := drag(g, 0, tt.offset)
			if got != tt.want {
				t.Errorf("offset %v: got %q, want %q", tt.offset, got, tt.want)
			}

			if tt.want == DecisionNone {
				if g.State() != GestureIdle {
					t.Errorf("snap back should return to idle, got %q", g.State())
				}
				if g.OffsetX() != 0 {
					t.Errorf("snap back should zero the offset, got %v", g.OffsetX())
				}
			} else if g.State() != GestureDeciding {
				t.Errorf("decision should leave machine deciding, got %q", g.State())
			}
		})
	}
}

func TestGestureOffsetIsRelativeToStart(t *testing.T) {
	g := NewGesture(100)
	if got := drag(g, 500, 650); got != DecisionLike {
		t.Errorf("got %q, want like", got)
	}
}

func TestGestureIgnoresMoveWithoutDown(t *testing.T) {
	g := NewGesture(100)
	g.PointerMove(300)
	if g.State() != GestureIdle || g.OffsetX() != 0 {
		t.Errorf("move without down changed state: %q offset %v", g.State(), g.OffsetX())
	}
	if got := g.PointerUp(); got != DecisionNone {
		t.Errorf("up without drag: got %q, want none", got)
	}
}

func TestGestureIgnoresDownWhileInFlight(t *testing.T) {
	g := NewGesture(100)
	drag(g, 0, 150)

	g.PointerDown(0)
	if g.State() != GestureDeciding {
		t.Errorf("down during deciding changed state to %q", g.State())
	}
}

func TestGestureKeyboard(t *testing.T) {
	g := NewGesture(100)

	if got := g.Keyboard("ArrowRight"); got != DecisionLike {
		t.Errorf("ArrowRight: got %q, want like", got)
	}

	// A second key press while the first decision is in flight is dropped.
	if got := g.Keyboard("ArrowLeft"); got != DecisionNone {
		t.Errorf("key while in flight: got %q, want none", got)
	}

	g.Settle()
	if g.State() != GestureSettled {
		t.Errorf("settle: got %q", g.State())
	}
	g.Reset()

	if got := g.Keyboard("ArrowLeft"); got != DecisionPass {
		t.Errorf("ArrowLeft after reset: got %q, want pass", got)
	}
}

func TestGestureKeyboardIgnoresOtherKeys(t *testing.T) {
	g := NewGesture(100)
	for _, key := range []string{"Enter", "ArrowUp", "Space", ""} {
		if got := g.Keyboard(key); got != DecisionNone {
			t.Errorf("key %q: got %q, want none", key, got)
		}
	}
	if g.State() != GestureIdle {
		t.Errorf("state changed to %q", g.State())
	}
}

func TestGestureSettleReset(t *testing.T) {
	g := NewGesture(100)
	drag(g, 0, 200)

	g.Settle()
	if !g.InFlight() {
		t.Error("settled machine should still be in flight")
	}

	g.Reset()
	if g.State() != GestureIdle || g.OffsetX() != 0 {
		t.Errorf("reset: state %q offset %v", g.State(), g.OffsetX())
	}

	// Machine is reusable after reset.
	if got := drag(g, 0, -150); got != DecisionPass {
		t.Errorf("after reset: got %q, want pass", got)
	}
}
