package discovery

// Gesture translates pointer motion into a discrete swipe decision. It is a
// plain state machine with no side effects; the session feeds it events and
// acts on the decisions it emits.

type GestureState string

const (
	GestureIdle     GestureState = "idle"
	GestureDragging GestureState = "dragging"
	GestureDeciding GestureState = "deciding"
	GestureSettled  GestureState = "settled"
)

type Decision string

const (
	DecisionNone Decision = ""
	DecisionLike Decision = "like"
	DecisionPass Decision = "pass"
)

type Gesture struct {
	state     GestureState
	startX    float64
	offsetX   float64
	threshold float64
}

// NewGesture returns an idle machine. threshold is the horizontal distance
// in px a drag must exceed (strictly) to count as a decision.
func NewGesture(threshold float64) *Gesture {
	return &Gesture{state: GestureIdle, threshold: threshold}
}

func (g *Gesture) State() GestureState { return g.state }
func (g *Gesture) OffsetX() float64    { return g.offsetX }

// InFlight reports whether a decision has been made but not yet settled
// back to idle; new input is ignored during this window.
func (g *Gesture) InFlight() bool {
	return g.state == GestureDeciding || g.state == GestureSettled
}

func (g *Gesture) PointerDown(x float64) {
	if g.state != GestureIdle {
		return
	}
	g.state = GestureDragging
	g.startX = x
	g.offsetX = 0
}

func (g *Gesture) PointerMove(x float64) {
	if g.state != GestureDragging {
		return
	}
	g.offsetX = x - g.startX
}

// PointerUp resolves the drag. An offset strictly beyond the threshold in
// either direction yields a decision; anything else snaps back to idle with
// the offset reset to zero.
func (g *Gesture) PointerUp() Decision {
	if g.state != GestureDragging {
		return DecisionNone
	}
	switch {
	case g.offsetX > g.threshold:
		g.state = GestureDeciding
		return DecisionLike
	case g.offsetX < -g.threshold:
		g.state = GestureDeciding
		return DecisionPass
	default:
		g.state = GestureIdle
		g.offsetX = 0
		return DecisionNone
	}
}

// Keyboard maps arrow keys to decisions, bypassing the drag states. Ignored
// while a previous decision is still in flight.
func (g *Gesture) Keyboard(key string) Decision {
	if g.InFlight() {
		return DecisionNone
	}
	switch key {
	case "ArrowRight":
		g.state = GestureDeciding
		return DecisionLike
	case "ArrowLeft":
		g.state = GestureDeciding
		return DecisionPass
	default:
		return DecisionNone
	}
}

// Settle marks the emitted decision as consumed.
func (g *Gesture) Settle() {
	if g.state == GestureDeciding {
		g.state = GestureSettled
	}
}

// Reset returns to idle, ready for the next candidate. The client holds the
// card in the settled state for its animation window before calling this.
func (g *Gesture) Reset() {
	g.state = GestureIdle
	g.startX = 0
	g.offsetX = 0
}
