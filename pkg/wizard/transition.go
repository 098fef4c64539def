package wizard

// Direction of a step change.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
	DirectionNone     Direction = "none"
)

// slideOffset is the horizontal distance a page travels when entering or leaving.
const slideOffset = 100

// Frame is one keyframe of a page transition.
type Frame struct {
	X       float64 `json:"x"`
	Opacity float64 `json:"opacity"`
}

// Animation tells a client how to move from one step to another.
// New pages enter from the right, leave to the left, and settle at x=0.
type Animation struct {
	Direction Direction `json:"direction"`
	From      int       `json:"from"`
	To        int       `json:"to"`
	Initial   Frame     `json:"initial"`
	Animate   Frame     `json:"animate"`
	Exit      Frame     `json:"exit"`
}

// Present describes the transition between step from and step to.
// Backward moves mirror the offsets so the previous page returns from the left.
func Present(from, to int) Animation {
	a := Animation{
		From:    from,
		To:      to,
		Initial: Frame{X: slideOffset, Opacity: 0},
		Animate: Frame{X: 0, Opacity: 1},
		Exit:    Frame{X: -slideOffset, Opacity: 0},
	}
	switch {
	case to > from:
		a.Direction = DirectionForward
	case to < from:
		a.Direction = DirectionBackward
		a.Initial.X, a.Exit.X = -slideOffset, slideOffset
	default:
		a.Direction = DirectionNone
		a.Initial = a.Animate
		a.Exit = a.Animate
	}
	return a
}
