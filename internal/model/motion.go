package model

// Motion is a selection movement inside the current line.
type Motion int

const (
	// MotionOut ascends to the parent level.
	MotionOut Motion = iota
	// MotionIn descends into the selected operand.
	MotionIn
	// MotionLeft moves the selection one operand left.
	MotionLeft
	// MotionRight moves the selection one operand right.
	MotionRight
	// MotionExpandLeft grows the range by one operand on the left.
	MotionExpandLeft
	// MotionExpandRight grows the range by one operand on the right.
	MotionExpandRight
	// MotionShrinkLeft drops the leftmost operand of the range.
	MotionShrinkLeft
	// MotionShrinkRight drops the rightmost operand of the range.
	MotionShrinkRight
)

var motionNames = map[Motion]string{
	MotionOut:         "out",
	MotionIn:          "in",
	MotionLeft:        "left",
	MotionRight:       "right",
	MotionExpandLeft:  "expand-left",
	MotionExpandRight: "expand-right",
	MotionShrinkLeft:  "shrink-left",
	MotionShrinkRight: "shrink-right",
}

func (mo Motion) String() string {
	if name, ok := motionNames[mo]; ok {
		return name
	}

	return "unknown"
}

// ParseMotion looks a motion up by its name.
func ParseMotion(name string) (Motion, bool) {
	for mo, n := range motionNames {
		if n == name {
			return mo, true
		}
	}

	return 0, false
}
