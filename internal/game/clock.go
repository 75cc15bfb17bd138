package game

// FixedStep turns variable frame times into a whole number of fixed
// simulation steps.
type FixedStep struct {
	Interval float32
	// MaxDelta caps one frame so a stall doesn't trigger a burst of steps.
	MaxDelta float32

	acc float32
}

func NewFixedStep(interval, maxDelta float32) *FixedStep {
	return &FixedStep{Interval: interval, MaxDelta: maxDelta}
}

// Advance adds frameTime and returns how many steps are due.
func (f *FixedStep) Advance(frameTime float32) int {
	if frameTime < 0 {
		frameTime = 0
	}
	if f.MaxDelta > 0 && frameTime > f.MaxDelta {
		frameTime = f.MaxDelta
	}
	f.acc += frameTime

	steps := 0
	for f.acc >= f.Interval {
		f.acc -= f.Interval
		steps++
	}
	return steps
}

// Alpha is the fraction of a step left in the accumulator.
func (f *FixedStep) Alpha() float32 {
	return f.acc / f.Interval
}

func (f *FixedStep) Reset() {
	f.acc = 0
}
