package engine

import "github.com/chewxy/math32"

// FixedTimestep turns variable frame times into a whole number of fixed
// simulation ticks. Leftover time carries over to the next frame.
type FixedTimestep struct {
	Step     float32
	MaxFrame float32

	accumulator float32
}

func NewFixedTimestep(step float32) *FixedTimestep {
	return &FixedTimestep{Step: step, MaxFrame: 0.1}
}

// Advance adds frameDt (clamped to MaxFrame) and calls fn(Step) once per
// whole tick. It returns the number of ticks run.
func (f *FixedTimestep) Advance(frameDt float32, fn func(dt float32)) int {
	// !(x > 0) also rejects NaN.
	if !(f.Step > 0) || !(frameDt > 0) || math32.IsInf(frameDt, 1) {
		return 0
	}
	if f.MaxFrame > 0 && frameDt > f.MaxFrame {
		frameDt = f.MaxFrame
	}

	f.accumulator += frameDt
	ticks := 0
	for f.accumulator >= f.Step {
		fn(f.Step)
		f.accumulator -= f.Step
		ticks++
	}
	return ticks
}

// Alpha is how far the accumulator is into the next tick, in [0,1).
func (f *FixedTimestep) Alpha() float32 {
	if f.Step <= 0 {
		return 0
	}
	return f.accumulator / f.Step
}

func (f *FixedTimestep) Reset() {
	f.accumulator = 0
}
