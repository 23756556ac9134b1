package engine

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestFixedTimestepWholeTicks(t *testing.T) {
	// Binary-exact step so accumulation is free of rounding.
	ts := NewFixedTimestep(1.0 / 64)

	var got []float32
	ticks := ts.Advance(3.0/64, func(dt float32) { got = append(got, dt) })

	if ticks != 3 || len(got) != 3 {
		t.Fatalf("Expected 3 ticks, got %d (%d calls)", ticks, len(got))
	}
	for _, dt := range got {
		if dt != 1.0/64 {
			t.Errorf("Expected fixed dt, got %v", dt)
		}
	}
}

func TestFixedTimestepCarriesRemainder(t *testing.T) {
	ts := NewFixedTimestep(1.0 / 64)
	noop := func(float32) {}

	if n := ts.Advance(1.0/128, noop); n != 0 {
		t.Errorf("Half a tick should not run, got %d", n)
	}
	if ts.Alpha() != 0.5 {
		t.Errorf("Expected alpha 0.5, got %v", ts.Alpha())
	}
	if n := ts.Advance(1.0/128, noop); n != 1 {
		t.Errorf("Remainder should complete a tick, got %d", n)
	}
}

func TestFixedTimestepClampsLongFrames(t *testing.T) {
	ts := NewFixedTimestep(1.0 / 64)
	ts.MaxFrame = 0.125

	if n := ts.Advance(5, func(float32) {}); n != 8 {
		t.Errorf("Expected long frame clamped to 8 ticks, got %d", n)
	}
}

func TestFixedTimestepIgnoresNonFiniteFrames(t *testing.T) {
	ts := NewFixedTimestep(1.0 / 64)
	ts.MaxFrame = 0
	called := false
	fn := func(float32) { called = true }

	ts.Advance(math32.NaN(), fn)
	ts.Advance(math32.Inf(1), fn)
	if called {
		t.Error("No tick should run for NaN or infinite frames")
	}

	if n := ts.Advance(1.0/32, fn); n != 2 {
		t.Errorf("Expected 2 ticks after non-finite frames, got %d", n)
	}
}

func TestFixedTimestepIgnoresBadInput(t *testing.T) {
	ts := NewFixedTimestep(1.0 / 64)
	called := false
	fn := func(float32) { called = true }

	ts.Advance(0, fn)
	ts.Advance(-1, fn)
	(&FixedTimestep{}).Advance(1, fn)

	if called {
		t.Error("No tick should run for zero or negative input")
	}

	ts.Advance(1.0/128, fn)
	ts.Reset()
	if ts.Alpha() != 0 {
		t.Errorf("Reset should clear the accumulator, alpha=%v", ts.Alpha())
	}
}
