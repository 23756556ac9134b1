package physics

import "testing"

func TestObjectDriverAcceleratesTowardTarget(t *testing.T) {
	d := NewObjectDriver()
	body := NewBoxBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))

	d.DriveTo(body, vec(1, 0, 0), 1.0/60)

	// 120 * 1 is exactly at the cap
	if !approx(body.Velocity.X, 2) || body.Velocity.Y != 0 || body.Velocity.Z != 0 {
		t.Errorf("Expected velocity (2,0,0), got %v", body.Velocity)
	}
}

func TestObjectDriverClampsAcceleration(t *testing.T) {
	d := NewObjectDriver()
	body := NewBoxBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))

	d.DriveTo(body, vec(0, 10, 0), 1.0/60)

	if !approx(body.Velocity.Y, d.MaxAccel/60) {
		t.Errorf("Expected clamped velocity %v, got %v", d.MaxAccel/60, body.Velocity.Y)
	}
}

func TestObjectDriverAtTargetIsNoop(t *testing.T) {
	d := NewObjectDriver()
	body := NewBoxBody(vec(1, 2, 3), vec(0.5, 0.5, 0.5))

	d.DriveTo(body, vec(1, 2, 3), 1.0/60)

	if body.Velocity != (vec(0, 0, 0)) {
		t.Errorf("Expected no velocity change, got %v", body.Velocity)
	}
}

func TestObjectDriverSettles(t *testing.T) {
	d := NewObjectDriver()
	body := NewBoxBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))
	body.UseGravity = false
	target := vec(2, 1, -1)

	for i := 0; i < 600; i++ {
		d.DriveTo(body, target, 1.0/60)
		body.Step(1.0/60, nil, 20)
	}

	if !approxVec(body.Center, target) {
		t.Errorf("Expected body to settle at %v, got %v", target, body.Center)
	}
}
