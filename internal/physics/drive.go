package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ObjectDriver pulls a BoxBody toward a target point with a damped spring.
// It only nudges velocity; the body's own Step still handles gravity and
// collision afterwards.
type ObjectDriver struct {
	Stiffness float32 // higher = snappier
	Damping   float32 // higher = less oscillation
	MaxAccel  float32
}

func NewObjectDriver() *ObjectDriver {
	return &ObjectDriver{
		Stiffness: 120,
		Damping:   18,
		MaxAccel:  120,
	}
}

func (d *ObjectDriver) DriveTo(body *BoxBody, target rl.Vector3, dt float32) {
	offset := rl.Vector3Subtract(target, body.Center)
	accel := rl.Vector3Subtract(
		rl.Vector3Scale(offset, d.Stiffness),
		rl.Vector3Scale(body.Velocity, d.Damping),
	)

	if length := rl.Vector3Length(accel); length > d.MaxAccel && length > 1e-6 {
		accel = rl.Vector3Scale(accel, d.MaxAccel/length)
	}

	body.Velocity = rl.Vector3Add(body.Velocity, rl.Vector3Scale(accel, dt))
}
