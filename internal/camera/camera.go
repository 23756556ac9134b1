package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PitchLimit keeps the view just short of straight up or down.
const PitchLimit = 1.55334

// FPSCamera is a first-person view orientation in radians. Yaw 0 faces +Z.
type FPSCamera struct {
	Yaw         float32
	Pitch       float32
	Sensitivity float32 // radians per unit of look delta
}

func New(yawDeg float32) *FPSCamera {
	return &FPSCamera{
		Yaw:         yawDeg * math32.Pi / 180,
		Sensitivity: 0.0025,
	}
}

// AddLook turns the view by a mouse or stick delta.
func (c *FPSCamera) AddLook(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	c.Pitch = max(-PitchLimit, min(PitchLimit, c.Pitch))
	c.Yaw = wrapAngle(c.Yaw)
}

func (c *FPSCamera) Forward() rl.Vector3 {
	cp, sp := math32.Cos(c.Pitch), math32.Sin(c.Pitch)
	cy, sy := math32.Cos(c.Yaw), math32.Sin(c.Yaw)
	return rl.Vector3Normalize(rl.Vector3{X: sy * cp, Y: sp, Z: cy * cp})
}

func (c *FPSCamera) Right() rl.Vector3 {
	return rl.Vector3Negate(rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3{Y: 1}, c.Forward())))
}

// WishDir maps move axes (forward, right in [-1,1]) onto the ground plane.
// The result is normalized, or zero when there is no input.
func (c *FPSCamera) WishDir(forward, right float32) rl.Vector3 {
	if lenSq := forward*forward + right*right; lenSq > 1 {
		n := math32.Sqrt(lenSq)
		forward /= n
		right /= n
	}

	f := flatten(c.Forward())
	r := flatten(c.Right())

	wish := rl.Vector3Add(rl.Vector3Scale(f, forward), rl.Vector3Scale(r, right))
	if rl.Vector3LengthSqr(wish) <= 0.0001 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(wish)
}

func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	if rl.Vector3LengthSqr(v) == 0 {
		return v
	}
	return rl.Vector3Normalize(v)
}

// wrapAngle maps a to (-pi, pi].
func wrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a <= -math32.Pi {
		a += 2 * math32.Pi
	} else if a > math32.Pi {
		a -= 2 * math32.Pi
	}
	return a
}
