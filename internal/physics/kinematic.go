package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// KinematicBody is a box that integrates its own velocity and slides along
// static geometry with MoveAABB. Used for held or animated objects.
type KinematicBody struct {
	Center   rl.Vector3
	Extents  rl.Vector3
	Velocity rl.Vector3

	UseGravity bool

	Gravity       float32 // positive = down
	LinearDamping float32 // air drag per second, 0 disables
	Skin          float32

	Restitution       float32 // 0 = stop dead on impact, 1 = perfect bounce
	GroundFriction    float32 // lateral speed lost per second while grounded
	GroundSnapEpsilon float32

	grounded       bool
	lastCollisions CollisionFlags
}

func NewKinematicBody(center, extents rl.Vector3) *KinematicBody {
	return &KinematicBody{
		Center:            center,
		Extents:           extents,
		UseGravity:        true,
		Gravity:           20,
		Skin:              DefaultSkin,
		GroundFriction:    8,
		GroundSnapEpsilon: 0.02,
	}
}

func (k *KinematicBody) Grounded() bool {
	return k.grounded
}

func (k *KinematicBody) LastCollisions() CollisionFlags {
	return k.lastCollisions
}

func (k *KinematicBody) AABB() AABB {
	return FromCenterExtents(k.Center, k.Extents)
}

// Step integrates forces, moves against world and reacts to whatever was hit.
func (k *KinematicBody) Step(dt float32, world []AABB) {
	k.grounded = false

	if k.UseGravity {
		k.Velocity.Y -= k.Gravity * dt
	}

	if k.LinearDamping > 0 {
		k.Velocity = rl.Vector3Scale(k.Velocity, math32.Max(0, 1-k.LinearDamping*dt))
	}

	delta := rl.Vector3Scale(k.Velocity, dt)
	center, flags := MoveAABB(k.Center, k.Extents, delta, world, k.Skin, DefaultMaxPassesPerAxis)

	if flags.Has(HitX) {
		k.Velocity.X = bounce(k.Velocity.X, k.Restitution)
	}
	if flags.Has(HitZ) {
		k.Velocity.Z = bounce(k.Velocity.Z, k.Restitution)
	}
	if flags.Has(HitY) {
		if k.Velocity.Y <= 0 {
			k.grounded = true
		}
		k.Velocity.Y = bounce(k.Velocity.Y, k.Restitution)
	}

	k.Center = center
	k.lastCollisions = flags

	if !k.grounded && k.Velocity.Y <= 0 && k.GroundSnapEpsilon > 0 {
		k.grounded = k.touchingGround(world)
	}

	if k.grounded && k.GroundFriction > 0 {
		k.Velocity = applyLinearDrag(k.Velocity, k.GroundFriction*dt)
	}
}

// touchingGround probes GroundSnapEpsilon below the box for support.
func (k *KinematicBody) touchingGround(world []AABB) bool {
	probe := k.AABB()
	probe.Min.Y -= k.GroundSnapEpsilon
	probe.Max.Y = probe.Min.Y + k.GroundSnapEpsilon
	for i := range world {
		if probe.Overlaps(world[i]) {
			return true
		}
	}
	return false
}

func bounce(v, restitution float32) float32 {
	if restitution <= 0 {
		return 0
	}
	return -v * restitution
}

// applyLinearDrag removes drop units of lateral (XZ) speed, never reversing
// direction. Lateral speed below 0.0001 is cleared.
func applyLinearDrag(v rl.Vector3, drop float32) rl.Vector3 {
	speed := math32.Sqrt(v.X*v.X + v.Z*v.Z)
	if speed <= 0.0001 {
		return rl.Vector3{Y: v.Y}
	}
	scale := math32.Max(0, speed-drop) / speed
	return rl.Vector3{X: v.X * scale, Y: v.Y, Z: v.Z * scale}
}
