package player

import (
	"boxmotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CarryTolerance is how far the feet may be from a platform's top face and
// still ride it. Thin platforms need the generous margin.
const CarryTolerance = 0.18

// PlatformQuery answers whether the player is standing on a moving platform
// and, if so, how far that platform moved this tick.
type PlatformQuery interface {
	GroundDelta(m *Motor) (rl.Vector3, bool)
}

// StandsOn reports whether a player box with vertical velocity vy rests on
// top of platform: feet within CarryTolerance of its top face, footprints
// overlapping on X and Z, and not moving upward.
func StandsOn(bounds physics.AABB, vy float32, platform physics.AABB) bool {
	if vy > 0.001 {
		return false
	}

	feetY := bounds.Min.Y
	topY := platform.Max.Y
	if feetY < topY-CarryTolerance || feetY > topY+CarryTolerance {
		return false
	}

	overlapX := bounds.Max.X >= platform.Min.X && bounds.Min.X <= platform.Max.X
	overlapZ := bounds.Max.Z >= platform.Min.Z && bounds.Min.Z <= platform.Max.Z
	return overlapX && overlapZ
}

// RidePlatform applies platform carry after the motor has stepped. It only
// acts while grounded; the delta is added to the position and the box is
// re-resolved against world.
func (m *Motor) RidePlatform(q PlatformQuery, world []physics.AABB) bool {
	if !m.grounded || q == nil {
		return false
	}
	delta, ok := q.GroundDelta(m)
	if !ok {
		return false
	}
	m.Carry(delta, world)
	return true
}
