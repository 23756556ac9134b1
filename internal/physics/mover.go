package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// CollisionFlags records which axes were blocked during a move.
type CollisionFlags uint8

const (
	HitX CollisionFlags = 1 << iota
	HitY
	HitZ

	HitNone CollisionFlags = 0
	HitAny                 = HitX | HitY | HitZ
)

func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

func (f CollisionFlags) String() string {
	if f == HitNone {
		return "none"
	}
	s := ""
	for i, name := range [...]string{"X", "Y", "Z"} {
		if f&(1<<i) != 0 {
			s += name
		}
	}
	return s
}

const (
	DefaultSkin             = 0.001
	DefaultMaxPassesPerAxis = 3
)

var axisFlags = [3]CollisionFlags{HitX, HitY, HitZ}

// MoveAABB moves a box by delta against static world boxes, one axis at a time
// (X, then Y, then Z). After each axis step the box is snapped flush against
// whatever it overlaps, offset by skin, so motion on the other axes slides.
// This is a discrete move-then-push-out scheme, not a swept test.
func MoveAABB(center, extents, delta rl.Vector3, world []AABB, skin float32, maxPassesPerAxis int) (rl.Vector3, CollisionFlags) {
	if maxPassesPerAxis <= 0 {
		maxPassesPerAxis = DefaultMaxPassesPerAxis
	}

	c := center
	flags := HitNone

	for axis := 0; axis < 3; axis++ {
		d := component(delta, axis)
		if d == 0 {
			continue
		}
		setComponent(&c, axis, component(c, axis)+d)

		sign := float32(1)
		if d < 0 {
			sign = -1
		}
		if resolveAxis(&c, extents, world, axis, sign, skin, maxPassesPerAxis) {
			flags |= axisFlags[axis]
		}
	}

	return c, flags
}

// resolveAxis snaps center out of every overlapped box along a single axis.
// Returns true if anything was hit.
func resolveAxis(center *rl.Vector3, extents rl.Vector3, world []AABB, axis int, moveSign, skin float32, maxPasses int) bool {
	hit := false
	ext := component(extents, axis)

	// Extra passes settle hitting two boxes on the same axis in one tick
	for pass := 0; pass < maxPasses; pass++ {
		anyOverlap := false
		box := FromCenterExtents(*center, extents)

		for i := range world {
			obstacle := world[i]
			if !box.Overlaps(obstacle) {
				continue
			}

			if moveSign > 0 {
				setComponent(center, axis, component(obstacle.Min, axis)-ext-skin)
			} else {
				setComponent(center, axis, component(obstacle.Max, axis)+ext+skin)
			}

			hit = true
			anyOverlap = true
			box = FromCenterExtents(*center, extents)
		}

		if !anyOverlap {
			break
		}
	}

	return hit
}
