package physics

import rl "github.com/gen2brain/raylib-go/raylib"

const DefaultResolveIterations = 6

// penetration is the overlap depth of one box inside another along each
// axis, with the direction (+1/-1) that removes it.
type penetration struct {
	depth [3]float32
	dir   [3]float32
}

func penetrationOf(mover, obstacle AABB) penetration {
	var p penetration
	for axis := 0; axis < 3; axis++ {
		pushPos := component(obstacle.Max, axis) - component(mover.Min, axis)
		pushNeg := component(mover.Max, axis) - component(obstacle.Min, axis)
		if pushPos < pushNeg {
			p.depth[axis] = pushPos
			p.dir[axis] = 1
		} else {
			p.depth[axis] = pushNeg
			p.dir[axis] = -1
		}
	}
	return p
}

// shallowest returns the axis with the least penetration. Ties prefer X, then Y.
func (p penetration) shallowest() int {
	switch {
	case p.depth[0] <= p.depth[1] && p.depth[0] <= p.depth[2]:
		return 0
	case p.depth[1] <= p.depth[0] && p.depth[1] <= p.depth[2]:
		return 1
	default:
		return 2
	}
}

// ResolvePenetration pushes a box out of every static box it overlaps,
// one contact at a time along the least-penetrating axis, for up to
// iterations passes. The velocity component along each corrected axis is
// zeroed. grounded is true if any correction pushed the box up while it
// was not moving upward.
func ResolvePenetration(center, velocity, extents rl.Vector3, world []AABB, iterations int) (rl.Vector3, rl.Vector3, bool) {
	if iterations <= 0 {
		iterations = DefaultResolveIterations
	}

	grounded := false

	for it := 0; it < iterations; it++ {
		box := FromCenterExtents(center, extents)
		overlapped := false

		for i := range world {
			obstacle := world[i]
			if !box.Overlaps(obstacle) {
				continue
			}
			overlapped = true

			pen := penetrationOf(box, obstacle)
			axis := pen.shallowest()

			setComponent(&center, axis, component(center, axis)+pen.dir[axis]*pen.depth[axis])
			if axis == 1 && pen.dir[1] > 0 && velocity.Y <= 0 {
				grounded = true
			}
			setComponent(&velocity, axis, 0)

			box = FromCenterExtents(center, extents)
		}

		if !overlapped {
			break
		}
	}

	return center, velocity, grounded
}
