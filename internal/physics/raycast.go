package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Index    int // position of the hit box in the queried slice
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

const parallelEpsilon = 1e-8

// RaycastAABBs returns the closest box hit by the ray within maxDistance.
func RaycastAABBs(origin, direction rl.Vector3, maxDistance float32, boxes []AABB) (RaycastHit, bool) {
	if rl.Vector3LengthSqr(direction) < parallelEpsilon {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	closest := RaycastHit{Index: -1, Distance: maxDistance}
	hit := false

	for i := range boxes {
		t, ok := RayIntersectsAABB(origin, direction, boxes[i])
		if !ok || t > closest.Distance {
			continue
		}
		point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		closest = RaycastHit{
			Index:    i,
			Point:    point,
			Normal:   faceNormal(point, boxes[i]),
			Distance: t,
		}
		hit = true
	}

	return closest, hit
}

// RayIntersectsAABB is a slab test. direction must be normalized. A ray
// starting inside the box reports the exit distance.
func RayIntersectsAABB(origin, direction rl.Vector3, box AABB) (float32, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for axis := 0; axis < 3; axis++ {
		ro := component(origin, axis)
		rd := component(direction, axis)
		lo := component(box.Min, axis)
		hi := component(box.Max, axis)

		if math32.Abs(rd) < parallelEpsilon {
			if ro < lo || ro > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - ro) / rd
		t2 := (hi - ro) / rd
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}

// faceNormal picks the face of box that point lies on.
func faceNormal(point rl.Vector3, box AABB) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case math32.Abs(point.X-box.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case math32.Abs(point.X-box.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case math32.Abs(point.Y-box.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case math32.Abs(point.Y-box.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case math32.Abs(point.Z-box.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}
