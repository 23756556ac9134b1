package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// MinSize is the smallest size or scale component a runtime box is built with.
// Zero-size boxes break the overlap and slab math.
const MinSize = 0.01

// AABB is an axis-aligned box. Min <= Max on every axis.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func NewAABB(min, max rl.Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// FromCenterExtents creates an AABB from a center point and half-size.
func FromCenterExtents(center, extents rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, extents),
		Max: rl.Vector3Add(center, extents),
	}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	return FromCenterExtents(center, rl.Vector3Scale(size, 0.5))
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Extents returns the half-size of the box.
func (a AABB) Extents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

// Overlaps reports whether the boxes intersect on all three axes.
// Touching faces count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// BoundingBox converts to the raylib type used by draw calls.
func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(a.Min, a.Max)
}

// ClampSize raises every component of v to at least MinSize.
func ClampSize(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: max(v.X, MinSize),
		Y: max(v.Y, MinSize),
		Z: max(v.Z, MinSize),
	}
}

// axis helpers: 0=X, 1=Y, 2=Z

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *rl.Vector3, axis int, value float32) {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
