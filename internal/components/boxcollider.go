package components

import (
	"boxmotion/internal/engine"
	"boxmotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider makes its GameObject a solid box. Transform.Position is the
// box center.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// WorldSize is Size times the object's scale, both clamped to physics.MinSize per axis.
func (b *BoxCollider) WorldSize() rl.Vector3 {
	scale := rl.Vector3{X: 1, Y: 1, Z: 1}
	if g := b.GetGameObject(); g != nil {
		scale = g.Transform.Scale
	}
	return ScaledSize(b.Size, scale)
}

func (b *BoxCollider) GetAABB() physics.AABB {
	var pos rl.Vector3
	if g := b.GetGameObject(); g != nil {
		pos = g.Transform.Position
	}
	center := rl.Vector3Add(pos, b.Offset)
	return physics.NewAABBFromCenter(center, b.WorldSize())
}

// ScaledSize multiplies size by scale per axis after clamping both to
// physics.MinSize, so degenerate boxes still have volume.
func ScaledSize(size, scale rl.Vector3) rl.Vector3 {
	size = physics.ClampSize(size)
	scale = physics.ClampSize(scale)
	return rl.Vector3{X: size.X * scale.X, Y: size.Y * scale.Y, Z: size.Z * scale.Z}
}
