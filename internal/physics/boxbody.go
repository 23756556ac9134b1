package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// BoxBody is a dynamic prop: gravity plus penetration resolution against
// static boxes. Bodies never collide with each other.
type BoxBody struct {
	Center      rl.Vector3
	HalfExtents rl.Vector3
	Velocity    rl.Vector3

	Mass        float32
	UseGravity  bool
	IsKinematic bool
}

func NewBoxBody(center, halfExtents rl.Vector3) *BoxBody {
	return &BoxBody{
		Center:      center,
		HalfExtents: halfExtents,
		Mass:        10,
		UseGravity:  true,
	}
}

func (b *BoxBody) AABB() AABB {
	return FromCenterExtents(b.Center, b.HalfExtents)
}

// Step applies gravity (gravityY is positive = down), integrates and
// resolves against world.
func (b *BoxBody) Step(dt float32, world []AABB, gravityY float32) {
	if dt <= 0 {
		return
	}

	if b.UseGravity && !b.IsKinematic {
		b.Velocity.Y -= gravityY * dt
	}

	b.Center = rl.Vector3Add(b.Center, rl.Vector3Scale(b.Velocity, dt))

	b.Center, b.Velocity, _ = ResolvePenetration(b.Center, b.Velocity, b.HalfExtents, world, DefaultResolveIterations)
}
