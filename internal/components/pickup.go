package components

import (
	"boxmotion/internal/engine"
	"boxmotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pickup is a box the player can grab. It owns a dynamic BoxBody that is
// stepped by the world, not by Update, and mirrors the body's center back
// into the transform.
type Pickup struct {
	engine.BaseComponent
	Body *physics.BoxBody
}

// NewPickup builds a pickup for a box of the given world size. mass <= 0
// keeps the body's default.
func NewPickup(size rl.Vector3, mass float32) *Pickup {
	body := physics.NewBoxBody(rl.Vector3{}, rl.Vector3Scale(physics.ClampSize(size), 0.5))
	if mass > 0 {
		body.Mass = mass
	}
	return &Pickup{Body: body}
}

func (p *Pickup) Start() {
	if g := p.GetGameObject(); g != nil {
		p.Body.Center = g.Transform.Position
	}
}

// Step advances the body against static boxes and copies the result to
// the transform.
func (p *Pickup) Step(dt float32, world []physics.AABB, gravityY float32) {
	p.Body.Step(dt, world, gravityY)
	if g := p.GetGameObject(); g != nil {
		g.Transform.Position = p.Body.Center
	}
}

func (p *Pickup) GetAABB() physics.AABB {
	return p.Body.AABB()
}
