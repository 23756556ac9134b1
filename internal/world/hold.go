package world

import (
	"log"

	"boxmotion/internal/components"
	"boxmotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TryPickUp grabs the nearest pickup along the ray within Reach, unless a
// static box is in the way. It does nothing while a prop is already held.
func (w *World) TryPickUp(origin, dir rl.Vector3) bool {
	if w.held != nil || len(w.pickups) == 0 {
		return false
	}

	boxes := make([]physics.AABB, len(w.pickups))
	for i, pk := range w.pickups {
		boxes[i] = pk.GetAABB()
	}

	hit, ok := physics.RaycastAABBs(origin, dir, w.Reach, boxes)
	if !ok {
		return false
	}
	if wall, blocked := physics.RaycastAABBs(origin, dir, hit.Distance, w.colliders); blocked && wall.Distance < hit.Distance {
		return false
	}

	w.held = w.pickups[hit.Index]
	w.held.Body.UseGravity = false
	w.look = rl.Vector3Normalize(dir)
	log.Printf("World: picked up '%s' at distance %.2f", pickupName(w.held), hit.Distance)
	return true
}

// Drop releases the held prop, if any. It keeps its current velocity.
func (w *World) Drop() {
	if w.held == nil {
		return
	}
	w.held.Body.UseGravity = true
	log.Printf("World: dropped '%s'", pickupName(w.held))
	w.held = nil
}

func (w *World) Held() *components.Pickup {
	return w.held
}

func (w *World) holdTarget() rl.Vector3 {
	return rl.Vector3Add(w.EyePosition(), rl.Vector3Scale(w.look, w.HoldDistance))
}

func pickupName(p *components.Pickup) string {
	if g := p.GetGameObject(); g != nil {
		return g.Name
	}
	return "?"
}
