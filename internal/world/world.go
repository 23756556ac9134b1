package world

import (
	"boxmotion/internal/components"
	"boxmotion/internal/engine"
	"boxmotion/internal/physics"
	"boxmotion/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultReach        = 2.5
	DefaultHoldDistance = 2.0
)

// Input is one fixed tick's worth of player intent.
type Input struct {
	WishDir   rl.Vector3 // normalized or zero
	WishSpeed float32
	Jump      bool       // pressed since the previous tick
	Look      rl.Vector3 // view direction, used to place a held prop
}

type platformEntry struct {
	platform *components.MovingPlatform
	collider *components.BoxCollider
}

// World owns the runtime scene, the player motor and the per-tick collider
// list, and runs the fixed simulation tick.
type World struct {
	Scene    *engine.Scene
	Settings *player.MovementSettings
	Motor    *player.Motor
	Spawn    Spawn

	Reach        float32
	HoldDistance float32

	solids    []*components.BoxCollider
	platforms []platformEntry
	pickups   []*components.Pickup
	colliders []physics.AABB

	driver *physics.ObjectDriver
	held   *components.Pickup
	look   rl.Vector3
}

func New(settings *player.MovementSettings) *World {
	if settings == nil {
		settings = player.DefaultMovementSettings()
	}
	return &World{
		Scene:        engine.NewScene("Main"),
		Settings:     settings,
		Motor:        player.NewMotor(settings, rl.Vector3{}),
		Reach:        DefaultReach,
		HoldDistance: DefaultHoldDistance,
		driver:       physics.NewObjectDriver(),
		look:         rl.Vector3{Z: 1},
	}
}

// FixedUpdate advances the simulation by one tick of dt seconds.
func (w *World) FixedUpdate(dt float32, in Input) {
	if in.Jump {
		w.Motor.PressJump()
	}
	if rl.Vector3LengthSqr(in.Look) > 1e-8 {
		w.look = rl.Vector3Normalize(in.Look)
	}

	// Platforms record where they were, then scripts move them.
	w.Scene.SnapshotPrev()
	w.Scene.Update(dt)
	for _, p := range w.platforms {
		p.platform.ComputeDelta()
	}

	// Props collide with static boxes only, never with each other or the player.
	w.rebuildColliders()
	for _, pk := range w.pickups {
		if pk == w.held {
			w.driver.DriveTo(pk.Body, w.holdTarget(), dt)
		}
		pk.Step(dt, w.colliders, w.Settings.Gravity)
	}

	w.rebuildColliders()
	w.Motor.Step(dt, in.WishDir, in.WishSpeed, w.colliders)
	w.Motor.RidePlatform(w, w.colliders)
}

// GroundDelta reports the per-tick motion of the moving platform the
// player is standing on.
func (w *World) GroundDelta(m *player.Motor) (rl.Vector3, bool) {
	bounds := m.Bounds()
	for _, p := range w.platforms {
		if p.collider == nil {
			continue
		}
		if player.StandsOn(bounds, m.Velocity.Y, p.collider.GetAABB()) {
			return p.platform.Delta, true
		}
	}
	return rl.Vector3{}, false
}

func (w *World) rebuildColliders() {
	w.colliders = w.colliders[:0]
	for _, c := range w.solids {
		if g := c.GetGameObject(); g != nil && !g.Active {
			continue
		}
		w.colliders = append(w.colliders, c.GetAABB())
	}
}

// Respawn puts the player back at the level spawn with no velocity.
func (w *World) Respawn() {
	w.Motor.Teleport(w.Spawn.Feet)
	w.look = w.Spawn.Camera().Forward()
}

func (w *World) Player() *player.Motor {
	return w.Motor
}

func (w *World) EyePosition() rl.Vector3 {
	return w.Motor.EyePosition()
}

// Colliders is the static box list used for the last player step. The
// slice is reused by the next FixedUpdate.
func (w *World) Colliders() []physics.AABB {
	return w.colliders
}

func (w *World) Pickups() []*components.Pickup {
	return w.pickups
}

func (w *World) Platforms() []*components.MovingPlatform {
	out := make([]*components.MovingPlatform, len(w.platforms))
	for i, p := range w.platforms {
		out[i] = p.platform
	}
	return out
}
