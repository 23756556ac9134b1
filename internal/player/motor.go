package player

import (
	"boxmotion/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// neverHappened is the timer value used for "this event is not pending".
const neverHappened = 999

// Motor is the player movement state machine: Source-style ground and air
// acceleration, friction, gravity, buffered jumps with coyote time, and
// box collision through physics.ResolvePenetration.
type Motor struct {
	settings *MovementSettings

	Position rl.Vector3 // feet, not center
	Velocity rl.Vector3

	Radius     float32
	HalfHeight float32

	grounded             bool
	timeSinceGrounded    float32
	timeSinceJumpPressed float32
}

func NewMotor(settings *MovementSettings, feet rl.Vector3) *Motor {
	return &Motor{
		settings:             settings,
		Position:             feet,
		Radius:               0.4,
		HalfHeight:           0.9,
		timeSinceGrounded:    neverHappened,
		timeSinceJumpPressed: neverHappened,
	}
}

func (m *Motor) Settings() *MovementSettings {
	return m.settings
}

func (m *Motor) Grounded() bool {
	return m.grounded
}

func (m *Motor) Extents() rl.Vector3 {
	return rl.Vector3{X: m.Radius, Y: m.HalfHeight, Z: m.Radius}
}

func (m *Motor) Center() rl.Vector3 {
	return rl.Vector3{X: m.Position.X, Y: m.Position.Y + m.HalfHeight, Z: m.Position.Z}
}

// Bounds is the collision box around the player.
func (m *Motor) Bounds() physics.AABB {
	return physics.FromCenterExtents(m.Center(), m.Extents())
}

func (m *Motor) EyePosition() rl.Vector3 {
	return rl.Vector3{X: m.Position.X, Y: m.Position.Y + m.settings.EyeHeight, Z: m.Position.Z}
}

// Teleport moves the feet to pos and clears all motion state.
func (m *Motor) Teleport(pos rl.Vector3) {
	m.Position = pos
	m.Velocity = rl.Vector3{}
	m.grounded = false
	m.timeSinceGrounded = neverHappened
	m.timeSinceJumpPressed = neverHappened
}

// PressJump records a jump press. The press stays usable for JumpBuffer seconds.
func (m *Motor) PressJump() {
	m.timeSinceJumpPressed = 0
}

// Step advances the motor one tick. wishDir is normalized or zero,
// wishSpeed is in units per second.
func (m *Motor) Step(dt float32, wishDir rl.Vector3, wishSpeed float32, world []physics.AABB) {
	m.timeSinceJumpPressed += dt
	m.timeSinceGrounded += dt

	if m.grounded {
		m.timeSinceGrounded = 0

		m.ApplyFriction(dt)
		m.Accelerate(dt, wishDir, wishSpeed)
		m.tryConsumeJump()
	} else {
		m.AirAccelerate(dt, wishDir, wishSpeed)
		if !m.tryConsumeJump() {
			m.Velocity.Y -= m.settings.Gravity * dt
		}
	}

	m.Position = rl.Vector3Add(m.Position, rl.Vector3Scale(m.Velocity, dt))

	m.resolve(world)
}

// Carry moves the player by a platform's per-tick displacement and removes
// any penetration the raw move introduced.
func (m *Motor) Carry(delta rl.Vector3, world []physics.AABB) {
	m.Position = rl.Vector3Add(m.Position, delta)

	center, velocity, _ := physics.ResolvePenetration(m.Center(), m.Velocity, m.Extents(), world, physics.DefaultResolveIterations)
	m.Velocity = velocity
	m.Position = rl.Vector3{X: center.X, Y: center.Y - m.HalfHeight, Z: center.Z}
}

func (m *Motor) resolve(world []physics.AABB) {
	center, velocity, grounded := physics.ResolvePenetration(m.Center(), m.Velocity, m.Extents(), world, physics.DefaultResolveIterations)

	m.Velocity = velocity
	m.Position = rl.Vector3{X: center.X, Y: center.Y - m.HalfHeight, Z: center.Z}
	m.grounded = grounded

	// Rounding can leave the feet a hair above the surface they were pushed onto
	if !m.grounded && m.Velocity.Y <= 0 && m.settings.GroundEpsilon > 0 {
		m.grounded = m.supported(world)
	}
}

// supported reports whether anything lies within GroundEpsilon below the
// feet. The probe is inset on X/Z so walls the player is touching don't count.
func (m *Motor) supported(world []physics.AABB) bool {
	eps := m.settings.GroundEpsilon
	probe := m.Bounds()
	probe.Max.Y = probe.Min.Y
	probe.Min.Y -= eps
	probe.Min.X += eps
	probe.Max.X -= eps
	probe.Min.Z += eps
	probe.Max.Z -= eps
	for i := range world {
		if probe.Overlaps(world[i]) {
			return true
		}
	}
	return false
}

// tryConsumeJump fires a jump if a press is buffered and the player was on
// the ground recently enough.
func (m *Motor) tryConsumeJump() bool {
	buffered := m.timeSinceJumpPressed <= m.settings.JumpBuffer
	coyoteOK := m.timeSinceGrounded <= m.settings.CoyoteTime
	if !buffered || !coyoteOK {
		return false
	}

	m.Velocity.Y = m.settings.JumpSpeed
	m.grounded = false
	m.timeSinceJumpPressed = neverHappened
	m.timeSinceGrounded = neverHappened
	return true
}

// ApplyFriction slows lateral velocity. Below StopSpeed the drop is computed
// from StopSpeed so slow movement comes to a full stop quickly.
func (m *Motor) ApplyFriction(dt float32) {
	speed := lateralSpeed(m.Velocity)
	if speed < 0.0001 {
		m.Velocity.X = 0
		m.Velocity.Z = 0
		return
	}

	control := speed
	if speed < m.settings.StopSpeed {
		control = m.settings.StopSpeed
	}
	drop := control * m.settings.Friction * dt

	newSpeed := math32.Max(0, speed-drop)
	if newSpeed != speed {
		scale := newSpeed / speed
		m.Velocity.X *= scale
		m.Velocity.Z *= scale
	}
}

func (m *Motor) Accelerate(dt float32, wishDir rl.Vector3, wishSpeed float32) {
	m.accelerate(dt, wishDir, wishSpeed, m.settings.Accel)
}

func (m *Motor) AirAccelerate(dt float32, wishDir rl.Vector3, wishSpeed float32) {
	m.accelerate(dt, wishDir, wishSpeed, m.settings.AirAccel)
}

func (m *Motor) accelerate(dt float32, wishDir rl.Vector3, wishSpeed, accel float32) {
	if wishSpeed <= 0 || rl.Vector3LengthSqr(wishDir) < 0.0001 {
		return
	}
	wishSpeed = math32.Min(wishSpeed, m.settings.MaxSpeed)

	lateral := rl.Vector3{X: m.Velocity.X, Z: m.Velocity.Z}
	currentSpeed := rl.Vector3DotProduct(lateral, wishDir)
	addSpeed := wishSpeed - currentSpeed
	if addSpeed <= 0 {
		return
	}

	accelSpeed := math32.Min(accel*wishSpeed*dt, addSpeed)
	lateral = rl.Vector3Add(lateral, rl.Vector3Scale(wishDir, accelSpeed))
	m.Velocity.X = lateral.X
	m.Velocity.Z = lateral.Z
}

func lateralSpeed(v rl.Vector3) float32 {
	return math32.Sqrt(v.X*v.X + v.Z*v.Z)
}
