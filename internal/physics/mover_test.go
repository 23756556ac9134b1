package physics

import "testing"

func TestMoveAABBNoWorld(t *testing.T) {
	center, flags := MoveAABB(vec(1, 1, 1), vec(0.5, 0.5, 0.5), vec(2, -3, 4), nil, DefaultSkin, DefaultMaxPassesPerAxis)

	if flags != HitNone {
		t.Errorf("Expected no hits, got %v", flags)
	}
	if !approxVec(center, vec(3, -2, 5)) {
		t.Errorf("Expected full displacement, got %v", center)
	}
}

func TestMoveAABBWallSlide(t *testing.T) {
	wall := box(1.2, -1, -5, 2, 3, 5)
	extents := vec(0.5, 0.5, 0.5)

	center, flags := MoveAABB(vec(0, 0.5, 0), extents, vec(1, 0, 1), []AABB{wall}, DefaultSkin, DefaultMaxPassesPerAxis)

	if !flags.Has(HitX) {
		t.Error("Expected HitX to be set")
	}
	if flags.Has(HitZ) || flags.Has(HitY) {
		t.Errorf("Expected only HitX, got %v", flags)
	}
	wantX := wall.Min.X - extents.X - DefaultSkin
	if !approx(center.X, wantX) {
		t.Errorf("Expected X clamped to %v, got %v", wantX, center.X)
	}
	if !approx(center.Z, 1) {
		t.Errorf("Expected Z displacement fully applied, got %v", center.Z)
	}
	if !approx(center.Y, 0.5) {
		t.Errorf("Expected Y unchanged, got %v", center.Y)
	}
}

func TestMoveAABBLandsOnFloor(t *testing.T) {
	center, flags := MoveAABB(vec(0, 2, 0), vec(0.5, 0.5, 0.5), vec(0, -2, 0), []AABB{floor}, DefaultSkin, DefaultMaxPassesPerAxis)

	if flags != HitY {
		t.Errorf("Expected HitY only, got %v", flags)
	}
	if !approx(center.Y, 0.5+DefaultSkin) {
		t.Errorf("Expected to rest at %v, got %v", 0.5+DefaultSkin, center.Y)
	}
}

func TestMoveAABBTwoBoxesSameAxis(t *testing.T) {
	// Two walls in the path; the nearer one must win regardless of order.
	near := box(1, -1, -1, 1.5, 1, 1)
	far := box(2, -1, -1, 3, 1, 1)
	extents := vec(0.5, 0.5, 0.5)

	center, flags := MoveAABB(vec(0, 0, 0), extents, vec(2.2, 0, 0), []AABB{far, near}, DefaultSkin, DefaultMaxPassesPerAxis)

	if !flags.Has(HitX) {
		t.Fatal("Expected HitX")
	}
	want := near.Min.X - extents.X - DefaultSkin
	if !approx(center.X, want) {
		t.Errorf("Expected X=%v against the nearer wall, got %v", want, center.X)
	}
}

func TestMoveAABBDefaultsPasses(t *testing.T) {
	wall := box(1, -1, -1, 2, 1, 1)
	center, flags := MoveAABB(vec(0, 0, 0), vec(0.5, 0.5, 0.5), vec(1, 0, 0), []AABB{wall}, 0, 0)
	if !flags.Has(HitX) || !approx(center.X, 0.5) {
		t.Errorf("Expected flush contact at 0.5 with zero skin, got %v (%v)", center.X, flags)
	}
}

func TestKinematicBodyLandsAndGrounds(t *testing.T) {
	body := NewKinematicBody(vec(0, 0.6, 0), vec(0.5, 0.5, 0.5))
	world := []AABB{floor}

	for i := 0; i < 120; i++ {
		body.Step(1.0/60, world)
	}

	if !body.Grounded() {
		t.Error("Expected body to be grounded")
	}
	if !body.LastCollisions().Has(HitY) {
		t.Errorf("Expected HitY in last collisions, got %v", body.LastCollisions())
	}
	if !approx(body.Center.Y, 0.5+body.Skin) {
		t.Errorf("Expected resting height %v, got %v", 0.5+body.Skin, body.Center.Y)
	}
	if body.Velocity.Y != 0 {
		t.Errorf("Expected zero vertical velocity, got %v", body.Velocity.Y)
	}
}

func TestKinematicBodyRestitution(t *testing.T) {
	body := NewKinematicBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))
	body.UseGravity = false
	body.Restitution = 0.5
	body.Velocity = vec(10, 0, 0)

	body.Step(0.1, []AABB{box(1, -1, -1, 2, 1, 1)})

	if !approx(body.Velocity.X, -5) {
		t.Errorf("Expected bounced velocity -5, got %v", body.Velocity.X)
	}
	if body.Grounded() {
		t.Error("Wall hit should not ground the body")
	}
}

func TestKinematicBodyStopsOnImpactWithoutRestitution(t *testing.T) {
	body := NewKinematicBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))
	body.UseGravity = false
	body.Velocity = vec(10, 0, 3)

	body.Step(0.1, []AABB{box(1, -1, -5, 2, 1, 5)})

	if body.Velocity.X != 0 {
		t.Errorf("Expected X velocity zeroed, got %v", body.Velocity.X)
	}
	if !approx(body.Velocity.Z, 3) {
		t.Errorf("Expected Z velocity untouched, got %v", body.Velocity.Z)
	}
}

func TestKinematicBodyGroundFriction(t *testing.T) {
	body := NewKinematicBody(vec(0, 0.5+DefaultSkin, 0), vec(0.5, 0.5, 0.5))
	body.Velocity = vec(2, 0, 0)
	world := []AABB{floor}

	prev := body.Velocity.X
	for i := 0; i < 60; i++ {
		body.Step(1.0/60, world)
		if body.Velocity.X > prev {
			t.Fatalf("Speed increased at tick %d: %v > %v", i, body.Velocity.X, prev)
		}
		if body.Velocity.X < 0 {
			t.Fatalf("Speed reversed at tick %d: %v", i, body.Velocity.X)
		}
		prev = body.Velocity.X
	}

	if body.Velocity.X != 0 {
		t.Errorf("Expected body to stop, got %v", body.Velocity.X)
	}
}

func TestKinematicBodyGroundFrictionStaysStopped(t *testing.T) {
	body := NewKinematicBody(vec(0, 0.5+DefaultSkin, 0), vec(0.5, 0.5, 0.5))
	body.Velocity = vec(2, 0, 0)
	world := []AABB{floor}

	for i := 0; i < 6000; i++ {
		body.Step(1.0/60, world)
	}

	if body.Velocity.X != 0 || body.Velocity.Z != 0 {
		t.Errorf("Expected lateral velocity 0 after 6000 ticks, got (%v, %v)", body.Velocity.X, body.Velocity.Z)
	}
	if !body.Grounded() {
		t.Error("Expected body to stay grounded")
	}
}

func TestApplyLinearDragClearsResidualSpeed(t *testing.T) {
	got := applyLinearDrag(vec(9e-8, -3, 2e-8), 0)
	if got.X != 0 || got.Z != 0 {
		t.Errorf("Expected residual lateral speed cleared, got (%v, %v)", got.X, got.Z)
	}
	if got.Y != -3 {
		t.Errorf("Expected Y velocity kept, got %v", got.Y)
	}
}

func TestKinematicBodyLinearDamping(t *testing.T) {
	body := NewKinematicBody(vec(0, 0, 0), vec(0.5, 0.5, 0.5))
	body.UseGravity = false
	body.LinearDamping = 1
	body.Velocity = vec(4, 0, 0)

	body.Step(0.5, nil)

	if !approx(body.Velocity.X, 2) {
		t.Errorf("Expected damped velocity 2, got %v", body.Velocity.X)
	}
}

func TestKinematicBodySnapProbe(t *testing.T) {
	body := NewKinematicBody(vec(0, 0.5+DefaultSkin, 0), vec(0.5, 0.5, 0.5))
	body.UseGravity = false

	body.Step(1.0/60, []AABB{floor})

	if !body.Grounded() {
		t.Error("Body resting within GroundSnapEpsilon should report grounded")
	}
}
