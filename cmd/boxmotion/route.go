package main

import (
	"boxmotion/internal/camera"
	"boxmotion/internal/world"
)

// route is a fixed input script: walk forward, jump, strafe, then try to
// grab whatever is in front and let go again.
type route struct {
	w    *world.World
	view *camera.FPSCamera
}

func newRoute(w *world.World) *route {
	return &route{w: w, view: w.Spawn.Camera()}
}

func (r *route) input(tick int) world.Input {
	var forward, right float32
	jump := false

	switch {
	case tick < 120:
		forward = 1
		jump = tick == 60
	case tick < 240:
		right = 1
	case tick == 260:
		r.w.TryPickUp(r.w.EyePosition(), r.view.Forward())
	case tick == 420:
		r.w.Drop()
	}

	in := world.Input{
		WishDir: r.view.WishDir(forward, right),
		Jump:    jump,
		Look:    r.view.Forward(),
	}
	if forward != 0 || right != 0 {
		in.WishSpeed = r.w.Settings.MaxSpeed
	}
	return in
}
