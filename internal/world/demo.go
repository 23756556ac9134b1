package world

// DemoRoom is the default test room: an 18x18 walled floor with crates,
// pillars, a low step, one moving platform and one pickup crate.
func DemoRoom() *LevelFile {
	const (
		roomW = 18
		roomD = 18
		wallH = 4
		wallT = 0.4
	)

	box := func(name string, pos, size [3]float32) BoxDef {
		return BoxDef{Name: name, Position: pos, Size: size}
	}

	lf := &LevelFile{
		Version: LevelVersion,
		Spawn:   SpawnDef{Position: [3]float32{0, 0, -5}},
		Boxes: []BoxDef{
			box("Floor", [3]float32{0, -0.1, 0}, [3]float32{roomW, 0.2, roomD}),

			box("Wall_PosZ", [3]float32{0, wallH * 0.5, roomD * 0.5}, [3]float32{roomW, wallH, wallT}),
			box("Wall_NegZ", [3]float32{0, wallH * 0.5, -roomD * 0.5}, [3]float32{roomW, wallH, wallT}),
			box("Wall_PosX", [3]float32{roomW * 0.5, wallH * 0.5, 0}, [3]float32{wallT, wallH, roomD}),
			box("Wall_NegX", [3]float32{-roomW * 0.5, wallH * 0.5, 0}, [3]float32{wallT, wallH, roomD}),

			box("Crate_0", [3]float32{2, 0.5, 2}, [3]float32{1, 1, 1}),
			box("Crate_1", [3]float32{-3, 0.5, -1}, [3]float32{1, 1, 1}),
			box("Crate_2", [3]float32{0, 0.5, -4}, [3]float32{1, 1, 1}),
			box("Crate_3", [3]float32{0, 0.5, -2}, [3]float32{1, 1, 1}),

			box("Pillar_0", [3]float32{5, 2, 5}, [3]float32{0.8, 4, 0.8}),
			box("Pillar_1", [3]float32{-5, 2, 5}, [3]float32{0.8, 4, 0.8}),
			box("Pillar_2", [3]float32{5, 2, -5}, [3]float32{0.8, 4, 0.8}),
			box("Pillar_3", [3]float32{-5, 2, -5}, [3]float32{0.8, 4, 0.8}),

			box("Step", [3]float32{0, 0.25, 6}, [3]float32{4, 0.5, 3}),
		},
	}

	// Starts at the midpoint of its path so the first tick has no jump.
	platform := box("Platform", [3]float32{-3.5, 1, 3}, [3]float32{2.5, 0.25, 2.5})
	platform.Scripts = []ScriptDef{{
		Type: "MovingPlatform",
		Props: map[string]any{
			"pointA": []any{-6.0, 1.0, 3.0},
			"pointB": []any{-1.0, 1.0, 3.0},
			"speed":  0.8,
		},
	}}

	pickup := box("Crate_Pickup", [3]float32{3, 0.3, -3}, [3]float32{0.6, 0.6, 0.6})
	pickup.Pickup = true
	pickup.Mass = 10

	lf.Boxes = append(lf.Boxes, platform, pickup)
	return lf
}
