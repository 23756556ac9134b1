package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"boxmotion/internal/camera"
	"boxmotion/internal/components"
	"boxmotion/internal/engine"
	"boxmotion/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const LevelVersion = 1

// --- JSON types ---

type LevelFile struct {
	Version int      `json:"version"`
	Spawn   SpawnDef `json:"spawn"`
	Boxes   []BoxDef `json:"boxes"`
}

type SpawnDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
}

// BoxDef is one axis-aligned box. Position is the box center.
type BoxDef struct {
	Name     string      `json:"name"`
	Tags     []string    `json:"tags,omitempty"`
	Position [3]float32  `json:"position"`
	Size     [3]float32  `json:"size"`
	Scale    [3]float32  `json:"scale,omitempty"`
	Pickup   bool        `json:"pickup,omitempty"`
	Mass     float32     `json:"mass,omitempty"`
	Scripts  []ScriptDef `json:"scripts,omitempty"`
}

type ScriptDef struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// Spawn is where the player's feet start, and the initial view yaw in degrees.
type Spawn struct {
	Feet rl.Vector3
	Yaw  float32
}

// Camera returns a view facing the spawn yaw.
func (s Spawn) Camera() *camera.FPSCamera {
	return camera.New(s.Yaw)
}

// --- File IO ---

func ReadLevel(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	var lf LevelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}
	return &lf, nil
}

func WriteLevel(path string, lf *LevelFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// --- Loading ---

// LoadLevel reads a level file and replaces the world's contents with it.
func (w *World) LoadLevel(path string) error {
	lf, err := ReadLevel(path)
	if err != nil {
		return err
	}
	if err := w.Load(lf); err != nil {
		return fmt.Errorf("load level %s: %w", path, err)
	}
	return nil
}

// Load builds the runtime scene from lf and respawns the player.
func (w *World) Load(lf *LevelFile) error {
	if lf.Version != LevelVersion {
		return fmt.Errorf("unsupported level version %d", lf.Version)
	}

	w.Scene = engine.NewScene("Main")
	w.solids = nil
	w.platforms = nil
	w.pickups = nil
	w.colliders = nil
	w.held = nil

	for i, def := range lf.Boxes {
		w.buildBox(i, def)
	}

	w.Scene.Start()
	w.rebuildColliders()

	w.Spawn = Spawn{Feet: vec3(lf.Spawn.Position), Yaw: lf.Spawn.Yaw}
	w.Respawn()

	log.Printf("World: loaded %d boxes (%d solid, %d platforms, %d pickups), spawn %v",
		len(lf.Boxes), len(w.solids), len(w.platforms), len(w.pickups), w.Spawn.Feet)
	return nil
}

func (w *World) buildBox(i int, def BoxDef) {
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("Box_%d", i)
	}

	g := engine.NewGameObject(name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)

	// Default scale and size to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec3(def.Scale)
	}
	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	if def.Size != [3]float32{} {
		size = vec3(def.Size)
	}

	// Pickups are bodies, not static geometry.
	var col *components.BoxCollider
	if def.Pickup {
		g.AddComponent(components.NewPickup(components.ScaledSize(size, g.Transform.Scale), def.Mass))
	} else {
		col = components.NewBoxCollider(size)
		g.AddComponent(col)
	}

	for _, s := range def.Scripts {
		comp := engine.CreateScript(s.Type, s.Props)
		if comp == nil {
			log.Printf("World: unknown script %q on '%s', skipped", s.Type, name)
			continue
		}
		g.AddComponent(comp)
	}

	w.Scene.AddGameObject(g)

	if pk := engine.GetComponent[*components.Pickup](g); pk != nil {
		w.pickups = append(w.pickups, pk)
		return
	}
	w.solids = append(w.solids, col)
	if mp := engine.GetComponent[*components.MovingPlatform](g); mp != nil {
		w.platforms = append(w.platforms, platformEntry{platform: mp, collider: col})
	}
}

// --- Saving ---

// Snapshot converts the current scene back into a level file. Pickups are
// written at their current position with their world size and unit scale.
func (w *World) Snapshot() *LevelFile {
	lf := &LevelFile{
		Version: LevelVersion,
		Spawn: SpawnDef{
			Position: arr3(w.Spawn.Feet),
			Yaw:      w.Spawn.Yaw,
		},
	}

	for _, g := range w.Scene.GameObjects {
		def := BoxDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Scale:    arr3(g.Transform.Scale),
		}

		if pk := engine.GetComponent[*components.Pickup](g); pk != nil {
			def.Pickup = true
			def.Mass = pk.Body.Mass
			def.Size = arr3(rl.Vector3Scale(pk.Body.HalfExtents, 2))
			def.Scale = [3]float32{1, 1, 1}
		} else if col := engine.GetComponent[*components.BoxCollider](g); col != nil {
			def.Size = arr3(physics.ClampSize(col.Size))
		} else {
			continue
		}

		for _, c := range g.Components() {
			if name, props, ok := engine.SerializeScript(c); ok {
				def.Scripts = append(def.Scripts, ScriptDef{Type: name, Props: props})
			}
		}

		lf.Boxes = append(lf.Boxes, def)
	}
	return lf
}

func (w *World) SaveLevel(path string) error {
	return WriteLevel(path, w.Snapshot())
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
