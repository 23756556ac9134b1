package components

import (
	"log"

	"boxmotion/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MovingPlatform slides its GameObject between PointA and PointB along a
// sine curve. PrevPos and Delta describe the last fixed tick's motion so
// a player standing on it can be carried along.
type MovingPlatform struct {
	engine.BaseComponent
	PointA rl.Vector3
	PointB rl.Vector3
	Speed  float32

	PrevPos rl.Vector3
	Delta   rl.Vector3

	phase    float32
	logTimer float32
}

func NewMovingPlatform(a, b rl.Vector3, speed float32) *MovingPlatform {
	return &MovingPlatform{PointA: a, PointB: b, Speed: speed}
}

func (p *MovingPlatform) Start() {
	if g := p.GetGameObject(); g != nil {
		p.PrevPos = g.Transform.Position
	}
}

// SnapshotPrev records the position at the start of a fixed tick.
func (p *MovingPlatform) SnapshotPrev() {
	if g := p.GetGameObject(); g != nil {
		p.PrevPos = g.Transform.Position
	}
}

func (p *MovingPlatform) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil {
		return
	}

	p.phase += deltaTime * p.Speed
	s := 0.5 + 0.5*math32.Sin(p.phase)
	g.Transform.Position = rl.Vector3Lerp(p.PointA, p.PointB, s)

	p.logTimer += deltaTime
	if p.logTimer > 1 {
		p.logTimer = 0
		log.Printf("MovingPlatform: '%s' pos=%v A=%v B=%v speed=%.2f", g.Name, g.Transform.Position, p.PointA, p.PointB, p.Speed)
	}
}

// ComputeDelta sets Delta to the motion since the last SnapshotPrev.
func (p *MovingPlatform) ComputeDelta() {
	if g := p.GetGameObject(); g != nil {
		p.Delta = rl.Vector3Subtract(g.Transform.Position, p.PrevPos)
	}
}
