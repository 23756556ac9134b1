package components

import (
	"boxmotion/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("MovingPlatform", movingPlatformFactory, movingPlatformSerializer)
}

func movingPlatformFactory(props map[string]any) engine.Component {
	speed, ok := toFloat(props["speed"])
	if !ok {
		speed = 1
	}

	return &MovingPlatform{
		PointA: getVec3(props, "pointA", rl.Vector3{}),
		PointB: getVec3(props, "pointB", rl.Vector3{}),
		Speed:  speed,
	}
}

func movingPlatformSerializer(c engine.Component) map[string]any {
	p, ok := c.(*MovingPlatform)
	if !ok {
		return nil
	}
	return map[string]any{
		"pointA": vec3Prop(p.PointA),
		"pointB": vec3Prop(p.PointB),
		"speed":  p.Speed,
	}
}

// toFloat accepts decoded JSON numbers as well as props built in code.
func toFloat(v any) (float32, bool) {
	switch f := v.(type) {
	case float64:
		return float32(f), true
	case float32:
		return f, true
	case int:
		return float32(f), true
	}
	return 0, false
}

// getVec3 reads a [x,y,z] array.
func getVec3(props map[string]any, key string, fallback rl.Vector3) rl.Vector3 {
	var out [3]float32
	switch arr := props[key].(type) {
	case []float32:
		if len(arr) != 3 {
			return fallback
		}
		copy(out[:], arr)
	case []any:
		if len(arr) != 3 {
			return fallback
		}
		for i, v := range arr {
			f, ok := toFloat(v)
			if !ok {
				return fallback
			}
			out[i] = f
		}
	default:
		return fallback
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}
}

func vec3Prop(v rl.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
