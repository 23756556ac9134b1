package player

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MovementSettings holds the movement tuning. It is shared by pointer and
// treated as read-only while the simulation runs.
type MovementSettings struct {
	TickRate float32 `json:"tickRate" yaml:"tickRate"`

	MaxSpeed  float32 `json:"maxSpeed" yaml:"maxSpeed"`
	Accel     float32 `json:"accel" yaml:"accel"`
	AirAccel  float32 `json:"airAccel" yaml:"airAccel"`
	Friction  float32 `json:"friction" yaml:"friction"`
	StopSpeed float32 `json:"stopSpeed" yaml:"stopSpeed"`

	Gravity   float32 `json:"gravity" yaml:"gravity"`
	JumpSpeed float32 `json:"jumpSpeed" yaml:"jumpSpeed"`

	GroundEpsilon float32 `json:"groundEpsilon" yaml:"groundEpsilon"`
	JumpBuffer    float32 `json:"jumpBuffer" yaml:"jumpBuffer"`
	CoyoteTime    float32 `json:"coyoteTime" yaml:"coyoteTime"`

	EyeHeight float32 `json:"eyeHeight" yaml:"eyeHeight"`
}

func DefaultMovementSettings() *MovementSettings {
	return &MovementSettings{
		TickRate:      60,
		MaxSpeed:      7,
		Accel:         12,
		AirAccel:      2,
		Friction:      6,
		StopSpeed:     1.5,
		Gravity:       20,
		JumpSpeed:     6.5,
		GroundEpsilon: 0.001,
		JumpBuffer:    0.10,
		CoyoteTime:    0.08,
		EyeHeight:     1.8,
	}
}

// FixedDelta is the length of one simulation tick in seconds.
func (s *MovementSettings) FixedDelta() float32 {
	return 1 / s.TickRate
}

func (s *MovementSettings) Validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %v", s.TickRate)
	}
	fields := []struct {
		name  string
		value float32
	}{
		{"maxSpeed", s.MaxSpeed},
		{"accel", s.Accel},
		{"airAccel", s.AirAccel},
		{"friction", s.Friction},
		{"stopSpeed", s.StopSpeed},
		{"gravity", s.Gravity},
		{"jumpSpeed", s.JumpSpeed},
		{"groundEpsilon", s.GroundEpsilon},
		{"jumpBuffer", s.JumpBuffer},
		{"coyoteTime", s.CoyoteTime},
		{"eyeHeight", s.EyeHeight},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", f.name, f.value)
		}
	}
	return nil
}

// LoadSettings reads movement settings from a JSON file, or YAML when the
// extension is .yaml/.yml. Fields missing from the file keep their
// defaults. A missing file yields the defaults.
func LoadSettings(path string) (*MovementSettings, error) {
	s := DefaultMovementSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read movement settings: %w", err)
	}

	if err := decode(path, data, s); err != nil {
		return nil, fmt.Errorf("parse movement settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movement settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes s in the format picked by the extension, creating
// the directory if needed.
func SaveSettings(path string, s *MovementSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("encode movement settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func decode(path string, data []byte, s *MovementSettings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}
	return json.Unmarshal(data, s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
