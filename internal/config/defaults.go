package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/keepups.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:         0.5,
			Friction:        0.67,
			KickXRange:      10,
			KickY:           -10,
			AnimationWindow: time.Second,
		},
		Ball: BallConfig{
			Size:      32,
			StartTop:  50,
			StartLeft: 50,
		},
		Field: FieldConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Session: SessionConfig{
			NameMaxLen:    12,
			PromptTimeout: 60 * time.Second,
		},
	}
}
