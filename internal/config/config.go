// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunables of the keep-ups game.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Ball    BallConfig    `yaml:"ball"`
	Field   FieldConfig   `yaml:"field"`
	Session SessionConfig `yaml:"session"`
	Input   InputConfig   `yaml:"input"`
}

// PhysicsConfig defines the per-frame physics parameters.
type PhysicsConfig struct {
	Gravity         float64       `yaml:"gravity"`          // Added to vy every frame (px/frame²)
	Friction        float64       `yaml:"friction"`         // Velocity multiplier every frame
	KickXRange      float64       `yaml:"kick_x_range"`     // Horizontal kick is uniform in [-range/2, range/2)
	KickY           float64       `yaml:"kick_y"`           // Vertical kick velocity (negative = up)
	AnimationWindow time.Duration `yaml:"animation_window"` // How long the ball moves after a kick
}

// BallConfig defines the ball size and where a new session places it.
type BallConfig struct {
	Size      float64 `yaml:"size"`       // Ball diameter in pixels
	StartTop  float64 `yaml:"start_top"`  // Initial top offset in pixels
	StartLeft float64 `yaml:"start_left"` // Initial left offset in pixels
}

// FieldConfig maps terminal cells to the pixel space physics runs in.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// SessionConfig controls the end-of-session name prompt.
type SessionConfig struct {
	NameMaxLen    int           `yaml:"name_max_len"`
	PromptTimeout time.Duration `yaml:"prompt_timeout"` // 0 disables the timeout
}

// InputConfig controls optional input bindings.
type InputConfig struct {
	KeyboardKick bool `yaml:"keyboard_kick"` // Space kicks the ball without aiming
}

// Validate reports the first configuration value that would break the game.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics.friction must be in (0, 1], got %v", c.Physics.Friction))
	}
	if c.Physics.KickXRange < 0 {
		errs = append(errs, fmt.Errorf("physics.kick_x_range must not be negative, got %v", c.Physics.KickXRange))
	}
	if c.Physics.AnimationWindow <= 0 {
		errs = append(errs, fmt.Errorf("physics.animation_window must be positive, got %v", c.Physics.AnimationWindow))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball.size must be positive, got %v", c.Ball.Size))
	}
	if c.Field.CellWidth <= 0 || c.Field.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("field cell size must be positive, got %vx%v", c.Field.CellWidth, c.Field.CellHeight))
	}
	if c.Session.NameMaxLen <= 0 {
		errs = append(errs, fmt.Errorf("session.name_max_len must be positive, got %d", c.Session.NameMaxLen))
	}
	if c.Session.PromptTimeout < 0 {
		errs = append(errs, fmt.Errorf("session.prompt_timeout must not be negative, got %v", c.Session.PromptTimeout))
	}

	return errors.Join(errs...)
}
