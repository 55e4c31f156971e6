package core

import "time"

// RuntimeConfig is passed to the game when a run begins.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval is the fixed simulation timestep for this config.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the coarse state of a game as seen by the platform.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseAwaitingName
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseAwaitingName:
		return "awaiting-name"
	default:
		return "unknown"
	}
}

// GameState is the snapshot the platform reads after every tick.
type GameState struct {
	Phase     Phase
	Score     int
	Animating bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
