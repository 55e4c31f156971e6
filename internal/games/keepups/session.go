package keepups

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepups/internal/config"
)

// Repository loads and saves the high-score mapping.
type Repository interface {
	Load(ctx context.Context) (map[string]int, error)
	Save(ctx context.Context, scores map[string]int) error
}

// HistoryRecorder receives every finished session that scored.
// An empty name means the player skipped the prompt.
type HistoryRecorder interface {
	RecordSession(ctx context.Context, name string, score int) error
}

// State is the session state machine's current state.
type State int

const (
	StateNotStarted State = iota
	StateStarted
	StateAwaitingName
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarted:
		return "started"
	case StateAwaitingName:
		return "awaiting-name"
	default:
		return "unknown"
	}
}

// Outcome describes how the last session was settled.
type Outcome struct {
	Score    int
	Name     string // Empty when nothing was recorded
	NewBest  bool   // Whether the table changed
	TimedOut bool   // Whether the prompt expired
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Config     config.Config
	Repository Repository      // Required
	History    HistoryRecorder // Optional
	Logger     *log.Logger     // Optional; discards when nil
	Seed       int64
}

// Session owns the ball, the score and the high-score table for one player.
// It is not safe for concurrent use; the platform drives it from a single loop.
type Session struct {
	cfg     config.Config
	physics Physics
	rng     *rand.Rand
	repo    Repository
	history HistoryRecorder
	logger  *log.Logger

	state     State
	ball      Ball
	bounds    Bounds
	score     int
	animating bool
	prompted  bool

	animation Timer // Stops the ball after each kick
	prompt    Timer // Abandons an unanswered name prompt

	table Table
	last  *Outcome
}

// NewSession creates a session and loads the high-score table.
// Unreadable or malformed stored scores start an empty table.
func NewSession(ctx context.Context, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg: opts.Config,
		physics: Physics{
			Gravity:  opts.Config.Physics.Gravity,
			Friction: opts.Config.Physics.Friction,
		},
		rng:     rand.New(rand.NewSource(opts.Seed)),
		repo:    opts.Repository,
		history: opts.History,
		logger:  logger,
		table:   Table{},
	}
	s.resetBall()

	stored, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("could not load high scores, starting empty", "error", err)
		return s
	}
	for name, score := range stored {
		s.table.Record(name, score)
	}
	return s
}

// Reseed replaces the kick randomness source.
func (s *Session) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// SetBounds updates the play field, e.g. after a terminal resize.
func (s *Session) SetBounds(b Bounds) {
	s.bounds = b
}

// Start begins a new session from the start screen.
// It returns false when a session is already running or awaiting a name.
func (s *Session) Start() bool {
	if s.state != StateNotStarted {
		return false
	}

	s.state = StateStarted
	s.score = 0
	s.prompted = false
	s.animating = false
	s.animation.Cancel()
	s.prompt.Cancel()
	s.resetBall()

	s.logger.Info("session started")
	return true
}

// Kick registers a hit on the ball: one more keep-up, a fresh upward impulse
// with a random horizontal component, and a restarted animation window.
// Rapid kicks are not debounced.
func (s *Session) Kick() bool {
	if s.state != StateStarted {
		return false
	}

	s.score++
	s.animating = true
	s.ball.VX = (s.rng.Float64() - 0.5) * s.cfg.Physics.KickXRange
	s.ball.VY = s.cfg.Physics.KickY
	s.animation.Arm(s.cfg.Physics.AnimationWindow)
	return true
}

// Tick advances the session by one fixed timestep.
func (s *Session) Tick(ctx context.Context, dt time.Duration) {
	switch s.state {
	case StateStarted:
		if !s.animating {
			return
		}

		var hit CollisionSide
		s.ball, hit = s.physics.Step(s.ball, s.bounds)
		if hit.Has(CollisionFloor) {
			s.end(ctx)
			return
		}

		if s.animation.Advance(dt) {
			s.animating = false
		}

	case StateAwaitingName:
		if s.prompt.Advance(dt) {
			s.settle(ctx, Outcome{Score: s.score, TimedOut: true})
		}
	}
}

// SubmitName answers the end-of-session prompt. Blank names record nothing.
// A storage failure is returned after the session has moved on; the in-memory
// table keeps the new score either way.
func (s *Session) SubmitName(ctx context.Context, raw string) error {
	if s.state != StateAwaitingName {
		return nil
	}
	s.prompt.Cancel()

	name, ok := NormalizeName(raw, s.cfg.Session.NameMaxLen)
	if !ok {
		s.settle(ctx, Outcome{Score: s.score})
		return nil
	}

	outcome := Outcome{Score: s.score, Name: name}
	outcome.NewBest = s.table.Record(name, s.score)

	var err error
	if outcome.NewBest {
		s.logger.Info("new high score", "name", name, "score", s.score)
		if saveErr := s.repo.Save(ctx, s.table.Clone()); saveErr != nil {
			s.logger.Error("could not save high scores", "error", saveErr)
			err = fmt.Errorf("save high scores: %w", saveErr)
		}
	}

	s.settle(ctx, outcome)
	return err
}

// CancelName dismisses the end-of-session prompt without recording a score.
func (s *Session) CancelName(ctx context.Context) {
	if s.state != StateAwaitingName {
		return
	}
	s.prompt.Cancel()
	s.settle(ctx, Outcome{Score: s.score})
}

// Teardown cancels the frame loop and every pending timer.
func (s *Session) Teardown() {
	s.animating = false
	s.animation.Cancel()
	s.prompt.Cancel()
}

// end handles the floor contact that finishes a running session.
func (s *Session) end(ctx context.Context) {
	s.animating = false
	s.animation.Cancel()

	s.logger.Info("session ended", "score", s.score)

	if s.score > 0 && !s.prompted {
		s.prompted = true
		s.state = StateAwaitingName
		if s.cfg.Session.PromptTimeout > 0 {
			s.prompt.Arm(s.cfg.Session.PromptTimeout)
		}
		return
	}

	s.settle(ctx, Outcome{Score: s.score})
}

// settle returns to the start screen and appends the session to the history.
func (s *Session) settle(ctx context.Context, outcome Outcome) {
	s.state = StateNotStarted
	s.last = &outcome

	if outcome.Score == 0 || s.history == nil {
		return
	}
	if err := s.history.RecordSession(ctx, outcome.Name, outcome.Score); err != nil {
		s.logger.Warn("could not record session", "error", err)
	}
}

func (s *Session) resetBall() {
	s.ball = Ball{
		Top:  s.cfg.Ball.StartTop,
		Left: s.cfg.Ball.StartLeft,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the keep-ups of the current or last session.
func (s *Session) Score() int {
	return s.score
}

// Ball returns the ball's position and velocity.
func (s *Session) Ball() Ball {
	return s.ball
}

// Bounds returns the current play field.
func (s *Session) Bounds() Bounds {
	return s.bounds
}

// Animating reports whether the ball is moving.
func (s *Session) Animating() bool {
	return s.animating
}

// Prompted reports whether this session already asked for a name.
func (s *Session) Prompted() bool {
	return s.prompted
}

// PromptRemaining returns how long the name prompt stays open, 0 if untimed.
func (s *Session) PromptRemaining() time.Duration {
	return s.prompt.Remaining()
}

// LastOutcome returns how the previous session ended, or nil.
func (s *Session) LastOutcome() *Outcome {
	return s.last
}

// HighScores returns the high-score table, highest first.
func (s *Session) HighScores() []Entry {
	return s.table.Sorted()
}

// Best returns the stored score for a name.
func (s *Session) Best(name string) int {
	return s.table.Best(name)
}
