// Package keepups implements Football Keep-Ups: click the ball to keep it in
// the air; the session ends when it touches the ground.
package keepups

import (
	"context"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepups/internal/config"
	"github.com/vovakirdan/keepups/internal/core"
)

const (
	gameID    = "keepups"
	gameTitle = "Football Keep-Ups"

	hudRows = 2 // Title and counter above the field
)

// Options configures a Game.
type Options struct {
	Config     config.Config
	Repository Repository
	History    HistoryRecorder
	Logger     *log.Logger
}

// Game adapts a Session to the platform: it maps screen cells to the pixel
// field, turns input frames into kicks and draws the screens.
type Game struct {
	ctx     context.Context
	cfg     config.Config
	session *Session
	runtime core.RuntimeConfig
	layout  layout
}

// layout holds the screen regions for the current terminal size.
type layout struct {
	width, height int
	field         core.Rect // Play field in cells
	button        core.Rect // "Start Game" button on the start screen
	logoTop       int
}

// New creates a game and loads the high-score table.
func New(ctx context.Context, opts Options) *Game {
	g := &Game{
		ctx: ctx,
		cfg: opts.Config,
		session: NewSession(ctx, SessionOptions{
			Config:     opts.Config,
			Repository: opts.Repository,
			History:    opts.History,
			Logger:     opts.Logger,
		}),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset applies a runtime config: screen size and RNG seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.session.Reseed(cfg.Seed)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the play field to a new screen size without ending the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.layout = newLayout(width, height)
	g.session.SetBounds(Bounds{
		Width:    float64(g.layout.field.W) * g.cfg.Field.CellWidth,
		Height:   float64(g.layout.field.H) * g.cfg.Field.CellHeight,
		BallSize: g.cfg.Ball.Size,
	})
}

func newLayout(width, height int) layout {
	l := layout{width: width, height: height}

	// Rows: title, counter, field..., ground
	l.field = core.NewRect(0, hudRows, width, core.Max(height-hudRows-1, 1))

	l.logoTop = 1
	logoH := len(logoFor(width))
	btnW := len(startButton)
	l.button = core.NewRect((width-btnW)/2, l.logoTop+logoH+1, btnW, 1)

	return l
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.session.State() {
	case StateNotStarted:
		if in.Has(core.ActionStart) || g.clickedAny(in, g.layout.button) {
			g.session.Start()
		}

	case StateStarted:
		for _, c := range in.Clicks {
			if g.ballRect().Contains(c.X, c.Y) {
				g.session.Kick()
			}
		}
		if g.cfg.Input.KeyboardKick && in.Has(core.ActionKick) {
			g.session.Kick()
		}
	}

	g.session.Tick(g.ctx, g.runtime.TickInterval())

	return core.StepResult{State: g.State()}
}

func (g *Game) clickedAny(in core.InputFrame, r core.Rect) bool {
	for _, c := range in.Clicks {
		if r.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
}

// ballRect returns the cells covered by the ball.
func (g *Game) ballRect() core.Rect {
	b := g.session.Ball()
	cw, ch := g.cfg.Field.CellWidth, g.cfg.Field.CellHeight
	size := g.cfg.Ball.Size

	return core.NewRect(
		g.layout.field.X+int(math.Floor(b.Left/cw)),
		g.layout.field.Y+int(math.Floor(b.Top/ch)),
		core.Max(int(math.Ceil(size/cw)), 1),
		core.Max(int(math.Ceil(size/ch)), 1),
	)
}

// SubmitName answers the end-of-session name prompt.
func (g *Game) SubmitName(name string) error {
	return g.session.SubmitName(g.ctx, name)
}

// CancelName dismisses the end-of-session name prompt.
func (g *Game) CancelName() {
	g.session.CancelName(g.ctx)
}

// Teardown stops the frame loop and pending timers before the program exits.
func (g *Game) Teardown() {
	g.session.Teardown()
}

// Session exposes the underlying session state machine.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := core.PhaseMenu
	switch g.session.State() {
	case StateStarted:
		phase = core.PhasePlaying
	case StateAwaitingName:
		phase = core.PhaseAwaitingName
	}

	return core.GameState{
		Phase:     phase,
		Score:     g.session.Score(),
		Animating: g.session.Animating(),
	}
}
