package keepups

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/keepups/internal/core"
)

const startButton = "[ Start Game ]"

var logo = []string{
	` _  __                   _   _           `,
	`| |/ /___  ___ _ __     | | | |_ __  ___ `,
	`| ' // _ \/ _ \ '_ \____| | | | '_ \/ __|`,
	`| . \  __/  __/ |_) |___| |_| | |_) \__ \`,
	`|_|\_\___|\___| .__/     \___/| .__/|___/`,
	`              |_|             |_|        `,
}

var smallLogo = []string{"K E E P - U P S"}

// logoFor picks the logo that fits the screen width.
func logoFor(width int) []string {
	if width >= len(logo[0]) {
		return logo
	}
	return smallLogo
}

// Visual characters for rendering
const (
	BallChar       = '█'
	BallTopCorner  = '▄'
	BallLowCorner  = '▀'
	GroundChar     = '═'
	maxListedNames = 10
)

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.session.State() {
	case StateNotStarted:
		g.renderStart(dst)
	case StateStarted:
		g.renderPlay(dst)
	case StateAwaitingName:
		g.renderPlay(dst)
		g.drawCenteredMessage(dst,
			"GAME OVER",
			fmt.Sprintf("Keep-ups: %d", g.session.Score()),
			"Enter your name below (Esc to skip)",
		)
	}
}

// renderStart draws the logo, the start button and the high-score list.
func (g *Game) renderStart(dst *core.Screen) {
	y := g.layout.logoTop
	for _, line := range logoFor(dst.Width()) {
		dst.DrawTextCentered(y, line, core.ColorOrange)
		y++
	}

	dst.DrawTextColored(g.layout.button.X, g.layout.button.Y, startButton, core.ColorBrightGreen)
	y = g.layout.button.Bottom() + 1

	dst.DrawTextCentered(y, "High Scores:", core.ColorYellow)
	y++

	scores := g.session.HighScores()
	if len(scores) == 0 {
		dst.DrawTextCentered(y, "none yet", core.ColorGray)
		y++
	}

	// Keep the last row for the previous result
	room := core.Min(maxListedNames, dst.Height()-y-1)
	for i, e := range scores {
		if i >= room {
			dst.DrawTextCentered(y, fmt.Sprintf("... and %d more", len(scores)-i), core.ColorGray)
			break
		}
		dst.DrawTextCentered(y, fmt.Sprintf("%s: %d", e.Name, e.Score), core.ColorWhite)
		y++
	}

	if msg := g.lastOutcomeMessage(); msg != "" {
		dst.DrawTextCentered(dst.Height()-1, msg, core.ColorCyan)
	}
}

func (g *Game) lastOutcomeMessage() string {
	out := g.session.LastOutcome()
	if out == nil {
		return ""
	}

	switch {
	case out.Name != "" && out.NewBest:
		return fmt.Sprintf("New best for %s: %d", out.Name, out.Score)
	case out.Name != "":
		return fmt.Sprintf("%s scored %d (best %d)", out.Name, out.Score, g.session.Best(out.Name))
	case out.TimedOut:
		return fmt.Sprintf("Last game: %d (name prompt timed out)", out.Score)
	default:
		return fmt.Sprintf("Last game: %d", out.Score)
	}
}

// renderPlay draws the title, the counter, the ball and the ground.
func (g *Game) renderPlay(dst *core.Screen) {
	dst.DrawTextCentered(0, gameTitle, core.ColorBrightWhite)
	dst.DrawTextCentered(1, fmt.Sprintf("Keep-ups: %d", g.session.Score()), core.ColorBrightYellow)

	if g.session.Score() == 0 {
		dst.DrawTextCentered(g.layout.field.Y+g.layout.field.H/2, "Click the ball to kick it", core.ColorGray)
	}

	g.drawBall(dst, g.ballRect())
	dst.DrawHLine(0, g.layout.field.Bottom(), dst.Width(), GroundChar, core.ColorGreen)
}

// drawBall fills the ball's cells, rounding the corners when it is big enough.
func (g *Game) drawBall(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, BallChar, core.ColorBrightWhite)
	if r.W < 3 || r.H < 2 {
		return
	}

	dst.SetColored(r.X, r.Y, BallTopCorner, core.ColorBrightWhite)
	dst.SetColored(r.Right()-1, r.Y, BallTopCorner, core.ColorBrightWhite)
	dst.SetColored(r.X, r.Bottom()-1, BallLowCorner, core.ColorBrightWhite)
	dst.SetColored(r.Right()-1, r.Bottom()-1, BallLowCorner, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}

	boxW := inner + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)

	for i, l := range lines {
		pad := (inner - utf8.RuneCountInString(l)) / 2
		dst.DrawText(box.X+2+pad, box.Y+1+i*2, strings.TrimRight(l, " "))
	}
}
