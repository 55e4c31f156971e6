package keepups

// Ball is the football's position and velocity in pixel space.
// Top grows downward; velocity is in pixels per frame.
type Ball struct {
	Top, Left float64
	VX, VY    float64
}

// Bounds is the play field the ball moves in.
type Bounds struct {
	Width    float64 // Container width in pixels
	Height   float64 // Container height in pixels
	BallSize float64 // Ball diameter in pixels
}

// MaxTop is the largest top offset before the ball touches the floor.
func (b Bounds) MaxTop() float64 {
	return b.Height - b.BallSize
}

// MaxLeft is the largest left offset before the ball touches the right wall.
func (b Bounds) MaxLeft() float64 {
	return b.Width - b.BallSize
}

// Contains reports whether the pixel (x, y) lies on a ball with the given position.
func (b Bounds) Contains(ball Ball, x, y float64) bool {
	return x >= ball.Left && x < ball.Left+b.BallSize &&
		y >= ball.Top && y < ball.Top+b.BallSize
}

// CollisionSide indicates which boundary the ball hit during a step.
type CollisionSide uint8

const (
	CollisionNone    CollisionSide = 0
	CollisionCeiling CollisionSide = 1 << iota
	CollisionFloor
	CollisionLeft
	CollisionRight
)

// Has reports whether s includes side.
func (s CollisionSide) Has(side CollisionSide) bool {
	return s&side != 0
}

// Physics holds the per-frame constants.
type Physics struct {
	Gravity  float64
	Friction float64
}

// Step advances the ball by one frame.
//
// The ball moves by its current velocity, then gravity and friction are
// applied to the velocity. A ball reaching a boundary is clamped onto it and
// the matching velocity component is reflected. The returned side set tells
// the caller which boundaries were reached; a floor contact ends the session.
func (p Physics) Step(ball Ball, bounds Bounds) (Ball, CollisionSide) {
	next := Ball{
		Top:  ball.Top + ball.VY,
		Left: ball.Left + ball.VX,
		VX:   ball.VX * p.Friction,
		VY:   (ball.VY + p.Gravity) * p.Friction,
	}

	var hit CollisionSide

	if next.Top <= 0 {
		next.Top = 0
		next.VY = -next.VY
		hit |= CollisionCeiling
	} else if next.Top >= bounds.MaxTop() {
		next.Top = bounds.MaxTop()
		next.VY = -next.VY
		hit |= CollisionFloor
	}

	if next.Left <= 0 {
		next.Left = 0
		next.VX = -next.VX
		hit |= CollisionLeft
	} else if next.Left >= bounds.MaxLeft() {
		next.Left = bounds.MaxLeft()
		next.VX = -next.VX
		hit |= CollisionRight
	}

	return next, hit
}
