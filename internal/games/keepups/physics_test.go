package keepups

import (
	"math"
	"testing"
)

var testPhysics = Physics{Gravity: 0.5, Friction: 0.67}

var testBounds = Bounds{Width: 640, Height: 320, BallSize: 32}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepFreeFlight(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
	}{
		{"at rest", Ball{Top: 50, Left: 50}},
		{"kicked up", Ball{Top: 150, Left: 300, VX: 3.2, VY: -10}},
		{"falling left", Ball{Top: 100, Left: 200, VX: -4.9, VY: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, hit := testPhysics.Step(tc.ball, testBounds)

			if hit != CollisionNone {
				t.Fatalf("unexpected collision %v", hit)
			}
			if !almostEqual(next.Top, tc.ball.Top+tc.ball.VY) {
				t.Errorf("Top = %v, expected %v", next.Top, tc.ball.Top+tc.ball.VY)
			}
			if !almostEqual(next.Left, tc.ball.Left+tc.ball.VX) {
				t.Errorf("Left = %v, expected %v", next.Left, tc.ball.Left+tc.ball.VX)
			}
			if want := (tc.ball.VY + 0.5) * 0.67; !almostEqual(next.VY, want) {
				t.Errorf("VY = %v, expected %v", next.VY, want)
			}
			if want := tc.ball.VX * 0.67; !almostEqual(next.VX, want) {
				t.Errorf("VX = %v, expected %v", next.VX, want)
			}
		})
	}
}

func TestStepCollisions(t *testing.T) {
	tests := []struct {
		name     string
		ball     Ball
		wantHit  CollisionSide
		wantTop  float64
		wantLeft float64
		flipX    bool
		flipY    bool
	}{
		{
			name:     "ceiling",
			ball:     Ball{Top: 4, Left: 100, VY: -10},
			wantHit:  CollisionCeiling,
			wantTop:  0,
			wantLeft: 100,
			flipY:    true,
		},
		{
			name:     "exactly at ceiling",
			ball:     Ball{Top: 0, Left: 100},
			wantHit:  CollisionCeiling,
			wantTop:  0,
			wantLeft: 100,
			flipY:    true,
		},
		{
			name:     "floor",
			ball:     Ball{Top: 287, Left: 100, VY: 2},
			wantHit:  CollisionFloor,
			wantTop:  288,
			wantLeft: 100,
			flipY:    true,
		},
		{
			name:     "left wall",
			ball:     Ball{Top: 100, Left: 2, VX: -5},
			wantHit:  CollisionLeft,
			wantTop:  100,
			wantLeft: 0,
			flipX:    true,
		},
		{
			name:     "right wall",
			ball:     Ball{Top: 100, Left: 605, VX: 5},
			wantHit:  CollisionRight,
			wantTop:  100,
			wantLeft: 608,
			flipX:    true,
		},
		{
			name:     "floor corner",
			ball:     Ball{Top: 300, Left: 620, VX: 1, VY: 1},
			wantHit:  CollisionFloor | CollisionRight,
			wantTop:  288,
			wantLeft: 608,
			flipX:    true,
			flipY:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, hit := testPhysics.Step(tc.ball, testBounds)

			if hit != tc.wantHit {
				t.Errorf("hit = %b, expected %b", hit, tc.wantHit)
			}
			if next.Top != tc.wantTop || next.Left != tc.wantLeft {
				t.Errorf("position = (%v, %v), expected (%v, %v)", next.Top, next.Left, tc.wantTop, tc.wantLeft)
			}

			freeVX := tc.ball.VX * 0.67
			freeVY := (tc.ball.VY + 0.5) * 0.67
			if tc.flipX {
				freeVX = -freeVX
			}
			if tc.flipY {
				freeVY = -freeVY
			}
			if !almostEqual(next.VX, freeVX) || !almostEqual(next.VY, freeVY) {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", next.VX, next.VY, freeVX, freeVY)
			}
		})
	}
}

func TestStepKeepsBallInBounds(t *testing.T) {
	ball := Ball{Top: 160, Left: 300, VX: 4.7, VY: -10}

	for i := 0; i < 500; i++ {
		var hit CollisionSide
		ball, hit = testPhysics.Step(ball, testBounds)

		if ball.Top < 0 || ball.Top > testBounds.MaxTop() {
			t.Fatalf("step %d: top %v out of [0, %v]", i, ball.Top, testBounds.MaxTop())
		}
		if ball.Left < 0 || ball.Left > testBounds.MaxLeft() {
			t.Fatalf("step %d: left %v out of [0, %v]", i, ball.Left, testBounds.MaxLeft())
		}
		if hit.Has(CollisionFloor) {
			return
		}
	}
	t.Error("ball never reached the floor")
}

func TestBoundsContains(t *testing.T) {
	ball := Ball{Top: 10, Left: 20}

	if !testBounds.Contains(ball, 20, 10) {
		t.Error("top-left pixel should be on the ball")
	}
	if !testBounds.Contains(ball, 51, 41) {
		t.Error("bottom-right pixel should be on the ball")
	}
	if testBounds.Contains(ball, 52, 20) {
		t.Error("pixel past the right edge should miss")
	}
	if testBounds.Contains(ball, 30, 9) {
		t.Error("pixel above the ball should miss")
	}
}
