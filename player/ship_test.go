package player

import (
	"math"
	"testing"

	"meteorstorm/geom"
)

func near(a, b geom.Vector2) bool {
	return a.Distance(b) < 1e-9
}

func TestNewShipHitbox(t *testing.T) {
	s := NewShip(DefaultConfig())
	hb := s.Hitbox()

	if !near(hb.Point1, geom.Vec(400, 281.5)) {
		t.Errorf("Expected nose at (400, 281.5), got %+v", hb.Point1)
	}
	if !near(hb.Point2, geom.Vec(375.5, 318.5)) {
		t.Errorf("Expected left corner at (375.5, 318.5), got %+v", hb.Point2)
	}
	if !near(hb.Point3, geom.Vec(424.5, 318.5)) {
		t.Errorf("Expected right corner at (424.5, 318.5), got %+v", hb.Point3)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		direction geom.Vector2
		wantPos   geom.Vector2
		wantAngle float64
	}{
		{"Idle", geom.Zero, geom.Vec(400, 300), 0},
		{"Up", geom.Vec(0, -1), geom.Vec(400, 225), 0},
		{"Right", geom.Vec(1, 0), geom.Vec(475, 300), math.Pi / 2},
		{"Left", geom.Vec(-1, 0), geom.Vec(325, 300), 3 * math.Pi / 2},
		{"Down faces up", geom.Vec(0, 1), geom.Vec(400, 375), 0},
		{"Diagonal normalized", geom.Vec(3, 4), geom.Vec(445, 360), math.Atan2(0.8, 0.6) + math.Pi/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShip(DefaultConfig())
			s.Move(tt.direction, 1)
			if !near(s.Position, tt.wantPos) {
				t.Errorf("Expected position %+v, got %+v", tt.wantPos, s.Position)
			}
			if math.Abs(s.Angle-tt.wantAngle) > 1e-9 {
				t.Errorf("Expected angle %v, got %v", tt.wantAngle, s.Angle)
			}
		})
	}
}

func TestHitboxFollowsHeading(t *testing.T) {
	s := NewShip(DefaultConfig())
	s.Move(geom.Vec(1, 0), 0)

	// Facing right: the nose points along +X
	nose := s.Hitbox().Point1
	if !near(nose, geom.Vec(418.5, 300)) {
		t.Errorf("Expected nose at (418.5, 300), got %+v", nose)
	}

	circleAhead := geom.BoundingCircle{Center: geom.Vec(420, 300), Radius: 2}
	if !s.Hitbox().CollidesWith(circleAhead) {
		t.Errorf("Expected circle at the nose to collide")
	}
}

func TestClampToBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = geom.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	s := NewShip(cfg)

	s.Move(geom.Vec(1, 0), 100)
	if s.Position.X != 800 {
		t.Errorf("Expected ship clamped at x=800, got %v", s.Position.X)
	}
}

func TestTakeDamage(t *testing.T) {
	s := NewShip(DefaultConfig())

	if s.TakeDamage(100) || s.TakeDamage(100) {
		t.Fatalf("Expected ship to survive two hits")
	}
	if !s.TakeDamage(100) {
		t.Fatalf("Expected third hit to kill the ship")
	}
	if !s.Dead || s.Health != 0 {
		t.Errorf("Expected dead ship with 0 health, got dead=%v health=%d", s.Dead, s.Health)
	}
	if s.TakeDamage(100) {
		t.Errorf("Expected no second death report")
	}

	s.Reset()
	if s.Dead || s.Health != 300 {
		t.Errorf("Expected reset to restore the ship")
	}
}
