package artillery

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// MissileState is the lifecycle stage of a missile.
type MissileState int

const (
	MissileInFlight MissileState = iota
	MissileExploded
	MissileOutOfBounds
)

func (s MissileState) String() string {
	switch s {
	case MissileInFlight:
		return "in-flight"
	case MissileExploded:
		return "exploded"
	case MissileOutOfBounds:
		return "out-of-bounds"
	default:
		return "unknown"
	}
}

// Missile is a projectile under constant-increment gravity.
type Missile struct {
	Pos        core.Vec
	direction  float64 // Radians; 0 points down the screen
	speed      float64
	gravity    float64 // Downward offset added per update, grows every update
	born       time.Time
	lastUpdate time.Time
	state      MissileState
	res        *Resources
	rect       core.Rect
}

// NewMissile launches a missile from launch. angle is in tenths of a
// degree with 0 straight up and positive values turning right; speed is
// the HUD launch speed. The launch sound plays immediately.
func NewMissile(res *Resources, launch core.Vec, angle, speed int, now time.Time) *Missile {
	d := -(float64(angle)*math.Pi/1800 + math.Pi)
	m := &Missile{
		Pos:        launch.Add(core.Vec{X: math.Sin(d), Y: math.Cos(d)}),
		direction:  d,
		speed:      float64(speed) / SpeedDivisor,
		born:       now,
		lastUpdate: now,
		res:        res,
	}
	m.updateRect()
	res.play(core.SoundLaunch)
	return m
}

// State returns the lifecycle stage.
func (m *Missile) State() MissileState {
	return m.state
}

// Live reports whether the missile is still in flight.
func (m *Missile) Live() bool {
	return m.state == MissileInFlight
}

// Rect returns the collision rectangle.
func (m *Missile) Rect() core.Rect {
	return m.rect
}

// Armed reports whether the missile is old enough to collide.
func (m *Missile) Armed(now time.Time) bool {
	return now.Sub(m.born) >= ArmingDelay
}

// Update advances the missile by the real time elapsed since the previous
// update. One step is StepDuration of elapsed time.
func (m *Missile) Update(now time.Time) {
	m.gravity += GravityStep
	step := float64(now.Sub(m.lastUpdate).Microseconds()) / float64(StepDuration.Microseconds())
	dist := m.speed * MoveScale * step

	m.Pos.X += math.Sin(m.direction) * dist
	m.Pos.Y += math.Cos(m.direction)*dist + m.gravity
	m.lastUpdate = now
	m.updateRect()
}

func (m *Missile) updateRect() {
	x, y := m.Pos.Rounded()
	w, h := m.res.missileSize()
	m.rect = core.RectAround(x, y, w, h)
}

// HasHit explodes the missile on t.
func (m *Missile) HasHit(t *Tank) {
	m.res.play(core.SoundExplosion)
	m.state = MissileExploded
}

// ConsiderRemoving marks the missile out of bounds once it leaves field
// extended by the removal margins. It reports whether it was removed.
func (m *Missile) ConsiderRemoving(field core.Rect) bool {
	x, y := m.Pos.X, m.Pos.Y
	inX := float64(field.X-MarginX) < x && x < float64(field.Right()+MarginX)
	inY := float64(field.Y-MarginTop) < y && y < float64(field.Bottom()+MarginBottom)
	if !inX || !inY {
		m.state = MissileOutOfBounds
		return true
	}
	return false
}
