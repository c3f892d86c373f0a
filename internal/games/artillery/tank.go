package artillery

import (
	"time"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// TankState is the lifecycle stage of a tank.
type TankState int

const (
	TankAlive TankState = iota
	TankBurning
	TankRemoved
)

func (s TankState) String() string {
	switch s {
	case TankAlive:
		return "alive"
	case TankBurning:
		return "burning"
	case TankRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Tank is a stationary target. The player's own tank is a Tank too.
type Tank struct {
	Pos    core.Vec // Center
	state  TankState
	sprite *core.Sprite
	res    *Resources
	hitAt  time.Time
	rect   core.Rect
}

// NewTank creates a live tank centered at pos.
func NewTank(res *Resources, pos core.Vec) *Tank {
	t := &Tank{Pos: pos, res: res}
	if res != nil {
		t.sprite = res.TankBody
	}
	t.updateRect()
	return t
}

// State returns the lifecycle stage.
func (t *Tank) State() TankState {
	return t.state
}

// Removed reports whether the tank has left the game.
func (t *Tank) Removed() bool {
	return t.state == TankRemoved
}

// Rect returns the collision rectangle.
func (t *Tank) Rect() core.Rect {
	return t.rect
}

// Sprite returns the image currently shown for the tank.
func (t *Tank) Sprite() *core.Sprite {
	return t.sprite
}

// Update refreshes the collision rectangle and removes a tank that has
// burned long enough.
func (t *Tank) Update(now time.Time) {
	t.updateRect()
	t.ConsiderRemoving(now)
}

func (t *Tank) updateRect() {
	x, y := t.Pos.Rounded()
	t.rect = core.RectAround(x, y, TankWidth, TankHeight)
}

// WasHitBy records a missile hit at now. The tank shows flames from the
// first hit on. It returns true only for the first hit, so a burning tank
// absorbs further missiles without counting them.
func (t *Tank) WasHitBy(now time.Time) bool {
	if t.res != nil && t.res.TankBurning != nil {
		t.sprite = t.res.TankBurning
	}
	if t.state != TankAlive {
		return false
	}
	t.state = TankBurning
	t.hitAt = now
	return true
}

// ConsiderRemoving removes the tank once more than BurnTime has passed
// since its first hit. It reports whether the tank is removed.
func (t *Tank) ConsiderRemoving(now time.Time) bool {
	if t.state == TankBurning && now.After(t.hitAt.Add(BurnTime)) {
		t.state = TankRemoved
	}
	return t.state == TankRemoved
}
