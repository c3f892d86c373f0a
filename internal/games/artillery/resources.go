package artillery

import (
	"github.com/vovakirdan/tui-artillery/internal/assets"
	"github.com/vovakirdan/tui-artillery/internal/core"
)

// Resources are the shared images and sound output handed to every entity.
// Any field may be nil: a nil sprite is not drawn and a nil player is silent.
type Resources struct {
	TankBody    *core.Sprite
	TankBurning *core.Sprite
	Missile     *core.Sprite
	Sounds      core.SoundPlayer
}

// NewResources builds game resources from a loaded asset registry.
func NewResources(reg *assets.Registry, sounds core.SoundPlayer) *Resources {
	return &Resources{
		TankBody:    reg.TankBody,
		TankBurning: reg.TankBurning,
		Missile:     reg.Missile,
		Sounds:      sounds,
	}
}

func (r *Resources) play(s core.Sound) {
	if r == nil || r.Sounds == nil {
		return
	}
	r.Sounds.Play(s)
}

// missileSize returns the collision size of a missile.
func (r *Resources) missileSize() (int, int) {
	if r == nil || r.Missile == nil {
		return 1, 1
	}
	return r.Missile.W, r.Missile.H
}
