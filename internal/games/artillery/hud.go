package artillery

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// HUD colors.
const (
	HUDColor         = core.ColorBrightWhite
	HUDGameOverColor = core.ColorSalmon
)

// hudStatus is every value shown in the status line.
type hudStatus struct {
	ammo    int
	speed   int
	angle   int
	score   int
	playing bool
}

// hud is the cached status line.
type hud struct {
	status hudStatus
	text   string
	color  core.Color
}

func (g *Game) status() hudStatus {
	return hudStatus{
		ammo:    g.ammo,
		speed:   g.speed,
		angle:   g.angle,
		score:   g.score,
		playing: g.playing,
	}
}

// refreshHUD rebuilds the status line only when a shown value changed.
func (g *Game) refreshHUD() {
	if g.status() != g.hud.status {
		g.rebuildHUD()
	}
}

func (g *Game) rebuildHUD() {
	st := g.status()
	color := HUDColor
	if !st.playing {
		color = HUDGameOverColor
	}
	g.hud = hud{status: st, text: formatHUD(st), color: color}
	g.hudBuilds++
}

// formatHUD renders the status line: the ammunition gauge, one '<' per
// missile right-aligned in a fixed-width bracket, then speed, angle in
// degrees and score.
func formatHUD(st hudStatus) string {
	gauge := strings.Repeat("<", core.Clamp(st.ammo, 0, MaxAmmo))
	return fmt.Sprintf("[%30s]   speed:%3d  angle:%3.1f  score: %d",
		gauge, st.speed, float64(st.angle)/10.0, st.score)
}

// HUD returns the current status line and its color.
func (g *Game) HUD() (string, core.Color) {
	return g.hud.text, g.hud.color
}
