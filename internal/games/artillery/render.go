package artillery

import (
	"fmt"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// HUD position in playfield pixels.
const (
	HUDX = 20
	HUDY = 20
)

// Render draws the current game state to the screen: the HUD first, then
// missiles, then tanks on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.Viewport{W: FieldWidth, H: FieldHeight}

	x, y := vp.ToScreen(dst, HUDX, HUDY)
	text, color := g.HUD()
	dst.DrawText(x, y, text, color)

	var missile *core.Sprite
	if g.res != nil {
		missile = g.res.Missile
	}
	for _, m := range g.missiles {
		if m.Live() {
			dst.Blit(missile, m.Rect(), vp)
		}
	}
	for _, t := range g.tanks {
		if !t.Removed() {
			dst.Blit(t.Sprite(), t.Rect(), vp)
		}
	}

	if !g.playing {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, HUDGameOverColor)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, HUDGameOverColor)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, HUDColor)
}
