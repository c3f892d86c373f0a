package artillery

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
)

const frame = 5 * time.Millisecond

// newTestGame creates a reset game with a manual clock.
func newTestGame(cfg config.GameConfig, sounds core.SoundPlayer, seed int64) (*Game, *core.ManualClock) {
	clock := core.NewManualClock(epoch)
	g := New(cfg, testResources(sounds), clock)
	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60, Seed: seed})
	return g, clock
}

// emptyField returns the default session setup without enemies.
func emptyField() config.GameConfig {
	cfg := config.DefaultConfig().Game
	cfg.Enemies = 0
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func repeat(a core.Action, n int) core.InputFrame {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in.Set(a)
	}
	return in
}

// step advances the clock by one frame and steps the game.
func step(g *Game, clock *core.ManualClock, in core.InputFrame) core.StepResult {
	clock.Advance(frame)
	return g.Step(in)
}

func TestReset(t *testing.T) {
	g, _ := newTestGame(config.DefaultConfig().Game, nil, 42)
	snap := g.Snapshot()

	if snap.Angle != 450 || snap.Speed != 50 || snap.Ammo != 10 || snap.Score != 0 || !snap.Playing {
		t.Errorf("initial state = %+v", snap)
	}
	if snap.Tanks != 11 {
		t.Errorf("Tanks = %d, expected 11", snap.Tanks)
	}
	if snap.TankData[0] != 100 || snap.TankData[1] != 500 {
		t.Errorf("player at (%d, %d), expected (100, 500)", snap.TankData[0], snap.TankData[1])
	}
	for i := 2; i < len(snap.TankData); i += 2 {
		x, y := snap.TankData[i], snap.TankData[i+1]
		if x < EnemyMinX || x > EnemyMaxX || y < EnemyMinY || y > EnemyMaxY {
			t.Errorf("enemy at (%d, %d) outside placement range", x, y)
		}
	}
}

func TestSpeedClamp(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)

	step(g, clock, repeat(core.ActionSpeedUp, 5))
	if g.Speed() != 55 {
		t.Errorf("Speed() = %d, expected 55", g.Speed())
	}
	step(g, clock, repeat(core.ActionSpeedUp, 100))
	if g.Speed() != MaxSpeed {
		t.Errorf("Speed() = %d, expected %d", g.Speed(), MaxSpeed)
	}
	step(g, clock, repeat(core.ActionSpeedDown, 100))
	if g.Speed() != MinSpeed {
		t.Errorf("Speed() = %d, expected %d", g.Speed(), MinSpeed)
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		angle, delta, want int
	}{
		{450, 3, 453},
		{450, -3, 447},
		{0, -3, -3},
		{-3, 3, 0},
		{899, 3, 900},
		{900, 3, 900},
		{-899, -3, -900},
		{-900, -3, -900},
	}
	for _, tc := range tests {
		if got := turn(tc.angle, tc.delta); got != tc.want {
			t.Errorf("turn(%d, %d) = %d, expected %d", tc.angle, tc.delta, got, tc.want)
		}
	}
}

func TestAngleStaysInRange(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)

	for i := 0; i < 700; i++ {
		step(g, clock, input(core.ActionAimLeft))
		if a := g.Angle(); a < MinAngle || a > MaxAngle {
			t.Fatalf("Angle() = %d after %d left turns, outside [%d, %d]", a, i+1, MinAngle, MaxAngle)
		}
	}
	if g.Angle() != MinAngle {
		t.Errorf("Angle() = %d, expected %d", g.Angle(), MinAngle)
	}

	step(g, clock, repeat(core.ActionAimRight, 1000))
	if g.Angle() != MaxAngle {
		t.Errorf("Angle() = %d, expected %d", g.Angle(), MaxAngle)
	}
}

func TestFireConsumesAmmo(t *testing.T) {
	rec := &recorder{}
	g, clock := newTestGame(emptyField(), rec, 1)

	step(g, clock, input(core.ActionFire))
	if g.Ammo() != 9 {
		t.Errorf("Ammo() = %d, expected 9", g.Ammo())
	}
	if n := g.Snapshot().Missiles; n != 1 {
		t.Errorf("Missiles = %d, expected 1", n)
	}

	// More fire presses than ammunition
	step(g, clock, repeat(core.ActionFire, 20))
	if g.Ammo() != 0 {
		t.Errorf("Ammo() = %d, expected 0", g.Ammo())
	}
	if n := g.Snapshot().Missiles; n != 10 {
		t.Errorf("Missiles = %d, expected 10", n)
	}

	// Firing with no ammunition is a no-op
	before := g.Snapshot().Missiles
	step(g, clock, input(core.ActionFire))
	if g.Ammo() != 0 || g.Snapshot().Missiles != before {
		t.Errorf("fire at 0 ammo changed state: ammo=%d missiles=%d", g.Ammo(), g.Snapshot().Missiles)
	}
	if got := rec.count(core.SoundLaunch); got != 10 {
		t.Errorf("launch sounds = %d, expected 10", got)
	}
}

func TestRefill(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)

	clock.Advance(RefillInterval - frame)
	step(g, clock, core.NewInputFrame())
	if g.Ammo() != 10 {
		t.Errorf("Ammo() = %d at exactly the interval, expected 10", g.Ammo())
	}
	step(g, clock, core.NewInputFrame())
	if g.Ammo() != 11 {
		t.Errorf("Ammo() = %d after the interval, expected 11", g.Ammo())
	}
	step(g, clock, core.NewInputFrame())
	if g.Ammo() != 11 {
		t.Errorf("Ammo() = %d right after a refill, expected 11", g.Ammo())
	}
}

func TestRefillCap(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)
	g.ammo = MaxAmmo

	clock.Advance(10 * time.Second)
	step(g, clock, core.NewInputFrame())
	if g.Ammo() != MaxAmmo {
		t.Errorf("Ammo() = %d, expected cap %d", g.Ammo(), MaxAmmo)
	}

	// The timer was not restarted while full, so a shot is replaced at once
	step(g, clock, input(core.ActionFire))
	if g.Ammo() != MaxAmmo-1 {
		t.Errorf("Ammo() = %d after firing, expected %d", g.Ammo(), MaxAmmo-1)
	}
	step(g, clock, core.NewInputFrame())
	if g.Ammo() != MaxAmmo {
		t.Errorf("Ammo() = %d after refill, expected %d", g.Ammo(), MaxAmmo)
	}
}

func TestInputIgnoredAfterGameOver(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)
	g.playing = false

	step(g, clock, input(core.ActionSpeedUp, core.ActionAimRight, core.ActionFire))
	snap := g.Snapshot()
	if snap.Speed != 50 || snap.Angle != 450 || snap.Ammo != 10 || snap.Missiles != 0 {
		t.Errorf("input applied after game over: %+v", snap)
	}
	if res := step(g, clock, core.NewInputFrame()); !res.State.GameOver {
		t.Error("State.GameOver = false, expected true")
	}
}

// placeMissile adds a missile born at epoch centered at pos.
func placeMissile(g *Game, pos core.Vec) *Missile {
	m := NewMissile(g.res, pos, 0, 50, epoch)
	m.Pos = pos
	m.updateRect()
	g.missiles = append(g.missiles, m)
	return m
}

func placeTank(g *Game, pos core.Vec) *Tank {
	t := NewTank(g.res, pos)
	g.tanks = append(g.tanks, t)
	return t
}

func TestArmingDelay(t *testing.T) {
	g, _ := newTestGame(emptyField(), nil, 1)
	enemy := placeTank(g, core.Vec{X: 600, Y: 300})
	m := placeMissile(g, core.Vec{X: 600, Y: 300})

	g.resolveCollisions(epoch.Add(79 * time.Millisecond))
	if !m.Live() || enemy.State() != TankAlive || g.score != 0 {
		t.Fatalf("missile younger than the arming delay collided")
	}

	g.resolveCollisions(epoch.Add(ArmingDelay))
	if m.State() != MissileExploded {
		t.Errorf("missile State() = %v, expected exploded", m.State())
	}
	if enemy.State() != TankBurning {
		t.Errorf("enemy State() = %v, expected burning", enemy.State())
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
}

func TestOutOfBoundsBeforeCollision(t *testing.T) {
	g, _ := newTestGame(emptyField(), nil, 1)
	enemy := placeTank(g, core.Vec{X: -150, Y: 300})
	m := placeMissile(g, core.Vec{X: -150, Y: 300})

	g.resolveCollisions(epoch.Add(time.Second))
	if m.State() != MissileOutOfBounds {
		t.Errorf("missile State() = %v, expected out-of-bounds", m.State())
	}
	if enemy.State() != TankAlive || g.score != 0 {
		t.Error("out-of-bounds missile should not collide")
	}
	if g.expired != 1 {
		t.Errorf("expired = %d, expected 1", g.expired)
	}
}

func TestBurningTankAbsorbsMissiles(t *testing.T) {
	rec := &recorder{}
	g, _ := newTestGame(emptyField(), rec, 1)
	enemy := placeTank(g, core.Vec{X: 600, Y: 300})

	placeMissile(g, core.Vec{X: 600, Y: 300})
	g.resolveCollisions(epoch.Add(time.Second))
	second := placeMissile(g, core.Vec{X: 605, Y: 305})
	g.resolveCollisions(epoch.Add(time.Second + frame))

	if second.State() != MissileExploded {
		t.Errorf("second missile State() = %v, expected exploded", second.State())
	}
	if enemy.State() != TankBurning {
		t.Errorf("enemy State() = %v, expected burning", enemy.State())
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	if got := rec.count(core.SoundExplosion); got != 2 {
		t.Errorf("explosion sounds = %d, expected 2", got)
	}
}

func TestOneMissileHitsOverlappingTanks(t *testing.T) {
	g, _ := newTestGame(emptyField(), nil, 1)
	placeTank(g, core.Vec{X: 600, Y: 300})
	placeTank(g, core.Vec{X: 610, Y: 310})
	placeMissile(g, core.Vec{X: 605, Y: 305})

	g.resolveCollisions(epoch.Add(time.Second))
	if g.score != 2 {
		t.Errorf("score = %d, expected 2", g.score)
	}
	if g.exploded != 1 {
		t.Errorf("exploded = %d, expected 1", g.exploded)
	}
}

func TestHitTankRemovedAfterBurnTime(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)
	placeTank(g, core.Vec{X: 600, Y: 300})
	placeMissile(g, core.Vec{X: 600, Y: 300})

	clock.Set(epoch.Add(time.Second))
	g.Step(core.NewInputFrame())
	if snap := g.Snapshot(); snap.Tanks != 2 || snap.Burning != 1 || snap.Missiles != 0 {
		t.Fatalf("after hit: %+v", snap)
	}

	clock.Set(epoch.Add(time.Second + BurnTime))
	g.Step(core.NewInputFrame())
	if n := g.Snapshot().Tanks; n != 2 {
		t.Errorf("Tanks = %d at exactly the burn time, expected 2", n)
	}

	step(g, clock, core.NewInputFrame())
	if n := g.Snapshot().Tanks; n != 1 {
		t.Errorf("Tanks = %d after the burn time, expected 1", n)
	}
}

// runUntil steps the game until done reports true or the frame limit is hit.
func runUntil(t *testing.T, g *Game, clock *core.ManualClock, limit int, done func(Snapshot) bool) Snapshot {
	t.Helper()
	for i := 0; i < limit; i++ {
		step(g, clock, core.NewInputFrame())
		if snap := g.Snapshot(); done(snap) {
			return snap
		}
	}
	t.Fatalf("condition not reached after %d frames: %+v", limit, g.Snapshot())
	return Snapshot{}
}

func TestMissileLeavesFieldWithoutScoring(t *testing.T) {
	cfg := emptyField()
	cfg.InitialAngle = 0
	cfg.Player = config.Point{X: 1000, Y: 500}
	g, clock := newTestGame(cfg, nil, 1)

	step(g, clock, input(core.ActionFire))
	snap := runUntil(t, g, clock, 3000, func(s Snapshot) bool { return s.Missiles == 0 })

	if snap.Expired != 1 || snap.Exploded != 0 {
		t.Errorf("Expired = %d, Exploded = %d, expected 1 and 0", snap.Expired, snap.Exploded)
	}
	if snap.Score != 0 || !snap.Playing {
		t.Errorf("Score = %d, Playing = %v, expected 0 and true", snap.Score, snap.Playing)
	}
}

func TestHitEnemyScoresOnce(t *testing.T) {
	rec := &recorder{}
	cfg := emptyField()
	cfg.InitialAngle = 900
	g, clock := newTestGame(cfg, rec, 1)
	placeTank(g, core.Vec{X: 400, Y: 520})

	step(g, clock, input(core.ActionFire))
	snap := runUntil(t, g, clock, 2000, func(s Snapshot) bool { return s.Missiles == 0 })

	if snap.Score != 1 {
		t.Errorf("Score = %d, expected 1", snap.Score)
	}
	if !snap.Playing {
		t.Error("Playing = false, expected true")
	}
	if snap.Exploded != 1 || snap.Burning != 1 {
		t.Errorf("Exploded = %d, Burning = %d, expected 1 and 1", snap.Exploded, snap.Burning)
	}
	if got := rec.count(core.SoundExplosion); got != 1 {
		t.Errorf("explosion sounds = %d, expected 1", got)
	}

	// The wreck leaves the field after burning
	snap = runUntil(t, g, clock, 1000, func(s Snapshot) bool { return s.Tanks == 1 })
	if snap.Score != 1 {
		t.Errorf("Score = %d after removal, expected 1", snap.Score)
	}
}

func TestHitOwnTankEndsGame(t *testing.T) {
	cfg := emptyField()
	cfg.InitialAngle = 0
	g, clock := newTestGame(cfg, nil, 1)

	step(g, clock, input(core.ActionFire))
	snap := runUntil(t, g, clock, 3000, func(s Snapshot) bool { return !s.Playing })

	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Exploded != 1 {
		t.Errorf("Exploded = %d, expected 1", snap.Exploded)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false, expected true")
	}
	if _, color := g.HUD(); color != HUDGameOverColor {
		t.Errorf("HUD color = %v, expected game over color", color)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%40 == 0:
			inputs[i] = input(core.ActionFire)
		case i%7 == 0:
			inputs[i] = input(core.ActionAimRight)
		case i%11 == 0:
			inputs[i] = input(core.ActionSpeedUp)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func(seed int64) Snapshot {
		g, clock := newTestGame(config.DefaultConfig().Game, nil, seed)
		for _, in := range inputs {
			step(g, clock, in)
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: %+v vs %+v", snap1, snap2)
	}

	g1, _ := newTestGame(config.DefaultConfig().Game, nil, 1)
	g2, _ := newTestGame(config.DefaultConfig().Game, nil, 2)
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds produced identical enemy placement")
	}
}

func TestFormatHUD(t *testing.T) {
	tests := []struct {
		name string
		st   hudStatus
		want string
	}{
		{
			"initial",
			hudStatus{ammo: 10, speed: 50, angle: 450, score: 0, playing: true},
			"[" + strings.Repeat(" ", 20) + strings.Repeat("<", 10) + "]   speed: 50  angle:45.0  score: 0",
		},
		{
			"empty",
			hudStatus{ammo: 0, speed: 30, angle: -3, score: 7},
			"[" + strings.Repeat(" ", 30) + "]   speed: 30  angle:-0.3  score: 7",
		},
		{
			"full",
			hudStatus{ammo: 30, speed: 80, angle: 900, score: 12},
			"[" + strings.Repeat("<", 30) + "]   speed: 80  angle:90.0  score: 12",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatHUD(tc.st); got != tc.want {
				t.Errorf("formatHUD() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestHUDRebuiltOnlyOnChange(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)
	if g.hudBuilds != 1 {
		t.Fatalf("hudBuilds = %d after Reset, expected 1", g.hudBuilds)
	}

	step(g, clock, core.NewInputFrame())
	step(g, clock, core.NewInputFrame())
	if g.hudBuilds != 1 {
		t.Errorf("hudBuilds = %d without changes, expected 1", g.hudBuilds)
	}

	step(g, clock, input(core.ActionSpeedUp))
	if g.hudBuilds != 2 {
		t.Errorf("hudBuilds = %d after a speed change, expected 2", g.hudBuilds)
	}
	if text, _ := g.HUD(); !strings.Contains(text, "speed: 51") {
		t.Errorf("HUD() = %q, expected speed 51", text)
	}

	// Bumping speed at the cap changes nothing visible
	g.speed = MaxSpeed
	g.rebuildHUD()
	builds := g.hudBuilds
	step(g, clock, input(core.ActionSpeedUp))
	if g.hudBuilds != builds {
		t.Errorf("hudBuilds = %d after a no-op press, expected %d", g.hudBuilds, builds)
	}
}

func TestRender(t *testing.T) {
	g, clock := newTestGame(emptyField(), nil, 1)
	screen := core.NewScreen(120, 40)

	g.Render(screen)

	// HUD at playfield (20, 20) maps to cell (2, 1)
	if row := screen.Row(1); !strings.Contains(row, "speed: 50") {
		t.Errorf("HUD row = %q, expected the status line", row)
	}
	if c := screen.GetCell(2, 1); c.Rune != '[' || c.Color != HUDColor {
		t.Errorf("HUD cell = %+v, expected '[' in HUD color", c)
	}

	// Player tank centered at (100, 500) maps to cell (10, 25)
	if c := screen.GetCell(10, 25); c.Rune == ' ' || c.Color != core.ColorGreen {
		t.Errorf("player tank cell = %+v, expected a green glyph", c)
	}

	g.playing = false
	step(g, clock, core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over screen should show GAME OVER")
	}
}
