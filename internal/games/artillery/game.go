// Package artillery implements a real-time artillery game.
// The player aims a tank's gun, picks a launch speed and fires missiles in
// ballistic arcs at stationary enemy tanks. Hitting your own tank ends the
// session.
package artillery

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-artillery/internal/assets"
	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
)

// Playfield size in logical pixels.
const (
	FieldWidth  = 1200
	FieldHeight = 800
)

// Tank size in logical pixels.
const (
	TankWidth  = assets.TankWidth
	TankHeight = assets.TankHeight
)

// Physics and timing constants. These are fixed game rules.
const (
	GravityStep    = 0.007                   // Added to a missile's fall per update
	SpeedDivisor   = 5.0                     // Launch speed to internal speed
	MoveScale      = 0.3                     // Distance per step per unit of speed
	StepDuration   = 5 * time.Millisecond    // Elapsed time worth one movement step
	ArmingDelay    = 80 * time.Millisecond   // Missile age before it can collide
	BurnTime       = 2 * time.Second         // Hit tank stays on the field this long
	RefillInterval = 2700 * time.Millisecond // One missile is added this often
)

// Removal margins around the playfield for missiles.
const (
	MarginX      = 100
	MarginTop    = 10000
	MarginBottom = 100
)

// Control limits and steps.
const (
	MinSpeed  = config.MinSpeed
	MaxSpeed  = config.MaxSpeed
	MinAngle  = config.MinAngle
	MaxAngle  = config.MaxAngle
	MaxAmmo   = config.MaxAmmo
	AngleStep = 3
	SpeedStep = 1
	FullTurn  = 3600
)

// Enemy tanks are placed with their centers inside this range (inclusive).
const (
	EnemyMinX = 50
	EnemyMaxX = 1150
	EnemyMinY = 50
	EnemyMaxY = 750
)

// Game implements the artillery game logic.
type Game struct {
	cfg    config.GameConfig
	res    *Resources
	clock  core.Clock
	logger *log.Logger
	rng    *rand.Rand

	player   *Tank
	tanks    []*Tank // Player first, then enemies
	missiles []*Missile

	angle      int
	speed      int
	ammo       int
	score      int
	playing    bool
	lastRefill time.Time
	tick       uint64

	hud       hud
	hudBuilds int

	expired  int // Missiles removed out of bounds
	exploded int // Missiles that hit a tank
}

// New creates a game. res may be nil for a silent game without images.
func New(cfg config.GameConfig, res *Resources, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Game{
		cfg:    cfg,
		res:    res,
		clock:  clock,
		logger: log.New(io.Discard),
	}
}

// SetLogger sets the logger used for gameplay events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "artillery"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Artillery"
}

// Reset starts a new session: the player's tank, freshly placed enemies,
// initial aim, speed and ammunition.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	now := g.clock.Now()

	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.player = NewTank(g.res, core.Vec{X: g.cfg.Player.X, Y: g.cfg.Player.Y})
	g.tanks = []*Tank{g.player}
	for i := 0; i < g.cfg.Enemies; i++ {
		x := EnemyMinX + g.rng.Intn(EnemyMaxX-EnemyMinX+1)
		y := EnemyMinY + g.rng.Intn(EnemyMaxY-EnemyMinY+1)
		g.tanks = append(g.tanks, NewTank(g.res, core.Vec{X: float64(x), Y: float64(y)}))
	}
	g.missiles = nil

	g.angle = g.cfg.InitialAngle
	g.speed = g.cfg.InitialSpeed
	g.ammo = g.cfg.InitialAmmo
	g.score = 0
	g.playing = true
	g.lastRefill = now
	g.tick = 0
	g.expired = 0
	g.exploded = 0

	g.rebuildHUD()
	g.logger.Debug("session reset", "seed", cfg.Seed, "enemies", g.cfg.Enemies)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Now()
	g.tick++

	g.refill(now)
	if g.playing {
		g.applyInput(in, now)
	}
	g.resolveCollisions(now)
	g.refreshHUD()

	for _, m := range g.missiles {
		if m.Live() {
			m.Update(now)
		}
	}
	for _, t := range g.tanks {
		if !t.Removed() {
			t.Update(now)
		}
	}
	g.compact()

	return core.StepResult{State: g.State()}
}

// refill adds one missile when the refill interval has passed. The timer
// only restarts on an actual refill.
func (g *Game) refill(now time.Time) {
	if now.Sub(g.lastRefill) > RefillInterval && g.ammo < MaxAmmo {
		g.lastRefill = now
		g.ammo++
	}
}

// applyInput applies aim and speed changes, then fires.
func (g *Game) applyInput(in core.InputFrame, now time.Time) {
	for i := 0; i < in.Count(core.ActionSpeedUp); i++ {
		g.speed = core.Clamp(g.speed+SpeedStep, MinSpeed, MaxSpeed)
	}
	for i := 0; i < in.Count(core.ActionSpeedDown); i++ {
		g.speed = core.Clamp(g.speed-SpeedStep, MinSpeed, MaxSpeed)
	}
	for i := 0; i < in.Count(core.ActionAimLeft); i++ {
		g.angle = turn(g.angle, -AngleStep)
	}
	for i := 0; i < in.Count(core.ActionAimRight); i++ {
		g.angle = turn(g.angle, AngleStep)
	}
	for i := 0; i < in.Count(core.ActionFire); i++ {
		g.fire(now)
	}
}

// turn rotates angle by delta, wrapping around a full turn. The result is
// read as a signed angle and clamped to the aiming range.
func turn(angle, delta int) int {
	a := ((angle+delta)%FullTurn + FullTurn) % FullTurn
	if a > FullTurn/2 {
		a -= FullTurn
	}
	return core.Clamp(a, MinAngle, MaxAngle)
}

// fire launches a missile if any ammunition is left.
func (g *Game) fire(now time.Time) {
	if g.ammo <= 0 {
		return
	}
	g.ammo--
	launch := core.Vec{X: g.cfg.Launch.X, Y: g.cfg.Launch.Y}
	g.missiles = append(g.missiles, NewMissile(g.res, launch, g.angle, g.speed, now))
	g.logger.Debug("missile fired", "angle", g.angle, "speed", g.speed, "ammo", g.ammo)
}

// field returns the playfield rectangle.
func field() core.Rect {
	return core.NewRect(0, 0, FieldWidth, FieldHeight)
}

// resolveCollisions removes armed missiles that left the field and explodes
// armed missiles that overlap a tank. Burning tanks still absorb missiles.
func (g *Game) resolveCollisions(now time.Time) {
	bounds := field()
	for _, m := range g.missiles {
		if !m.Live() || !m.Armed(now) {
			continue
		}
		if m.ConsiderRemoving(bounds) {
			g.expired++
			continue
		}

		mr := m.Rect()
		for _, t := range g.tanks {
			if t.Removed() || !mr.Intersects(t.Rect()) {
				continue
			}
			m.HasHit(t)
			if !t.WasHitBy(now) {
				continue
			}
			if t == g.player {
				g.playing = false
				g.logger.Debug("player tank hit", "score", g.score)
			} else {
				g.score++
				g.logger.Debug("enemy tank hit", "score", g.score)
			}
		}
		if m.State() == MissileExploded {
			g.exploded++
		}
	}
}

// compact drops removed missiles and tanks.
func (g *Game) compact() {
	missiles := g.missiles[:0]
	for _, m := range g.missiles {
		if m.Live() {
			missiles = append(missiles, m)
		}
	}
	clear(g.missiles[len(missiles):])
	g.missiles = missiles

	tanks := g.tanks[:0]
	for _, t := range g.tanks {
		if !t.Removed() {
			tanks = append(tanks, t)
		}
	}
	clear(g.tanks[len(tanks):])
	g.tanks = tanks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.playing,
	}
}

// Angle returns the aim in tenths of a degree.
func (g *Game) Angle() int { return g.angle }

// Speed returns the launch speed.
func (g *Game) Speed() int { return g.speed }

// Ammo returns the number of missiles available.
func (g *Game) Ammo() int { return g.ammo }

// Playing reports whether the player's tank is still intact.
func (g *Game) Playing() bool { return g.playing }
