package artillery

// Snapshot is a copy of the game state for tests and logging.
// Uses primitive types only.
type Snapshot struct {
	Tick    uint64
	Angle   int
	Speed   int
	Ammo    int
	Score   int
	Playing bool

	Missiles int // Missiles in flight
	Tanks    int // Tanks still on the field, player included
	Burning  int
	Expired  int // Missiles removed out of bounds so far
	Exploded int // Missiles that hit a tank so far

	// Positions truncated to playfield pixels, 2 ints (X, Y) per entity
	MissileData []int
	TankData    []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Angle:    g.angle,
		Speed:    g.speed,
		Ammo:     g.ammo,
		Score:    g.score,
		Playing:  g.playing,
		Missiles: len(g.missiles),
		Tanks:    len(g.tanks),
		Expired:  g.expired,
		Exploded: g.exploded,
	}

	snap.MissileData = make([]int, 0, len(g.missiles)*2)
	for _, m := range g.missiles {
		x, y := m.Pos.Rounded()
		snap.MissileData = append(snap.MissileData, x, y)
	}
	snap.TankData = make([]int, 0, len(g.tanks)*2)
	for _, t := range g.tanks {
		x, y := t.Pos.Rounded()
		snap.TankData = append(snap.TankData, x, y)
		if t.State() == TankBurning {
			snap.Burning++
		}
	}
	return snap
}

// Hash computes a simple hash of the snapshot for comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Angle) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.Playing {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Missiles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tanks)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Burning)  //#nosec G115 -- hash computation

	for _, v := range snap.MissileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.TankData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
