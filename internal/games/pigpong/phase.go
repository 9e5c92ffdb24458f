package pigpong

import "math"

// Side identifies a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return 1 - s
}

// Phase is a stage of the match cycle.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseStartup
	PhasePlaying
	PhaseCooling
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseStartup:
		return "startup"
	case PhasePlaying:
		return "playing"
	case PhaseCooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// Mood is the expression of the idle pig on the waiting screen.
type Mood int

const (
	MoodSmile Mood = iota
	MoodSmirk
)

func (m Mood) String() string {
	if m == MoodSmirk {
		return "smirk"
	}
	return "smile"
}

// phaseClock measures time since phase entry. An entry made from an input
// handler has no timestamp; the clock then starts at the next Advance.
type phaseClock struct {
	start   float64
	started bool
}

func (c *phaseClock) reset() {
	c.started = false
}

func (c *phaseClock) startAt(ts float64) {
	c.start = ts
	c.started = true
}

// elapsed starts the clock if needed and returns time since its start.
func (c *phaseClock) elapsed(ts float64) float64 {
	if !c.started {
		c.startAt(ts)
	}
	return ts - c.start
}

// enterPhase switches phase and emits the transition.
func (g *Game) enterPhase(p Phase) {
	g.phase = p
	g.clock.reset()
	g.emit(PhaseChangedEvent{Phase: p})
}

// enterPhaseAt switches phase with a known entry timestamp.
func (g *Game) enterPhaseAt(p Phase, ts float64) {
	g.enterPhase(p)
	g.clock.startAt(ts)
}

// resetMatch restores the state a new match starts from: paddles at their
// initial positions and unclaimed, pig at its start position and hidden,
// zero scores, a fresh opponent and a smiling idle pig.
func (g *Game) resetMatch() {
	for i := range g.paddles {
		g.paddles[i].Y = g.paddles[i].InitialY
		g.paddles[i].Human = false
		g.paddles[i].Dragging = false
	}

	g.pig.reset(g.params)
	g.pig.Visible = false

	g.score.reset()
	g.hasWinner = false

	g.opponent = Opponent{MaxSpeed: g.params.ControlSpeedServe}

	g.mood = MoodSmile
	g.moodCountdown = 0
	g.moodClock.reset()
}

// startWaiting resets the match and enters Waiting at ts.
func (g *Game) startWaiting(ts float64) {
	g.resetMatch()
	g.enterPhaseAt(PhaseWaiting, ts)
	g.moodClock.startAt(ts)
}

// startStartup enters Startup after the first paddle claim.
func (g *Game) startStartup() {
	g.pig.reset(g.params)
	g.pig.Visible = true
	g.enterPhase(PhaseStartup)
}

// waitingAdvance drives the idle pig's smile/smirk cycle.
func (g *Game) waitingAdvance(ts float64) {
	step := g.params.IdleSmirkMs
	if step <= 0 {
		return
	}
	elapsed := g.moodClock.elapsed(ts)
	if elapsed < step {
		return
	}
	if elapsed >= 2*step {
		// Timestamp feed jumped; resync instead of replaying every step.
		g.moodClock.startAt(ts)
	} else {
		g.moodClock.start += step
	}

	g.moodCountdown--
	switch {
	case g.moodCountdown == 0:
		g.setMood(MoodSmirk)
	case g.moodCountdown < 0:
		g.setMood(MoodSmile)
		span := float64(g.params.IdleCountdownMax - g.params.IdleCountdownMin)
		g.moodCountdown = g.params.IdleCountdownMin + int(math.Floor(g.rnd.Float64()*span+0.5))
	}
}

func (g *Game) setMood(m Mood) {
	if g.mood == m {
		return
	}
	g.mood = m
	g.emit(MoodChangedEvent{Mood: m})
}

// startupAdvance runs the grow-shrink animation and serves once it is over.
func (g *Game) startupAdvance(ts float64) {
	d := g.params.StartupMs
	elapsed := g.clock.elapsed(ts)

	if 0 <= elapsed && elapsed <= d {
		g.pig.Scale = startupScale(elapsed, d, g.params.StartupScaleMin, g.params.StartupScaleMax)
	}
	if elapsed <= d {
		return
	}

	g.pig.Scale = 1
	direction := -1
	left, right := g.paddles[SideLeft].Human, g.paddles[SideRight].Human
	if left && right {
		if g.rnd.Float64() < 0.5 {
			direction = 1
		}
	} else if right {
		direction = 1
	}
	g.serve(direction)

	g.frameClock = ts
	g.enterPhaseAt(PhasePlaying, ts)
}

// playingAdvance runs one simulation frame.
func (g *Game) playingAdvance(ts float64) {
	elapsed := ts - g.frameClock
	if elapsed <= 0 {
		return
	}
	g.frameClock = ts

	g.trackOpponents(elapsed)

	exited, exitRight := g.movePig(elapsed)
	if !exited {
		return
	}

	// The side that let the pig through concedes.
	scorer := SideRight
	if exitRight {
		scorer = SideLeft
	}
	g.awardPoint(scorer)

	if winner, over := g.score.winner(); over {
		g.endMatch(winner, ts)
		return
	}

	if exitRight {
		g.serve(1)
	} else {
		g.serve(-1)
	}
}

// endMatch hides the pig and enters Cooling.
func (g *Game) endMatch(winner Side, ts float64) {
	g.pig.Visible = false
	g.winner = winner
	g.hasWinner = true
	g.emit(MatchEndedEvent{Winner: winner, WasHuman: g.paddles[winner].Human})
	g.enterPhaseAt(PhaseCooling, ts)
}

func (g *Game) coolingAdvance(ts float64) {
	if g.clock.elapsed(ts) >= g.params.CoolingMs {
		g.startWaiting(ts)
	}
}
