package pigpong

// Game is one Pig Pong table. It owns all simulation state and is not safe
// for concurrent use; the driver serializes Advance and input calls.
type Game struct {
	params Params
	rnd    Random

	phase      Phase
	clock      phaseClock
	frameClock float64
	now        float64 // Timestamp of the latest Advance

	pig      Pig
	paddles  [2]Paddle
	opponent Opponent
	score    Score

	winner    Side
	hasWinner bool

	mood          Mood
	moodCountdown int
	moodClock     phaseClock

	pending   []Event
	listeners []Listener
}

// New creates a game in the Waiting phase.
func New(params Params, rnd Random) *Game {
	if rnd == nil {
		rnd = NewRandom(1)
	}
	g := &Game{
		params: params,
		rnd:    rnd,
		phase:  PhaseWaiting,
		score:  Score{Max: params.ScoreMax},
	}
	g.paddles[SideLeft].InitialY = params.LeftPaddleY
	g.paddles[SideRight].InitialY = params.RightPaddleY
	g.resetMatch()
	return g
}

// Params returns the game's fixed parameters.
func (g *Game) Params() Params {
	return g.params
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// OnEvent registers a listener called synchronously for every event.
func (g *Game) OnEvent(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Advance runs the simulation up to timestampMs and returns the events
// emitted since the previous call, including those raised by input methods.
// Timestamps must come from one monotonic clock; holding the timestamp
// still pauses the game.
func (g *Game) Advance(timestampMs float64) []Event {
	g.now = timestampMs

	switch g.phase {
	case PhaseWaiting:
		g.waitingAdvance(timestampMs)
	case PhaseStartup:
		g.startupAdvance(timestampMs)
	case PhasePlaying:
		g.playingAdvance(timestampMs)
	case PhaseCooling:
		g.coolingAdvance(timestampMs)
	}

	events := g.pending
	g.pending = nil
	return events
}

func (g *Game) emit(evt Event) {
	g.pending = append(g.pending, evt)
	for _, l := range g.listeners {
		l(evt)
	}
}
