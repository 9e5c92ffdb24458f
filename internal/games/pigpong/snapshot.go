package pigpong

// PaddleView is the read-only state of one paddle.
type PaddleView struct {
	Y        float64
	Human    bool
	Dragging bool
}

// Snapshot is a read-only copy of the game state for rendering.
type Snapshot struct {
	Phase          Phase
	PhaseElapsedMs float64 // Zero until the phase clock starts

	PigX, PigY   float64
	PigRadius    float64
	PigRotation  float64
	PigScale     float64
	PigVisible   bool
	PigDirection int
	PigSpeed     float64

	Paddles [2]PaddleView
	Scores  [2]int

	Mood      Mood
	Winner    Side
	HasWinner bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        g.phase,
		PigX:         g.pig.X,
		PigY:         g.pig.Y,
		PigRadius:    g.pig.Radius,
		PigRotation:  g.pig.Rotation,
		PigScale:     g.pig.Scale,
		PigVisible:   g.pig.Visible,
		PigDirection: g.pig.Direction,
		PigSpeed:     g.pig.Speed,
		Scores:       g.score.Points,
		Mood:         g.mood,
		Winner:       g.winner,
		HasWinner:    g.hasWinner,
	}
	if g.clock.started {
		s.PhaseElapsedMs = g.now - g.clock.start
	}
	for i, p := range g.paddles {
		s.Paddles[i] = PaddleView{Y: p.Y, Human: p.Human, Dragging: p.Dragging}
	}
	return s
}

// Human reports whether a side is human-controlled.
func (s Snapshot) Human(side Side) bool {
	return s.Paddles[side].Human
}
