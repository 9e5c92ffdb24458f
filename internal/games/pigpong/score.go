package pigpong

// Score holds both sides' points in a match.
type Score struct {
	Points [2]int
	Max    int
}

func (s *Score) reset() {
	s.Points = [2]int{}
}

// bump adds a point unless the side already has the winning score.
func (s *Score) bump(side Side) bool {
	if s.Points[side] >= s.Max {
		return false
	}
	s.Points[side]++
	return true
}

// winner reports the side that reached the winning score, if any.
func (s Score) winner() (Side, bool) {
	switch {
	case s.Points[SideLeft] == s.Max:
		return SideLeft, true
	case s.Points[SideRight] == s.Max:
		return SideRight, true
	default:
		return SideLeft, false
	}
}

// awardPoint gives side a point and announces the new score.
func (g *Game) awardPoint(side Side) {
	if g.score.bump(side) {
		g.emit(ScoreChangedEvent{Side: side, Score: g.score.Points[side]})
	}
}

// MatchOver reports whether either side has reached the winning score.
func (g *Game) MatchOver() bool {
	_, over := g.score.winner()
	return over
}
