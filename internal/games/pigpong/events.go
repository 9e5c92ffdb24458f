package pigpong

// Event is emitted by the simulation for rendering and audio collaborators.
type Event interface {
	pigpongEvent()
}

// Listener receives events synchronously as they are emitted.
type Listener func(Event)

// ServeEvent is emitted when the pig is put into play.
type ServeEvent struct {
	Direction int // +1 toward the right paddle, -1 toward the left
}

func (ServeEvent) pigpongEvent() {}

// HitVariant selects which hit sound accompanies a paddle hit.
type HitVariant int

const (
	HitPrimary HitVariant = iota
	HitAlternate
)

func (v HitVariant) String() string {
	if v == HitAlternate {
		return "alternate"
	}
	return "primary"
}

// PaddleHitEvent is emitted when a paddle returns the pig.
type PaddleHitEvent struct {
	Side    Side
	Variant HitVariant
}

func (PaddleHitEvent) pigpongEvent() {}

// GateClipEvent is emitted when the pig glances off a gate's rim.
type GateClipEvent struct {
	Side Side
}

func (GateClipEvent) pigpongEvent() {}

// ScoreChangedEvent carries a side's new score.
type ScoreChangedEvent struct {
	Side  Side
	Score int
}

func (ScoreChangedEvent) pigpongEvent() {}

// MatchEndedEvent is emitted when a side reaches the winning score.
type MatchEndedEvent struct {
	Winner   Side
	WasHuman bool
}

func (MatchEndedEvent) pigpongEvent() {}

// PhaseChangedEvent is emitted on every phase transition.
type PhaseChangedEvent struct {
	Phase Phase
}

func (PhaseChangedEvent) pigpongEvent() {}

// MoodChangedEvent is emitted when the idle pig switches expression.
type MoodChangedEvent struct {
	Mood Mood
}

func (MoodChangedEvent) pigpongEvent() {}
