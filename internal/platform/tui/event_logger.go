package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// EventLogger returns a game listener that logs every event at debug level.
func EventLogger(logger *log.Logger) pigpong.Listener {
	return func(evt pigpong.Event) {
		switch e := evt.(type) {
		case pigpong.ServeEvent:
			logger.Debug("serve", "direction", e.Direction)
		case pigpong.PaddleHitEvent:
			logger.Debug("paddle hit", "side", e.Side, "variant", e.Variant)
		case pigpong.GateClipEvent:
			logger.Debug("gate clip", "side", e.Side)
		case pigpong.ScoreChangedEvent:
			logger.Debug("score", "side", e.Side, "score", e.Score)
		case pigpong.MatchEndedEvent:
			logger.Debug("match ended", "winner", e.Winner, "human", e.WasHuman)
		case pigpong.PhaseChangedEvent:
			logger.Debug("phase", "phase", e.Phase)
		case pigpong.MoodChangedEvent:
			logger.Debug("mood", "mood", e.Mood)
		default:
			logger.Debug("event", "type", fmt.Sprintf("%T", evt))
		}
	}
}
