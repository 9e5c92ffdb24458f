// Package sim plays headless Pig Pong matches: a scripted drag bot holds
// the left paddle, the computer plays the right one, and finished matches
// go to the session journal.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
	"github.com/vovakirdan/pigpong/internal/storage"
)

// maxMatchMs bounds one simulated match so a stuck rally cannot spin forever.
const maxMatchMs = 60 * 60 * 1000

// ErrMatchTimeout is returned when a match does not finish in simulated time.
var ErrMatchTimeout = errors.New("sim: match did not finish")

// DragBot moves a claimed paddle toward the pig the way a pointer would,
// through StartDrag and UpdateDrag, no faster than Speed.
type DragBot struct {
	Side  pigpong.Side
	Speed float64 // Field units per ms
}

// Step drags the bot's paddle for a frame of elapsed ms.
func (b DragBot) Step(g *pigpong.Game, elapsed float64) {
	snap := g.Snapshot()
	paddle := snap.Paddles[b.Side]
	if !paddle.Dragging {
		g.StartDrag(b.Side)
	}

	want := snap.PigY - paddle.Y
	limit := b.Speed * elapsed
	if math.Abs(want) > limit {
		want = math.Copysign(limit, want)
	}
	g.UpdateDrag(b.Side, paddle.Y+want)
}

// Options configures a simulation run.
type Options struct {
	Params   pigpong.Params
	Seed     int64
	Matches  int
	FrameMs  float64
	BotSpeed float64

	Store  *storage.Store
	Logger *log.Logger
}

// Run plays opts.Matches matches on one table and returns their journal
// records in play order.
func Run(opts Options) ([]storage.MatchRecord, error) {
	if opts.FrameMs <= 0 {
		return nil, fmt.Errorf("sim: frame duration must be positive, got %v", opts.FrameMs)
	}
	if opts.Store == nil {
		return nil, errors.New("sim: store is required")
	}

	game := pigpong.New(opts.Params, pigpong.NewRandom(opts.Seed))
	if opts.Logger != nil {
		game.OnEvent(func(evt pigpong.Event) {
			opts.Logger.Debug("event", "type", fmt.Sprintf("%T", evt))
		})
	}
	recorder := storage.NewRecorder(opts.Store, game)
	bot := DragBot{Side: pigpong.SideLeft, Speed: opts.BotSpeed}

	records := make([]storage.MatchRecord, 0, opts.Matches)
	ts := 0.0
	for len(records) < opts.Matches {
		start := ts
		game.ClaimPaddle(bot.Side)

		for {
			ts += opts.FrameMs
			if ts-start > maxMatchMs {
				return records, fmt.Errorf("%w after %v ms (match %d)", ErrMatchTimeout, ts-start, len(records)+1)
			}

			phase := game.Phase()
			if phase == pigpong.PhaseStartup || phase == pigpong.PhasePlaying {
				bot.Step(game, opts.FrameMs)
			}

			rec, err := recorder.Record(ts, game.Advance(ts))
			if err != nil {
				return records, err
			}
			if rec != nil {
				records = append(records, *rec)
				if opts.Logger != nil {
					opts.Logger.Info("match finished", "n", len(records), "winner", rec.Winner,
						"score", fmt.Sprintf("%d:%d", rec.ScoreLeft, rec.ScoreRight), "hits", rec.Hits)
				}
				break
			}
		}

		// Let the table cool down and return to waiting before the next claim.
		for game.Phase() != pigpong.PhaseWaiting {
			ts += opts.FrameMs
			if _, err := recorder.Record(ts, game.Advance(ts)); err != nil {
				return records, err
			}
		}
	}
	return records, nil
}
