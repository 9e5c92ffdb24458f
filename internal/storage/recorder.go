package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/pigpong/internal/games/pigpong"
)

// SnapshotSource provides the game state at match end.
type SnapshotSource interface {
	Snapshot() pigpong.Snapshot
}

// Recorder turns the event stream of one game into journal rows.
type Recorder struct {
	store  *Store
	source SnapshotSource

	active    bool
	matchID   string
	startedAt float64
	hits      int
	rally     int
	longest   int
}

// NewRecorder creates a recorder writing matches of source into store.
func NewRecorder(store *Store, source SnapshotSource) *Recorder {
	return &Recorder{store: store, source: source}
}

// Record consumes the events returned by one Advance at timestamp ts.
// It returns the saved record when a match finished in this batch.
func (r *Recorder) Record(ts float64, events []pigpong.Event) (*MatchRecord, error) {
	var saved *MatchRecord
	for _, evt := range events {
		switch e := evt.(type) {
		case pigpong.PhaseChangedEvent:
			if e.Phase == pigpong.PhaseStartup {
				r.begin(ts)
			}
		case pigpong.ServeEvent:
			r.rally = 0
		case pigpong.PaddleHitEvent:
			r.hits++
			r.rally++
			r.longest = max(r.longest, r.rally)
		case pigpong.MatchEndedEvent:
			if !r.active {
				continue
			}
			rec, err := r.finish(ts, e)
			if err != nil {
				return nil, err
			}
			saved = rec
		}
	}
	return saved, nil
}

// MatchID returns the ID of the match in progress, or "" between matches.
func (r *Recorder) MatchID() string {
	if !r.active {
		return ""
	}
	return r.matchID
}

func (r *Recorder) begin(ts float64) {
	r.active = true
	r.matchID = uuid.NewString()
	r.startedAt = ts
	r.hits = 0
	r.rally = 0
	r.longest = 0
}

func (r *Recorder) finish(ts float64, e pigpong.MatchEndedEvent) (*MatchRecord, error) {
	r.active = false
	snap := r.source.Snapshot()

	rec := MatchRecord{
		MatchID:      r.matchID,
		Winner:       e.Winner.String(),
		ScoreLeft:    snap.Scores[pigpong.SideLeft],
		ScoreRight:   snap.Scores[pigpong.SideRight],
		LeftHuman:    snap.Human(pigpong.SideLeft),
		RightHuman:   snap.Human(pigpong.SideRight),
		Hits:         r.hits,
		LongestRally: r.longest,
		DurationMs:   int64(ts - r.startedAt),
	}

	id, err := r.store.SaveMatch(rec)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot record match %s: %w", rec.MatchID, err)
	}
	rec.ID = id
	return &rec, nil
}
