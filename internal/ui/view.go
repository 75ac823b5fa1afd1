package ui

import (
	"strings"
	"sync"

	"mspro-labs/vitrin/internal/models"
)

// Phase is the single rendering mode the view is in. The phases are
// mutually exclusive: a loading view never shows results.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhasePopulated
)

// View owns the query/results/loading triple for the session. Results are
// ephemeral: each completed request replaces them wholesale, and a failed
// request empties them. The generation counter makes sure the last
// *submitted* query wins, not the last response to arrive.
type View struct {
	mu      sync.Mutex
	phase   Phase
	query   string
	cards   []models.ProductCard
	summary string
	gen     uint64
}

// Snapshot is a copy of the view, safe to render while new submissions
// come in.
type Snapshot struct {
	Phase   Phase
	Query   string
	Cards   []models.ProductCard
	Summary string
}

// Loading reports whether a request is outstanding.
func (s Snapshot) Loading() bool { return s.Phase == PhaseLoading }

// Submit trims the raw input and, if anything is left, promotes it to the
// current query and enters the loading phase. Whitespace-only input is
// ignored entirely: no request is armed and nothing changes. Promoting the
// query is the sole event that arms a request; the returned generation
// identifies it. Prior results are discarded in full at this point, so a
// loading view never shows a stale card set.
func (v *View) Submit(raw string) (gen uint64, query string, ok bool) {
	query = strings.TrimSpace(raw)
	if query == "" {
		return 0, "", false
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.phase = PhaseLoading
	v.query = query
	v.cards = nil
	v.summary = ""
	return v.gen, query, true
}

// Complete applies a successful response for the given generation. Stale
// generations are discarded without touching the view. The card list
// replaces the rendered set wholesale; there is no merging with prior
// results.
func (v *View) Complete(gen uint64, cards []models.ProductCard, summary string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	if cards == nil {
		cards = []models.ProductCard{}
	}
	v.phase = PhasePopulated
	v.cards = cards
	v.summary = summary
	return true
}

// Fail applies a failed response: loading is cleared and the card set is
// emptied. A failure never leaves a stale previous result on screen.
// Stale generations are discarded like in Complete.
func (v *View) Fail(gen uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return false
	}
	v.phase = PhaseIdle
	v.cards = nil
	v.summary = ""
	return true
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	cards := make([]models.ProductCard, len(v.cards))
	copy(cards, v.cards)
	return Snapshot{
		Phase:   v.phase,
		Query:   v.query,
		Cards:   cards,
		Summary: v.summary,
	}
}
