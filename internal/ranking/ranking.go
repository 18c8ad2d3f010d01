// Package ranking orders scored documents and renders/exports the result.
package ranking

import (
	"fmt"
	"math"
	"sort"
)

const (
	// TopMin and TopMax bound a top-N request; out-of-range values are
	// silently clamped, not rejected.
	TopMin = 5
	TopMax = 50

	// TopDefault is used when no top-N is requested.
	TopDefault = 10
)

// Entry is one ranked document.
type Entry struct {
	ID    string
	Score float64
}

// Result is an ordered ranking, descending by score. Equal scores keep
// ascending original corpus order, so identical inputs always produce an
// identical sequence.
type Result struct {
	Entries []Entry
}

// Rank pairs parallel score and id slices, given in corpus order, and sorts
// them descending by score with a stable tie-break on corpus position.
func Rank(scores []float64, ids []string) (*Result, error) {
	if len(scores) != len(ids) {
		return nil, fmt.Errorf("scores and ids length mismatch: %d vs %d", len(scores), len(ids))
	}

	entries := make([]Entry, len(scores))
	for i := range scores {
		entries[i] = Entry{ID: ids[i], Score: scores[i]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return &Result{Entries: entries}, nil
}

func (r *Result) Len() int {
	return len(r.Entries)
}

// Top returns the leading n entries. n is clamped into [TopMin, TopMax]
// before truncation; a result shorter than the clamped n is returned whole.
func (r *Result) Top(n int) *Result {
	n = Clamp(n, TopMin, TopMax)
	if n > len(r.Entries) {
		n = len(r.Entries)
	}
	return &Result{Entries: append([]Entry(nil), r.Entries[:n]...)}
}

// Clamp bounds n into the inclusive [lo, hi] range.
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Percent converts a similarity score into a percentage rounded to two
// decimal places, the precision used for chart labels.
func Percent(score float64) float64 {
	return math.Round(score*10000) / 100
}
