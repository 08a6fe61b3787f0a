package model

import (
	"time"

	"BlackjackOdds/internal/rules"
)

// Table holds the options for every cell of a sweep, ordered by hand total
// then dealer upcard.
type Table struct {
	MinHand    int
	MaxHand    int
	Rows       []Options
	ComputedAt time.Time
}

// Lookup returns the cell for hand and upcard, if the table covers it.
func (t *Table) Lookup(hand, upcard int) (Options, bool) {
	if t == nil || hand < t.MinHand || hand > t.MaxHand || !rules.ValidUpcard(upcard) {
		return Options{}, false
	}
	idx := (hand-t.MinHand)*rules.MaxCard + (upcard - rules.MinCard)
	if idx >= len(t.Rows) {
		return Options{}, false
	}
	return t.Rows[idx], true
}
