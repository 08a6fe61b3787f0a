package engine

import (
	"errors"

	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// ErrInvalidUpcard is returned for a dealer upcard outside 1..10.
var ErrInvalidUpcard = errors.New("dealer upcard must be between 1 and 10")

// cardCount divides the sum over every card value into a mean.
const cardCount = float64(rules.CardValues)

// Evaluator computes dealer and player probabilities for one dealer upcard.
//
// The player memo is keyed by total only, so its entries are valid for the
// upcard the Evaluator was built with and nothing else. An Evaluator must
// never be reused for a different upcard; build a new one instead.
type Evaluator struct {
	upcard int

	// dealer[s][pt] caches the dealer distribution from total s measured
	// against player total pt. Column Target+1 stands for every pt > Target.
	dealer      [rules.MaxTotal + 1][rules.Target + 2]model.DealerOutcome
	dealerKnown [rules.MaxTotal + 1][rules.Target + 2]bool

	player      [rules.MaxTotal + 1]model.Outcome
	playerKnown [rules.MaxTotal + 1]bool
}

// NewEvaluator returns an Evaluator with empty memo tables for upcard.
func NewEvaluator(upcard int) (*Evaluator, error) {
	if !rules.ValidUpcard(upcard) {
		return nil, ErrInvalidUpcard
	}
	return &Evaluator{upcard: upcard}, nil
}

// Upcard returns the dealer upcard the memo tables belong to.
func (e *Evaluator) Upcard() int { return e.upcard }
