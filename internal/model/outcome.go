package model

// Outcome is a player's win/loss probability pair. Whatever is left over is
// the push probability.
type Outcome struct {
	Win  float64 `json:"win"`
	Loss float64 `json:"loss"`
}

// Push returns the probability of a tie.
func (o Outcome) Push() float64 {
	return remainder(o.Win + o.Loss)
}

// Busted is the outcome of a hand that is already over 21.
var Busted = Outcome{Win: 0, Loss: 1}

// DealerOutcome is the distribution of the dealer's final hand measured
// against one player total.
type DealerOutcome struct {
	Bust  float64
	Less  float64
	Equal float64
}

// Greater returns the probability the dealer finishes above the player
// total without busting.
func (d DealerOutcome) Greater() float64 {
	return remainder(d.Bust + d.Less + d.Equal)
}

// roundingSlack is far below the smallest non-zero probability the card
// model can produce, and far above the error of summing a few dozen terms.
const roundingSlack = 1e-12

// remainder returns 1 - p, reading anything within roundingSlack of one as a
// certainty so rounding cannot leave a tiny or negative residue.
func remainder(p float64) float64 {
	if p >= 1-roundingSlack {
		return 0
	}
	return 1 - p
}
