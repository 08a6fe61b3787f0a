package engine

import (
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// Optimal returns the win/loss probability from total s when every later
// decision picks whichever of stand and hit wins more often. Ties stand.
// s must be >= 0.
func (e *Evaluator) Optimal(s int) model.Outcome {
	if rules.Busted(s) {
		return model.Busted
	}
	if e.playerKnown[s] {
		return e.player[s]
	}

	stand := e.Stand(s)
	hit := e.ForcedHit(s)

	best := hit
	if stand.Win >= hit.Win {
		best = stand
	}
	e.player[s] = best
	e.playerKnown[s] = true
	return best
}

// ForcedHit returns the outcome of taking exactly one card from s and then
// playing optimally, whether or not standing on s would have been better.
// A busted s stays busted.
func (e *Evaluator) ForcedHit(s int) model.Outcome {
	if rules.Busted(s) {
		return model.Busted
	}

	var win, loss float64
	for v := rules.MinCard; v <= rules.MaxCard; v++ {
		r := e.Optimal(s + v)
		win += r.Win
		loss += r.Loss
	}
	return model.Outcome{Win: win / cardCount, Loss: loss / cardCount}
}
