package engine

import (
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// Stand returns the win/loss probability of standing on total s. The
// dealer's hole card is drawn after the player acts, so every hole value is
// averaged over.
func (e *Evaluator) Stand(s int) model.Outcome {
	if rules.Busted(s) {
		return model.Busted
	}

	var win, loss float64
	for hole := rules.MinCard; hole <= rules.MaxCard; hole++ {
		start := e.upcard + hole
		if rules.Busted(start) {
			win++
			continue
		}
		d := e.DealerOutcome(start, s)
		win += d.Bust + d.Less
		loss += d.Greater()
	}
	return model.Outcome{Win: win / cardCount, Loss: loss / cardCount}
}
