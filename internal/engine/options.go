package engine

import (
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// ComputeOptions evaluates one (hand total, dealer upcard) cell with fresh
// memo tables. An upcard outside 1..10 or a hand total outside 0..31 yields
// the zero Options, whose empty BestAction marks the query as invalid.
func ComputeOptions(handScore, dealerUpcard int) model.Options {
	e, err := NewEvaluator(dealerUpcard)
	if err != nil {
		return model.Options{}
	}
	return e.Options(handScore)
}

// Options builds the cell for handScore using e's memo tables. A total that
// no hand can reach yields the zero Options.
func (e *Evaluator) Options(handScore int) model.Options {
	if !rules.ValidHand(handScore) {
		return model.Options{}
	}

	opt := e.Optimal(handScore)
	stand := e.Stand(handScore)
	hit := e.ForcedHit(handScore)

	out := model.Options{
		HandScore:    handScore,
		DealerUpcard: e.upcard,
		StandWin:     stand.Win,
		StandLoss:    stand.Loss,
		HitWin:       hit.Win,
		HitLoss:      hit.Loss,
		OptWin:       opt.Win,
		OptLoss:      opt.Loss,
	}

	// Compared against the one-card hit, not the branch Optimal chose.
	switch {
	case out.StandWin > out.HitWin:
		out.BestAction = model.ActionStand
	case out.HitWin > out.StandWin:
		out.BestAction = model.ActionHit
	default:
		out.BestAction = model.ActionEqual
	}
	return out
}

// OptimalChance returns the win and loss probability under optimal play.
func OptimalChance(handScore, dealerUpcard int) (win, loss float64) {
	o := ComputeOptions(handScore, dealerUpcard)
	return o.OptWin, o.OptLoss
}
