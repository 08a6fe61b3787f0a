package engine

import (
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// DealerOutcome returns how the dealer finishes from running total s when
// compared against player total pt. The dealer draws below 17 and stands on
// 17 through 21. s must be a reachable dealer total (s >= 0).
func (e *Evaluator) DealerOutcome(s, pt int) model.DealerOutcome {
	if rules.Busted(s) {
		return model.DealerOutcome{Bust: 1}
	}
	col := targetColumn(pt)
	if e.dealerKnown[s][col] {
		return e.dealer[s][col]
	}

	var out model.DealerOutcome
	if rules.DealerStands(s) {
		if s < pt {
			out.Less = 1
		}
		if s == pt {
			out.Equal = 1
		}
	} else {
		var bust, less, equal float64
		for v := rules.MinCard; v <= rules.MaxCard; v++ {
			next := s + v
			if rules.Busted(next) {
				bust++
				continue
			}
			r := e.DealerOutcome(next, pt)
			bust += r.Bust
			less += r.Less
			equal += r.Equal
		}
		out = model.DealerOutcome{
			Bust:  bust / cardCount,
			Less:  less / cardCount,
			Equal: equal / cardCount,
		}
	}

	e.dealer[s][col] = out
	e.dealerKnown[s][col] = true
	return out
}

// targetColumn maps a player total onto a memo column. Totals below zero
// compare like zero and totals above Target compare alike, so both ends
// collapse without changing any result.
func targetColumn(pt int) int {
	if pt < 0 {
		return 0
	}
	if pt > rules.Target {
		return rules.Target + 1
	}
	return pt
}
