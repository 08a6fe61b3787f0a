package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// eps absorbs rounding when several probabilities are added together.
const eps = 1e-12

func TestComputeOptions_InvalidUpcard(t *testing.T) {
	for _, up := range []int{0, 11, -3} {
		o := ComputeOptions(12, up)
		assert.Equal(t, model.Options{}, o, "upcard %d", up)
		assert.False(t, o.Valid())
	}
	assert.False(t, ComputeOptions(-1, 5).Valid())
}

func TestComputeOptions_UnreachableHand(t *testing.T) {
	for _, hand := range []int{rules.MaxTotal + 1, math.MaxInt, math.MaxInt - 5, math.MinInt} {
		var o model.Options
		require.NotPanics(t, func() { o = ComputeOptions(hand, 5) }, "hand %d", hand)
		assert.Equal(t, model.Options{}, o, "hand %d", hand)
	}

	e := newEvaluator(t, 5)
	require.NotPanics(t, func() { e.Options(-1) })
	assert.False(t, e.Options(-1).Valid())
	assert.False(t, e.Options(math.MaxInt).Valid())

	o := ComputeOptions(rules.MaxTotal, 5)
	require.True(t, o.Valid())
	assert.Equal(t, model.Busted, o.Stand())
	assert.Equal(t, model.Busted, o.Optimal())
}

func TestForcedHit_FromBustedTotal(t *testing.T) {
	e := newEvaluator(t, 9)
	for _, s := range []int{rules.Target + 1, rules.MaxTotal, math.MaxInt} {
		var r model.Outcome
		require.NotPanics(t, func() { r = e.ForcedHit(s) }, "s=%d", s)
		assert.Equal(t, model.Busted, r, "s=%d", s)
	}
}

func TestComputeOptions_ProbabilityBounds(t *testing.T) {
	for hand := rules.MinHand; hand <= rules.MaxHand; hand++ {
		for up := rules.MinCard; up <= rules.MaxCard; up++ {
			o := ComputeOptions(hand, up)
			require.True(t, o.Valid())

			for _, p := range []float64{o.StandWin, o.StandLoss, o.HitWin, o.HitLoss, o.OptWin, o.OptLoss} {
				assert.GreaterOrEqual(t, p, 0.0, "hand=%d up=%d", hand, up)
				assert.LessOrEqual(t, p, 1.0, "hand=%d up=%d", hand, up)
			}
			assert.LessOrEqual(t, o.StandWin+o.StandLoss, 1+eps, "hand=%d up=%d", hand, up)
			assert.LessOrEqual(t, o.HitWin+o.HitLoss, 1+eps, "hand=%d up=%d", hand, up)
			assert.LessOrEqual(t, o.OptWin+o.OptLoss, 1+eps, "hand=%d up=%d", hand, up)
			assert.GreaterOrEqual(t, o.StandPush(), 0.0)
		}
	}
}

func TestComputeOptions_StandWinMonotonic(t *testing.T) {
	for up := rules.MinCard; up <= rules.MaxCard; up++ {
		prev := ComputeOptions(rules.MinHand, up).StandWin
		for hand := rules.MinHand + 1; hand <= rules.MaxHand; hand++ {
			cur := ComputeOptions(hand, up).StandWin
			assert.GreaterOrEqual(t, cur+eps, prev, "hand=%d up=%d", hand, up)
			prev = cur
		}
	}
}

func TestComputeOptions_OptimalDominates(t *testing.T) {
	for hand := rules.MinHand; hand <= rules.MaxHand; hand++ {
		for up := rules.MinCard; up <= rules.MaxCard; up++ {
			o := ComputeOptions(hand, up)
			assert.GreaterOrEqual(t, o.OptWin, o.StandWin, "hand=%d up=%d", hand, up)
			assert.GreaterOrEqual(t, o.OptWin, o.HitWin, "hand=%d up=%d", hand, up)
		}
	}
}

func TestComputeOptions_AlreadyBust(t *testing.T) {
	for up := rules.MinCard; up <= rules.MaxCard; up++ {
		o := ComputeOptions(22, up)
		assert.Equal(t, 0.0, o.StandWin)
		assert.Equal(t, 1.0, o.StandLoss)
		assert.Equal(t, 0.0, o.OptWin)
		assert.Equal(t, 1.0, o.OptLoss)
		// Zero win on both sides is a tie, not a bust label.
		assert.Equal(t, model.ActionEqual, o.BestAction)
	}
}

func TestComputeOptions_AceStrongerThanSixForMostTotals(t *testing.T) {
	lower := 0
	total := 0
	for hand := rules.MinHand; hand <= rules.MaxHand; hand++ {
		total++
		if ComputeOptions(hand, 1).StandWin < ComputeOptions(hand, 6).StandWin {
			lower++
		}
	}
	assert.GreaterOrEqual(t, lower*4, total*3, "ace lower on only %d of %d totals", lower, total)
}

func TestComputeOptions_Idempotent(t *testing.T) {
	for _, tc := range []struct{ hand, up int }{{4, 1}, {12, 4}, {16, 10}, {21, 6}} {
		first := ComputeOptions(tc.hand, tc.up)
		second := ComputeOptions(tc.hand, tc.up)
		assert.Equal(t, first, second)
	}
}

func TestComputeOptions_ReferenceCells(t *testing.T) {
	o := ComputeOptions(16, 10)
	assert.Equal(t, model.ActionHit, o.BestAction)
	assert.InDelta(t, 0.2142195, o.StandWin, 1e-9)
	assert.InDelta(t, 0.28912829, o.HitWin, 1e-9)
	assert.InDelta(t, 0.28912829, o.OptWin, 1e-9)

	o = ComputeOptions(20, 1)
	assert.Equal(t, model.ActionStand, o.BestAction)
	assert.InDelta(t, 0.7611140162168698, o.StandWin, 1e-9)
	assert.InDelta(t, 0.10872504784156511, o.StandLoss, 1e-9)
	assert.InDelta(t, 0.9, o.HitLoss, 1e-9)

	o = ComputeOptions(12, 4)
	assert.Equal(t, model.ActionHit, o.BestAction)
	assert.InDelta(t, 0.43612199899141757, o.OptWin, 1e-9)
}

func TestComputeOptions_LabelUsesOneCardHit(t *testing.T) {
	// 17 against a 6: standing beats a forced hit, and the label follows the
	// one-card comparison even though Optimal also stands here.
	o := ComputeOptions(17, 6)
	assert.Equal(t, model.ActionStand, o.BestAction)
	assert.InDelta(t, 0.27431975398999997, o.HitWin, 1e-9)
	assert.Equal(t, o.StandWin, o.OptWin)
}

func TestEvaluatorOptions_MatchesFreshQuery(t *testing.T) {
	e := newEvaluator(t, 9)
	for hand := rules.MaxHand; hand >= rules.MinHand; hand-- {
		assert.Equal(t, ComputeOptions(hand, 9), e.Options(hand), "hand=%d", hand)
	}
}

func TestOptimalChance(t *testing.T) {
	win, loss := OptimalChance(11, 6)
	o := ComputeOptions(11, 6)
	assert.Equal(t, o.OptWin, win)
	assert.Equal(t, o.OptLoss, loss)

	win, loss = OptimalChance(11, 0)
	assert.Zero(t, win)
	assert.Zero(t, loss)
}
