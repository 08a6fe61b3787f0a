package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"BlackjackOdds/internal/engine"
	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// ErrInvalidRange is returned for hand ranges the engine cannot report on.
var ErrInvalidRange = errors.New("invalid hand range")

// Range bounds the player totals a sweep covers, inclusive.
type Range struct {
	MinHand int
	MaxHand int
}

// DefaultRange covers every two-card-or-more total from 4 to 21.
func DefaultRange() Range {
	return Range{MinHand: rules.MinHand, MaxHand: rules.MaxHand}
}

// Validate checks the range is ordered and inside 4..31.
func (r Range) Validate() error {
	if r.MinHand < rules.MinHand || r.MaxHand > rules.MaxTotal {
		return fmt.Errorf("%w: hands must lie in %d..%d, got %d..%d",
			ErrInvalidRange, rules.MinHand, rules.MaxTotal, r.MinHand, r.MaxHand)
	}
	if r.MinHand > r.MaxHand {
		return fmt.Errorf("%w: min %d above max %d", ErrInvalidRange, r.MinHand, r.MaxHand)
	}
	return nil
}

// Cells returns how many (hand, upcard) cells the range spans.
func (r Range) Cells() int {
	return (r.MaxHand - r.MinHand + 1) * rules.MaxCard
}

// Run evaluates every cell of r. Each dealer upcard is handled by its own
// goroutine, at most workers at a time (workers <= 0 means no limit). Every
// cell is a fresh engine query, so goroutines share nothing but the output
// slice, where each writes only its own indices.
func Run(ctx context.Context, r Range, workers int) (*model.Table, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	rows := make([]model.Options, r.Cells())
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for up := rules.MinCard; up <= rules.MaxCard; up++ {
		up := up
		g.Go(func() error {
			for hand := r.MinHand; hand <= r.MaxHand; hand++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				idx := (hand-r.MinHand)*rules.MaxCard + (up - rules.MinCard)
				rows[idx] = engine.ComputeOptions(hand, up)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	return &model.Table{
		MinHand:    r.MinHand,
		MaxHand:    r.MaxHand,
		Rows:       rows,
		ComputedAt: time.Now(),
	}, nil
}
