package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BlackjackOdds/internal/engine"
	"BlackjackOdds/internal/rules"
)

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"default", DefaultRange(), false},
		{"single hand", Range{MinHand: 12, MaxHand: 12}, false},
		{"up to max total", Range{MinHand: 20, MaxHand: rules.MaxTotal}, false},
		{"below four", Range{MinHand: 3, MaxHand: 21}, true},
		{"above max total", Range{MinHand: 4, MaxHand: 32}, true},
		{"reversed", Range{MinHand: 18, MaxHand: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_DefaultTable(t *testing.T) {
	tbl, err := Run(context.Background(), DefaultRange(), 4)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 18*10)

	// Rows are ordered by hand total, then upcard.
	assert.Equal(t, 4, tbl.Rows[0].HandScore)
	assert.Equal(t, 1, tbl.Rows[0].DealerUpcard)
	assert.Equal(t, 21, tbl.Rows[len(tbl.Rows)-1].HandScore)
	assert.Equal(t, 10, tbl.Rows[len(tbl.Rows)-1].DealerUpcard)

	for _, o := range tbl.Rows {
		assert.True(t, o.Valid())
		assert.Equal(t, engine.ComputeOptions(o.HandScore, o.DealerUpcard), o)
	}

	o, ok := tbl.Lookup(16, 10)
	require.True(t, ok)
	assert.Equal(t, 16, o.HandScore)
	assert.Equal(t, 10, o.DealerUpcard)
	assert.False(t, tbl.ComputedAt.IsZero())
}

func TestRun_WorkerCountDoesNotChangeResults(t *testing.T) {
	r := Range{MinHand: 10, MaxHand: 14}
	serial, err := Run(context.Background(), r, 1)
	require.NoError(t, err)
	parallel, err := Run(context.Background(), r, 0)
	require.NoError(t, err)
	assert.Equal(t, serial.Rows, parallel.Rows)
}

func TestRun_InvalidRange(t *testing.T) {
	_, err := Run(context.Background(), Range{MinHand: 2, MaxHand: 21}, 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, DefaultRange(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
