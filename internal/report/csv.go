package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"BlackjackOdds/internal/model"
)

// DefaultPrecision is the number of decimals written for probabilities.
const DefaultPrecision = 6

// Header lists the CSV columns in order.
var Header = []string{
	"player_score", "dealer_upcard",
	"stand_win", "stand_loss", "stand_win_loss_ratio",
	"hit_win", "hit_loss", "hit_win_loss_ratio",
	"best_action",
	"opt_win", "opt_loss", "opt_win_loss_ratio",
}

// Ratio formats win/loss, or "inf" when loss is not positive.
func Ratio(win, loss float64, precision int) string {
	if loss <= 0 {
		return "inf"
	}
	return strconv.FormatFloat(win/loss, 'f', precision, 64)
}

// WriteCSV writes one row per cell of the table. Precision <= 0 falls back
// to DefaultPrecision.
func WriteCSV(w io.Writer, t *model.Table, precision int) error {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', precision, 64) }

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, o := range t.Rows {
		rec := []string{
			strconv.Itoa(o.HandScore), strconv.Itoa(o.DealerUpcard),
			f(o.StandWin), f(o.StandLoss), Ratio(o.StandWin, o.StandLoss, precision),
			f(o.HitWin), f(o.HitLoss), Ratio(o.HitWin, o.HitLoss, precision),
			string(o.BestAction),
			f(o.OptWin), f(o.OptLoss), Ratio(o.OptWin, o.OptLoss, precision),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d/%d: %w", o.HandScore, o.DealerUpcard, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
