package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"BlackjackOdds/internal/model"
	"BlackjackOdds/internal/rules"
)

// actionMark is the single-letter chart symbol for an action.
func actionMark(a model.Action) string {
	switch a {
	case model.ActionStand:
		return "S"
	case model.ActionHit:
		return "H"
	case model.ActionEqual:
		return "="
	case model.ActionBust:
		return "X"
	default:
		return "?"
	}
}

// FormatChart renders the stand-vs-hit decision of every cell as a grid with
// one row per hand total and one column per dealer upcard.
func FormatChart(t *model.Table) string {
	var b strings.Builder

	b.WriteString("hand |")
	for up := rules.MinCard; up <= rules.MaxCard; up++ {
		label := fmt.Sprint(up)
		if up == 1 {
			label = "A"
		}
		b.WriteString(fmt.Sprintf(" %2s", label))
	}
	b.WriteString("\n-----+" + strings.Repeat("-", 3*rules.MaxCard) + "\n")

	for hand := t.MinHand; hand <= t.MaxHand; hand++ {
		b.WriteString(fmt.Sprintf("  %2d |", hand))
		for up := rules.MinCard; up <= rules.MaxCard; up++ {
			o, _ := t.Lookup(hand, up)
			b.WriteString(fmt.Sprintf(" %2s", actionMark(o.BestAction)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatRunSummary formats a one-line description of a finished sweep.
func FormatRunSummary(run *model.SweepRun) string {
	counts := map[model.Action]int{}
	cells := 0
	if run.Table != nil {
		cells = len(run.Table.Rows)
		for _, o := range run.Table.Rows {
			counts[o.BestAction]++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("sweep %s: %s cells in %s", run.ID, humanize.Comma(int64(cells)), run.Duration.Round(time.Millisecond)))
	b.WriteString(fmt.Sprintf(" (stand %d, hit %d, equal %d)",
		counts[model.ActionStand], counts[model.ActionHit], counts[model.ActionEqual]))
	if run.CSVPath != "" {
		b.WriteString(fmt.Sprintf(", wrote %s to %s", humanize.Bytes(uint64(run.CSVBytes)), run.CSVPath))
	}
	return b.String()
}
