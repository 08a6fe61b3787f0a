package model

// Action is the label reported for the better of standing and hitting once.
type Action string

const (
	ActionStand Action = "stand"
	ActionHit   Action = "hit"
	ActionEqual Action = "equal"
	// ActionBust is kept for readers of older tables; valid queries never produce it.
	ActionBust Action = "bust"
)

// Options summarises one (hand total, dealer upcard) cell.
// A zero Options with an empty BestAction means the query was invalid.
type Options struct {
	HandScore    int
	DealerUpcard int

	StandWin  float64
	StandLoss float64
	HitWin    float64
	HitLoss   float64
	OptWin    float64
	OptLoss   float64

	BestAction Action
}

// Valid reports whether the options came from an accepted query.
func (o Options) Valid() bool { return o.BestAction != "" }

func (o Options) Stand() Outcome   { return Outcome{Win: o.StandWin, Loss: o.StandLoss} }
func (o Options) Hit() Outcome     { return Outcome{Win: o.HitWin, Loss: o.HitLoss} }
func (o Options) Optimal() Outcome { return Outcome{Win: o.OptWin, Loss: o.OptLoss} }

func (o Options) StandPush() float64 { return o.Stand().Push() }
func (o Options) HitPush() float64   { return o.Hit().Push() }
func (o Options) OptPush() float64   { return o.Optimal().Push() }
