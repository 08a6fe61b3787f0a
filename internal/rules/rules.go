package rules

// Card model for an infinite shoe: every value 1..10 is equally likely and
// the ace is always counted as 1.
const (
	MinCard = 1
	MaxCard = 10

	// Target is the bust threshold; any total above it is bust.
	Target = 21
	// DealerStand is the lowest total the dealer stands on.
	DealerStand = 17
	// MaxTotal is the highest reachable total (a 10 drawn on 21).
	MaxTotal = Target + MaxCard

	// MinHand and MaxHand bound the player totals a full sweep reports.
	MinHand = 4
	MaxHand = Target
)

// CardValues is the number of distinct, equally likely card values.
const CardValues = MaxCard - MinCard + 1

// Busted reports whether total exceeds Target.
func Busted(total int) bool { return total > Target }

// DealerStands reports whether the dealer stops drawing at total.
func DealerStands(total int) bool {
	return total >= DealerStand && total <= Target
}

// ValidUpcard reports whether card is a dealer upcard the model knows.
func ValidUpcard(card int) bool {
	return card >= MinCard && card <= MaxCard
}

// ValidHand reports whether total is a hand total some sequence of draws can
// reach, busted totals up to MaxTotal included.
func ValidHand(total int) bool {
	return total >= 0 && total <= MaxTotal
}
