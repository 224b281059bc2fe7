package entity

// BeltTierData holds the static properties of a belt tier. Tiers are
// never constructed at runtime by callers of this package; only the
// package-level flyweights below exist, so two tiers are the same tier
// exactly when their pointers are equal.
type BeltTierData struct {
	Name                string
	UndergroundDistance int
}

// BeltTier is a flyweight reference to one of the fixed belt tiers.
// Equality is pointer identity, not field-by-field comparison.
type BeltTier = *BeltTierData

var (
	// YellowBelt is the base tier: underground reach of 5 tiles.
	YellowBelt BeltTier = &BeltTierData{Name: "yellow", UndergroundDistance: 5}
	// RedBelt reaches 7 tiles underground.
	RedBelt BeltTier = &BeltTierData{Name: "red", UndergroundDistance: 7}
	// BlueBelt reaches 9 tiles underground.
	BlueBelt BeltTier = &BeltTierData{Name: "blue", UndergroundDistance: 9}
)

// BeltTiers lists every tier in ascending order, matching tier markers 1-3
// in the grid text format (§6).
var BeltTiers = []BeltTier{YellowBelt, RedBelt, BlueBelt}

// TierIndex returns tier's position in BeltTiers, or -1 if tier is not one
// of the package flyweights.
func TierIndex(tier BeltTier) int {
	for i, t := range BeltTiers {
		if t == tier {
			return i
		}
	}
	return -1
}

// TierByIndex returns the nth tier (0-indexed), or nil if out of range.
func TierByIndex(i int) BeltTier {
	if i < 0 || i >= len(BeltTiers) {
		return nil
	}
	return BeltTiers[i]
}
