// Package loyalty derives tiers and rewards from accumulated points.
// One point is earned per ₦1,000 spent on a completed booking.
package loyalty

// Tier is a named discount bracket.
type Tier string

const (
	TierNone   Tier = "none"
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Tier thresholds, inclusive.
const (
	bronzeThreshold = 100
	silverThreshold = 500
	goldThreshold   = 1000
)

// PointsPerNaira: 1 point per ₦1,000 spent, amounts tracked in kobo.
const koboPerPoint = 1000 * 100

// RewardValueKoboPerPoint: each point is worth ₦10,000 toward rewards.
const rewardValueKoboPerPoint = 10_000 * 100

// TierFor returns the tier for a point balance. Higher tiers supersede
// lower ones.
func TierFor(points int64) Tier {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	case points >= bronzeThreshold:
		return TierBronze
	default:
		return TierNone
	}
}

// DiscountPercent returns the room discount a tier grants.
func DiscountPercent(t Tier) int {
	switch t {
	case TierGold:
		return 15
	case TierSilver:
		return 10
	case TierBronze:
		return 5
	default:
		return 0
	}
}

// PointsToNextReward returns how many points remain until the next free
// night. At an exact multiple of 100 the reward has just been earned, so
// the answer is 0, not 100.
func PointsToNextReward(points int64) int64 {
	if points < 0 {
		points = 0
	}
	return (100 - points%100) % 100
}

// FreeNights returns the free nights a balance has earned (one per 100
// points).
func FreeNights(points int64) int64 {
	if points < 0 {
		return 0
	}
	return points / 100
}

// RewardValue returns the reward value of a balance in kobo.
func RewardValue(points int64) int64 {
	if points < 0 {
		return 0
	}
	return points * rewardValueKoboPerPoint
}

// PointsForSpend converts an amount spent (kobo) into earned points.
func PointsForSpend(amountKobo int64) int64 {
	if amountKobo <= 0 {
		return 0
	}
	return amountKobo / koboPerPoint
}
