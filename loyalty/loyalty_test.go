package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierThresholds(t *testing.T) {
	cases := []struct {
		points int64
		want   Tier
	}{
		{0, TierNone},
		{99, TierNone},
		{100, TierBronze},
		{250, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{999, TierSilver},
		{1000, TierGold},
		{5000, TierGold},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.points), "points=%d", tc.points)
	}
}

func TestDiscountSupersedes(t *testing.T) {
	assert.Equal(t, 0, DiscountPercent(TierNone))
	assert.Equal(t, 5, DiscountPercent(TierBronze))
	assert.Equal(t, 10, DiscountPercent(TierSilver))
	assert.Equal(t, 15, DiscountPercent(TierGold))
}

func tierRank(tier Tier) int {
	switch tier {
	case TierBronze:
		return 1
	case TierSilver:
		return 2
	case TierGold:
		return 3
	}
	return 0
}

// Tier must never decrease as points grow, and be stable on re-derivation.
func TestTierMonotonicAndIdempotent(t *testing.T) {
	prev := TierFor(0)
	for points := int64(0); points <= 1500; points++ {
		tier := TierFor(points)
		assert.GreaterOrEqual(t, tierRank(tier), tierRank(prev), "points=%d", points)
		assert.Equal(t, tier, TierFor(points))
		prev = tier
	}
}

func TestPointsToNextReward(t *testing.T) {
	assert.Equal(t, int64(50), PointsToNextReward(250))
	assert.Equal(t, int64(99), PointsToNextReward(1))
	assert.Equal(t, int64(1), PointsToNextReward(199))

	// Exact multiples of 100 have just earned the reward: 0 remaining,
	// not a full new cycle.
	assert.Equal(t, int64(0), PointsToNextReward(100))
	assert.Equal(t, int64(0), PointsToNextReward(700))
}

func TestRewardDerivation(t *testing.T) {
	// 250 points: Bronze, two free nights, ₦2,500,000 of reward value.
	assert.Equal(t, TierBronze, TierFor(250))
	assert.Equal(t, int64(2), FreeNights(250))
	assert.Equal(t, int64(2_500_000*100), RewardValue(250))
}

func TestPointsForSpend(t *testing.T) {
	// 1 point per ₦1,000 spent, amounts in kobo.
	assert.Equal(t, int64(0), PointsForSpend(0))
	assert.Equal(t, int64(0), PointsForSpend(99_999))
	assert.Equal(t, int64(1), PointsForSpend(100_000))
	assert.Equal(t, int64(151), PointsForSpend(15_187_500))
}
