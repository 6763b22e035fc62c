package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsTotalOnFiveBitKeys(t *testing.T) {
	tb := Get()
	combos := fiveBitCombosDescending()
	require.Len(t, combos, 1287)

	for _, m := range combos {
		assert.NotZero(t, tb.Flush[m&bitmaskMask], "flush entry for mask %013b", m)
		assert.NotZero(t, tb.Unique5[m&bitmaskMask], "unique5 entry for mask %013b", m)
	}
}

func TestPairedMapSize(t *testing.T) {
	tb := Get()
	assert.Len(t, tb.Paired, 4888)
}

func TestRoyalFlushIsRankOne(t *testing.T) {
	tb := Get()
	// A-K-Q-J-T, all spades: bitmask bits 8..12 set.
	assert.Equal(t, uint16(RoyalFlush), tb.Flush[0b1_1111_0000_0000])
}

func TestWheelStraightFlushIsRankTen(t *testing.T) {
	tb := Get()
	assert.Equal(t, uint16(StraightFlushHi), tb.Flush[0b1_0000_0000_1111])
}

func TestBandsDoNotOverlap(t *testing.T) {
	tb := Get()
	seen := make(map[uint16]bool)

	record := func(r uint16) {
		seen[r] = true
	}
	for _, v := range tb.Flush {
		if v != 0 {
			record(v)
		}
	}
	for _, v := range tb.Unique5 {
		if v != 0 {
			record(v)
		}
	}
	for _, v := range tb.Paired {
		record(v)
	}

	assert.Len(t, seen, 7462, "every rank 1..7462 should be produced exactly once")
	for r := uint16(1); r <= 7462; r++ {
		assert.True(t, seen[r], "rank %d never produced", r)
	}
}

func TestQuadAcesBeatsFullHouse(t *testing.T) {
	quadAces := pow(RankPrimes[12], 4) * RankPrimes[11] // AAAA K kicker
	fullHouse := pow(RankPrimes[0], 3) * pow(RankPrimes[1], 2) // 222 33

	tb := Get()
	quadRank, ok := tb.Rank(quadAces)
	require.True(t, ok)
	fhRank, ok := tb.Rank(fullHouse)
	require.True(t, ok)

	assert.Less(t, quadRank, fhRank)
	assert.LessOrEqual(t, quadRank, uint16(FourOfAKindHi))
	assert.GreaterOrEqual(t, fhRank, uint16(FullHouseLo))
}

func TestClassifyByCountsStaysWithinBand(t *testing.T) {
	quadAces := pow(RankPrimes[12], 4) * RankPrimes[11]
	r := ClassifyByCounts(quadAces)
	assert.GreaterOrEqual(t, r, uint16(FourOfAKindLo))
	assert.LessOrEqual(t, r, uint16(FourOfAKindHi))
}

func TestFallbackClassifierToggle(t *testing.T) {
	require.False(t, FallbackClassifierEnabled())
	SetFallbackClassifier(true)
	defer SetFallbackClassifier(false)
	assert.True(t, FallbackClassifierEnabled())
}
