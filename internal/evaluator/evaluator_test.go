package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ploengine/internal/cards"
)

func c(id int) cards.Card { return cards.Card(id) }

func eval5(ids ...int) HandRank {
	if len(ids) != 5 {
		panic("eval5 requires 5 ids")
	}
	return Evaluate5(c(ids[0]), c(ids[1]), c(ids[2]), c(ids[3]), c(ids[4]))
}

func TestRoyalFlushInSpades(t *testing.T) {
	assert.Equal(t, HandRank(1), eval5(51, 47, 43, 39, 35))
}

func TestFlushBeatsStraight(t *testing.T) {
	flush := eval5(51, 47, 43, 39, 31)
	straight := eval5(48, 45, 42, 39, 32)
	assert.Less(t, flush, straight)
}

func TestPairOfAcesBeatsAceHigh(t *testing.T) {
	pair := eval5(48, 49, 43, 39, 35)
	highCard := eval5(48, 45, 42, 39, 31)
	assert.Less(t, pair, highCard)
}

func TestPLO5TripsOrBetterOnAcePairedBoard(t *testing.T) {
	hand := []cards.Card{c(48), c(49), c(40), c(36), c(32)}
	board := []cards.Card{c(50), c(44), c(38), c(30), c(20)}
	r := EvaluateOmaha(hand, board)
	assert.Less(t, r, HandRank(2000))
}

func TestPLO6QuadAces(t *testing.T) {
	hand := []cards.Card{c(48), c(49), c(50), c(40), c(36), c(32)}
	board := []cards.Card{c(51), c(44), c(38), c(30), c(20)}
	r := EvaluateOmaha(hand, board)
	assert.Less(t, r, HandRank(200))
}

func TestEvaluate5InRangeForAllCombinations(t *testing.T) {
	// Spot-check a broad sample rather than all 2,598,960 combinations.
	count := 0
	for a := 0; a < 52; a++ {
		for b := a + 1; b < 52; b++ {
			for x := 0; x < 52; x++ {
				if x == a || x == b {
					continue
				}
				r := eval5(a, b, x, (x+13)%52, (x+26)%52)
				if r == 0 {
					continue // duplicate synthetic ids are allowed to be undefined
				}
				assert.GreaterOrEqual(t, int(r), 1)
				assert.LessOrEqual(t, int(r), 7462)
				count++
				if count > 2000 {
					return
				}
			}
		}
	}
}

func TestEvaluate5InvariantUnderPermutation(t *testing.T) {
	r1 := eval5(51, 47, 43, 39, 31)
	r2 := eval5(31, 39, 43, 47, 51)
	r3 := eval5(39, 51, 31, 47, 43)
	assert.Equal(t, r1, r2)
	assert.Equal(t, r1, r3)
}

func TestEvaluate5InvariantUnderSuitRelabeling(t *testing.T) {
	// A-K-Q-J-9 suited (flush): relabel every suit by the same permutation
	// and the rank must not change.
	original := eval5(51, 47, 43, 39, 31) // all suit 3
	relabeled := eval5(48, 44, 40, 36, 28) // same ranks, all suit 0
	assert.Equal(t, original, relabeled)
}

func TestEvaluateSlicePanicsOnWrongLength(t *testing.T) {
	require.Panics(t, func() {
		EvaluateSlice([]cards.Card{c(0), c(1)})
	})
}

func TestCategoryMatchesBand(t *testing.T) {
	assert.Equal(t, CategoryStraightFlush, HandRank(1).Category())
	assert.Equal(t, CategoryFourOfAKind, HandRank(11).Category())
	assert.Equal(t, CategoryFullHouse, HandRank(167).Category())
	assert.Equal(t, CategoryFlush, HandRank(323).Category())
	assert.Equal(t, CategoryStraight, HandRank(1600).Category())
	assert.Equal(t, CategoryThreeOfAKind, HandRank(1610).Category())
	assert.Equal(t, CategoryTwoPair, HandRank(2468).Category())
	assert.Equal(t, CategoryOnePair, HandRank(3326).Category())
	assert.Equal(t, CategoryHighCard, HandRank(7462).Category())
}
