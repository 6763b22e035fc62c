package evaluator

import (
	"fmt"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/internal/tables"
)

// Evaluate5 maps any 5-card combination to a HandRank. Order-independent.
// Duplicate card ids yield an undefined but in-range value; checking for
// duplicates is the caller's responsibility (see cards.HasDuplicates).
func Evaluate5(c0, c1, c2, c3, c4 cards.Card) HandRank {
	t := tables.Get()

	b, flush := rankBitmaskAndFlush(c0, c1, c2, c3, c4)
	if flush {
		if r := t.Flush[b]; r != 0 {
			return HandRank(r)
		}
		// Only duplicate ids leave five suited cards with fewer than five
		// distinct ranks; those are ranked by the paired lookup below.
	}
	n := popcount13(b)
	if n == 5 {
		return HandRank(t.Unique5[b])
	}
	if n == 1 {
		// Five cards of one rank can only come from duplicate ids.
		return HandRank(tables.FourOfAKindLo)
	}

	pi := tables.RankPrimes[c0.Rank()] * tables.RankPrimes[c1.Rank()] * tables.RankPrimes[c2.Rank()] *
		tables.RankPrimes[c3.Rank()] * tables.RankPrimes[c4.Rank()]
	rank, ok := t.Rank(pi)
	if !ok {
		// Every paired-hand signature is present in the production map;
		// reaching here means the map was built incorrectly.
		panic(fmt.Sprintf("evaluator: no rank for prime signature %d", pi))
	}
	return HandRank(rank)
}

// EvaluateSlice evaluates a 5-element slice of cards. Panics if len(c) != 5.
func EvaluateSlice(c []cards.Card) HandRank {
	if len(c) != 5 {
		panic(fmt.Sprintf("evaluator: EvaluateSlice requires exactly 5 cards, got %d", len(c)))
	}
	return Evaluate5(c[0], c[1], c[2], c[3], c[4])
}
