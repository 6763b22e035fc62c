// Package evaluator implements the constant-time 5-card hand evaluator and
// the Omaha "2-from-hand x 3-from-board" enumerator built on top of it.
package evaluator

import (
	"fmt"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/internal/tables"
)

// HandRank is an integer in [1,7462], lower is better. Ties are equality.
type HandRank uint16

// Category classifies a HandRank into its poker hand type by band
// membership (see internal/tables for the band boundaries).
type Category int

const (
	CategoryHighCard Category = iota
	CategoryOnePair
	CategoryTwoPair
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
)

// Category returns the hand category this rank falls into.
func (r HandRank) Category() Category {
	switch {
	case r <= tables.StraightFlushHi:
		return CategoryStraightFlush
	case r <= tables.FourOfAKindHi:
		return CategoryFourOfAKind
	case r <= tables.FullHouseHi:
		return CategoryFullHouse
	case r <= tables.FlushHi:
		return CategoryFlush
	case r <= tables.StraightHi:
		return CategoryStraight
	case r <= tables.ThreeOfAKindHi:
		return CategoryThreeOfAKind
	case r <= tables.TwoPairHi:
		return CategoryTwoPair
	case r <= tables.OnePairHi:
		return CategoryOnePair
	default:
		return CategoryHighCard
	}
}

func (c Category) String() string {
	switch c {
	case CategoryStraightFlush:
		return "straight flush"
	case CategoryFourOfAKind:
		return "four of a kind"
	case CategoryFullHouse:
		return "full house"
	case CategoryFlush:
		return "flush"
	case CategoryStraight:
		return "straight"
	case CategoryThreeOfAKind:
		return "three of a kind"
	case CategoryTwoPair:
		return "two pair"
	case CategoryOnePair:
		return "one pair"
	default:
		return "high card"
	}
}

func (r HandRank) String() string {
	return fmt.Sprintf("%s (%d)", r.Category(), uint16(r))
}

// Compare returns 1, 0, or -1 as r is better than, equal to, or worse than
// other. Lower HandRank values are better, so comparisons are inverted
// relative to plain integer ordering.
func (r HandRank) Compare(other HandRank) int {
	switch {
	case r < other:
		return 1
	case r > other:
		return -1
	default:
		return 0
	}
}

// rankBitmaskAndFlush computes the 13-bit rank bitmask and whether all
// five cards share a suit.
func rankBitmaskAndFlush(c0, c1, c2, c3, c4 cards.Card) (uint16, bool) {
	b := uint16(1<<uint(c0.Rank())) | 1<<uint(c1.Rank()) | 1<<uint(c2.Rank()) | 1<<uint(c3.Rank()) | 1<<uint(c4.Rank())
	flush := c0.Suit() == c1.Suit() && c0.Suit() == c2.Suit() && c0.Suit() == c3.Suit() && c0.Suit() == c4.Suit()
	return b, flush
}

func popcount13(b uint16) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
