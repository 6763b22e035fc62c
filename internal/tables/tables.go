// Package tables builds the perfect-hash lookup structures the 5-card
// evaluator is keyed on: a flush table and a unique-rank table, each indexed
// by the 13-bit rank bitmask, plus a prime-signature map for every paired,
// tripped, or quaded hand shape. All three are pure functions of the rules
// of poker, built once behind a sync.Once and never mutated afterwards —
// the lifecycle the teacher's evaluator package documents for its own
// lookup tables (build once, publish, read-only forever).
package tables

import "sync"

// RankPrimes are the 13 primes assigned to ranks 2..A, used to build a
// multiset-unique signature (the product over five cards) for any 5-card
// combination containing a repeated rank.
var RankPrimes = [13]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Hand rank bands, lower is better; each band is one hand category.
const (
	RoyalFlush       = 1
	StraightFlushLo  = 2
	StraightFlushHi  = 10
	FourOfAKindLo    = 11
	FourOfAKindHi    = 166
	FullHouseLo      = 167
	FullHouseHi      = 322
	FlushLo          = 323
	FlushHi          = 1599
	StraightLo       = 1600
	StraightHi       = 1609
	ThreeOfAKindLo   = 1610
	ThreeOfAKindHi   = 2467
	TwoPairLo        = 2468
	TwoPairHi        = 3325
	OnePairLo        = 3326
	OnePairHi        = 6185
	HighCardLo       = 6186
	HighCardHi       = 7462
)

const tableSize = 8192 // 13-bit rank-bitmask key space
const bitmaskMask = 0x1FFF

// straightMasks are the ten consecutive-rank bitmasks, royal first, the
// ace-low wheel last. Rank index 12 is the ace, so the ace-high straight
// occupies bits 8..12 and the wheel is the irregular bottom entry.
var straightMasks = [10]uint16{
	0b1_1111_0000_0000, // A K Q J T
	0b0_1111_1000_0000, // K Q J T 9
	0b0_0111_1100_0000, // Q J T 9 8
	0b0_0011_1110_0000, // J T 9 8 7
	0b0_0001_1111_0000, // T 9 8 7 6
	0b0_0000_1111_1000, // 9 8 7 6 5
	0b0_0000_0111_1100, // 8 7 6 5 4
	0b0_0000_0011_1110, // 7 6 5 4 3
	0b0_0000_0001_1111, // 6 5 4 3 2
	0b1_0000_0000_1111, // 5 4 3 2 A (wheel)
}

// Tables holds the three lookup structures. The test-only fallback
// classifier toggle is a package variable (see fallback.go), not a field.
type Tables struct {
	Flush   [tableSize]uint16
	Unique5 [tableSize]uint16
	Paired  map[uint64]uint16
}

var (
	once sync.Once
	tbl  *Tables
)

// Get returns the process-wide lookup tables, building them on first call.
// Safe for concurrent use: subsequent callers observe the fully published
// tables with no further synchronisation, per the happens-before guarantee
// of sync.Once.
func Get() *Tables {
	once.Do(func() {
		tbl = build()
	})
	return tbl
}

func build() *Tables {
	t := &Tables{Paired: make(map[uint64]uint16, 4888)}

	straightSet := make(map[uint16]bool, 10)
	for _, m := range straightMasks {
		straightSet[m] = true
	}

	// Straight flushes: ranks 1..10, royal first, wheel last.
	for i, m := range straightMasks {
		t.Flush[m&bitmaskMask] = uint16(RoyalFlush + i)
	}

	// Straights (non-flush): ranks 1600..1609, same mask order.
	for i, m := range straightMasks {
		t.Unique5[m&bitmaskMask] = uint16(StraightLo + i)
	}

	// Every 5-of-13 bitmask, enumerated in descending order so that a
	// higher top card always yields a lower (better) rank, with the
	// usual kicker tiebreak — then split into the non-straight-flush
	// and high-card bands.
	combos := fiveBitCombosDescending()
	flushRank := uint16(FlushLo)
	hcRank := uint16(HighCardLo)
	for _, m := range combos {
		if straightSet[m] {
			continue
		}
		t.Flush[m&bitmaskMask] = flushRank
		flushRank++
		t.Unique5[m&bitmaskMask] = hcRank
		hcRank++
	}

	buildPairedMap(t.Paired)

	return t
}

// fiveBitCombosDescending returns all C(13,5)=1287 thirteen-bit masks with
// exactly 5 bits set, ordered so that higher masks (interpreted as
// big-endian integers) come first.
func fiveBitCombosDescending() []uint16 {
	combos := make([]uint16, 0, 1287)
	for a := 12; a >= 4; a-- {
		for b := a - 1; b >= 3; b-- {
			for c := b - 1; c >= 2; c-- {
				for d := c - 1; d >= 1; d-- {
					for e := d - 1; e >= 0; e-- {
						combos = append(combos, uint16(1<<uint(a)|1<<uint(b)|1<<uint(c)|1<<uint(d)|1<<uint(e)))
					}
				}
			}
		}
	}
	return combos
}

// buildPairedMap populates the prime-signature -> rank map for the five
// paired-hand shapes, in the canonical ordering spec §4.A describes:
// higher repeated rank beats lower, then kickers high to low. Band sizes:
// quads 156, full house 156, trips 858, two pair 858, one pair 2860 — 4,888
// entries total.
func buildPairedMap(m map[uint64]uint16) {
	rank := uint16(FourOfAKindLo)
	for q := 12; q >= 0; q-- {
		for k := 12; k >= 0; k-- {
			if k == q {
				continue
			}
			sig := pow(RankPrimes[q], 4) * RankPrimes[k]
			m[sig] = rank
			rank++
		}
	}

	rank = FullHouseLo
	for t := 12; t >= 0; t-- {
		for p := 12; p >= 0; p-- {
			if p == t {
				continue
			}
			sig := pow(RankPrimes[t], 3) * pow(RankPrimes[p], 2)
			m[sig] = rank
			rank++
		}
	}

	rank = ThreeOfAKindLo
	for t := 12; t >= 0; t-- {
		for _, kk := range descendingPairs(t) {
			sig := pow(RankPrimes[t], 3) * RankPrimes[kk[0]] * RankPrimes[kk[1]]
			m[sig] = rank
			rank++
		}
	}

	rank = TwoPairLo
	for p1 := 12; p1 >= 1; p1-- {
		for p2 := p1 - 1; p2 >= 0; p2-- {
			for k := 12; k >= 0; k-- {
				if k == p1 || k == p2 {
					continue
				}
				sig := pow(RankPrimes[p1], 2) * pow(RankPrimes[p2], 2) * RankPrimes[k]
				m[sig] = rank
				rank++
			}
		}
	}

	rank = OnePairLo
	for p := 12; p >= 0; p-- {
		for _, kkk := range descendingTriples(p) {
			sig := pow(RankPrimes[p], 2) * RankPrimes[kkk[0]] * RankPrimes[kkk[1]] * RankPrimes[kkk[2]]
			m[sig] = rank
			rank++
		}
	}
}

func pow(base uint64, n int) uint64 {
	r := uint64(1)
	for i := 0; i < n; i++ {
		r *= base
	}
	return r
}

// descendingPairs returns every 2-combination of rank indices other than
// exclude, each pair ordered high-then-low, the set of pairs itself
// enumerated in descending lexicographic order.
func descendingPairs(exclude int) [][2]int {
	var out [][2]int
	for a := 12; a >= 0; a-- {
		if a == exclude {
			continue
		}
		for b := a - 1; b >= 0; b-- {
			if b == exclude {
				continue
			}
			out = append(out, [2]int{a, b})
		}
	}
	return out
}

// descendingTriples returns every 3-combination of rank indices other than
// exclude, each triple ordered high-to-low, enumerated in descending
// lexicographic order.
func descendingTriples(exclude int) [][3]int {
	var out [][3]int
	for a := 12; a >= 0; a-- {
		if a == exclude {
			continue
		}
		for b := a - 1; b >= 0; b-- {
			if b == exclude {
				continue
			}
			for c := b - 1; c >= 0; c-- {
				if c == exclude {
					continue
				}
				out = append(out, [3]int{a, b, c})
			}
		}
	}
	return out
}
