// Package equity implements Monte-Carlo equity estimation: hero vs. N
// uniformly random opponents, given a possibly partial board and a set of
// dead cards, via partial Fisher-Yates shuffles of the residual deck.
package equity

import (
	"fmt"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/internal/evaluator"
)

// Simulate estimates hero's equity via sims independent partial shuffles
// of the residual deck. hand_size is the number of hole cards per player
// (Omaha only: 4, 5, or 6 — see internal/evaluator.EvaluateOmaha). Single
// threaded and stack-local: no process-wide state is read or written, so
// concurrent callers never interfere with each other.
//
// Returns 0.5 when the residual deck cannot supply enough cards for the
// board and every opponent — a documented fallback, not a failure.
func Simulate(hero, board, dead []cards.Card, sims, opponents, handSize int, seed uint64) (float64, error) {
	if handSize < 4 || handSize > 6 {
		return 0, fmt.Errorf("equity: hand_size must be 4-6, got %d", handSize)
	}
	if len(hero) != handSize {
		return 0, fmt.Errorf("equity: hero has %d cards, want %d", len(hero), handSize)
	}
	if len(board) > 5 {
		return 0, fmt.Errorf("equity: board has %d cards, want at most 5", len(board))
	}
	if cards.HasDuplicates(hero, board, dead) {
		return 0, fmt.Errorf("equity: duplicate card id across hero, board, or dead")
	}

	deadSet := cards.NewSet(dead...).AddAll(hero).AddAll(board)
	deck := cards.Residual(deadSet)

	needBoard := 5 - len(board)
	needVillains := opponents * handSize
	if len(deck) < needBoard+needVillains {
		return 0.5, nil
	}

	rng := New(seed)

	boardBuf := make([]cards.Card, 5)
	copy(boardBuf, board)

	var wins, ties float64

	for i := 0; i < sims; i++ {
		partialFisherYates(deck, needBoard+needVillains, rng)

		copy(boardBuf[len(board):], deck[:needBoard])

		heroRank := evaluator.EvaluateOmaha(hero, boardBuf)

		heroStillAhead := true
		tied := false
		offset := needBoard
		for o := 0; o < opponents; o++ {
			villain := deck[offset : offset+handSize]
			offset += handSize

			vRank := evaluator.EvaluateOmaha(villain, boardBuf)
			switch vRank.Compare(heroRank) {
			case 1: // villain beats hero
				heroStillAhead = false
			case 0:
				tied = true
			}
			if !heroStillAhead {
				break
			}
		}

		if heroStillAhead {
			if tied {
				ties++
			} else {
				wins++
			}
		}
	}

	return (wins + ties/2) / float64(sims), nil
}

// partialFisherYates randomises deck[0:n) in place, leaving the suffix
// deck[n:] untouched. Called repeatedly across independent iterations,
// this amortises the cost of reshuffling the full deck every time —
// correctness relies on the prefix being freshly randomised on every call.
func partialFisherYates(deck []cards.Card, n int, rng *RNG) {
	for k := 0; k < n; k++ {
		j := k + rng.Intn(len(deck)-k)
		deck[k], deck[j] = deck[j], deck[k]
	}
}
