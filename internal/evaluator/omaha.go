package evaluator

import (
	"fmt"

	"github.com/lox/ploengine/internal/cards"
)

// EvaluateOmaha returns the best HandRank achievable under the mandatory
// "exactly 2 from hand, exactly 3 from board" rule. hand must have 4-6
// cards and board exactly 5. Grounded on the nested strictly-increasing
// index-loop enumeration used throughout the original evaluator: no
// allocation, no duplicate pairings.
func EvaluateOmaha(hand, board []cards.Card) HandRank {
	if len(hand) < 4 || len(hand) > 6 {
		panic(fmt.Sprintf("evaluator: EvaluateOmaha requires 4-6 hand cards, got %d", len(hand)))
	}
	if len(board) != 5 {
		panic(fmt.Sprintf("evaluator: EvaluateOmaha requires exactly 5 board cards, got %d", len(board)))
	}

	best := HandRank(0)
	first := true

	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			for x := 0; x < len(board); x++ {
				for y := x + 1; y < len(board); y++ {
					for z := y + 1; z < len(board); z++ {
						r := Evaluate5(hand[i], hand[j], board[x], board[y], board[z])
						if first || r.Compare(best) > 0 {
							best = r
							first = false
						}
					}
				}
			}
		}
	}

	return best
}
