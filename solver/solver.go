// Package solver is the external interface of the core engine: five
// functions a host runtime calls across its FFI boundary (here: across an
// ordinary Go package boundary). No persistent state, no files, no
// sockets, no environment variables — everything below is a pure
// function of its arguments plus the once-built lookup tables.
package solver

import (
	"fmt"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/internal/equity"
	"github.com/lox/ploengine/internal/evaluator"
	"github.com/lox/ploengine/internal/strategy"
	"github.com/lox/ploengine/internal/tables"
)

// moduleVersion is bumped by hand on release; mirrors CARGO_PKG_VERSION
// in the original FFI surface.
const moduleVersion = "0.1.0"

// Init idempotently constructs the lookup tables. Any thread may call
// Evaluate, Equity, or Solve concurrently after the first successful
// Init call returns; tables.Get's sync.Once gives the happens-before
// guarantee this requires. Calling Init is optional — the first
// evaluation call builds the tables lazily — but callers that want to
// pay the one-time cost up front (e.g. at process start) can do so
// explicitly.
func Init() error {
	tables.Get()
	return nil
}

// Version returns a human-readable build identifier.
func Version() string {
	return fmt.Sprintf("github.com/lox/ploengine v%s", moduleVersion)
}

// Evaluate ranks a 5-card hand. Rejects input lengths != 5.
func Evaluate(cardIDs [5]byte) (uint32, error) {
	cs, err := toCards(cardIDs[:])
	if err != nil {
		return 0, err
	}
	r := evaluator.Evaluate5(cs[0], cs[1], cs[2], cs[3], cs[4])
	return uint32(r), nil
}

// Equity estimates hero's equity, assuming exactly 1 opponent. hand_size
// is inferred from len(hero) and must be 4, 5, or 6.
func Equity(hero, board []byte, sims uint32) (float64, error) {
	heroCards, err := toCards(hero)
	if err != nil {
		return 0, fmt.Errorf("equity: hero: %w", err)
	}
	boardCards, err := toCards(board)
	if err != nil {
		return 0, fmt.Errorf("equity: board: %w", err)
	}
	return equity.Simulate(heroCards, boardCards, nil, int(sims), 1, len(heroCards), equity.DefaultSeed)
}

// Solve runs the full pipeline: derive hand_size and sims, estimate
// equity, compute SPR, compute the mixed strategy, EV, and confidence.
func Solve(params SolveParams) (SolveResult, error) {
	handSize := handSizeForFormat(params.Format)

	hero, err := toCards(params.HeroCards)
	if err != nil {
		return SolveResult{}, fmt.Errorf("solve: hero_cards: %w", err)
	}
	board, err := toCards(params.BoardCards)
	if err != nil {
		return SolveResult{}, fmt.Errorf("solve: board_cards: %w", err)
	}
	dead, err := toCards(params.DeadCards)
	if err != nil {
		return SolveResult{}, fmt.Errorf("solve: dead_cards: %w", err)
	}
	if len(hero) != handSize {
		return SolveResult{}, fmt.Errorf("solve: hero_cards has %d cards, want %d for format %d", len(hero), handSize, params.Format)
	}

	opponents := maxInt(1, int(params.NumPlayers)-1)
	street := strategy.Street(params.Street)
	sims := simsFor(params.Format, params.Street)

	eq, err := equity.Simulate(hero, board, dead, sims, opponents, handSize, equity.DefaultSeed)
	if err != nil {
		return SolveResult{}, fmt.Errorf("solve: %w", err)
	}

	pot := maxInt(int(params.PotBB100), 1)
	spr := float64(params.HeroStack) / float64(pot)

	decision := strategy.Compute(strategy.Input{
		Equity:     eq,
		SPR:        spr,
		Street:     street,
		Position:   strategy.Position(params.Position),
		Opponents:  opponents,
		Sims:       sims,
		BoardCards: len(board),
		Pot:        int32(params.PotBB100),
	})

	raise := decision.RaiseAmount
	if raise < 0 {
		raise = 0
	}

	return SolveResult{
		Action:           uint32(decision.Action),
		RaiseAmountBB100: uint32(raise),
		Equity:           eq,
		EVBB100:          decision.EV,
		FreqFold:         decision.Freq[strategy.ActionFold],
		FreqCheck:        decision.Freq[strategy.ActionCheck],
		FreqCall:         decision.Freq[strategy.ActionCall],
		FreqRaise:        decision.Freq[strategy.ActionRaise],
		FreqAllIn:        decision.Freq[strategy.ActionAllIn],
		Confidence:       decision.Confidence,
	}, nil
}

// handSizeForFormat derives hand_size from format: PLO5 -> 5, PLO6 -> 6,
// anything else (including NLH) -> 5.
func handSizeForFormat(f Format) int {
	switch f {
	case FormatPLO6:
		return 6
	default:
		return 5
	}
}

// simsFor chooses the simulation count: PLO6 always gets 3000; otherwise
// river gets 8000, turn gets 5000, everything else 4000.
func simsFor(f Format, street Street) int {
	if f == FormatPLO6 {
		return 3000
	}
	switch street {
	case StreetRiver:
		return 8000
	case StreetTurn:
		return 5000
	default:
		return 4000
	}
}

func toCards(ids []byte) ([]cards.Card, error) {
	out := make([]cards.Card, len(ids))
	for i, id := range ids {
		if id > 51 {
			return nil, fmt.Errorf("card id %d out of range [0,51]", id)
		}
		out[i] = cards.Card(id)
	}
	if cards.HasDuplicates(out) {
		return nil, fmt.Errorf("duplicate card id in input")
	}
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
