package solver

import "encoding/json"

// Format selects the game variant. NLH reuses the PLO5 hand-size shape
// (5 hole cards) per the literal derivation in §4.D of the document this
// engine implements — no distinct two-card hold'em evaluation rule is
// specified anywhere in it, so none is invented here. See DESIGN.md.
type Format uint32

const (
	FormatPLO5 Format = 0
	FormatPLO6 Format = 1
	FormatNLH  Format = 2
)

// Street mirrors strategy.Street at the wire boundary.
type Street uint32

const (
	StreetPreflop Street = 0
	StreetFlop    Street = 1
	StreetTurn    Street = 2
	StreetRiver   Street = 3
)

// Position mirrors strategy.Position at the wire boundary. BTN=0 .. CO=5.
type Position uint32

// SolveParams is the external-interface input to Solve. Two fields
// support an alternate naming convention: format/game_variant and
// num_players/num_opponents (the latter with +1 added internally to
// produce num_players), matching the field-alias support the original
// source exposes across its FFI boundary.
type SolveParams struct {
	Format        Format
	Street        Street
	HeroCards     []byte
	BoardCards    []byte
	DeadCards     []byte
	PotBB100      uint32
	HeroStack     uint32
	VillainStacks []uint32
	Position      Position
	NumPlayers    uint32
}

// solveParamsWire is the literal JSON shape, canonical and alias fields
// both present so json.Unmarshal fills whichever the caller sent.
type solveParamsWire struct {
	Format      *uint32 `json:"format"`
	GameVariant *uint32 `json:"game_variant"`

	Street uint32 `json:"street"`

	HeroCards     []byte   `json:"hero_cards"`
	BoardCards    []byte   `json:"board_cards"`
	DeadCards     []byte   `json:"dead_cards"`
	PotBB100      uint32   `json:"pot_bb100"`
	HeroStack     uint32   `json:"hero_stack"`
	VillainStacks []uint32 `json:"villain_stacks"`
	Position      uint32   `json:"position"`

	NumPlayers    *uint32 `json:"num_players"`
	NumOpponents  *uint32 `json:"num_opponents"`
}

// UnmarshalJSON resolves the two alias pairs: format takes precedence
// over game_variant, and num_players takes precedence over num_opponents
// (which is converted via +1, since num_opponents counts villains only).
func (p *SolveParams) UnmarshalJSON(data []byte) error {
	var w solveParamsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch {
	case w.Format != nil:
		p.Format = Format(*w.Format)
	case w.GameVariant != nil:
		p.Format = Format(*w.GameVariant)
	default:
		p.Format = FormatPLO5
	}

	switch {
	case w.NumPlayers != nil:
		p.NumPlayers = *w.NumPlayers
	case w.NumOpponents != nil:
		p.NumPlayers = *w.NumOpponents + 1
	}

	p.Street = Street(w.Street)
	p.HeroCards = w.HeroCards
	p.BoardCards = w.BoardCards
	p.DeadCards = w.DeadCards
	p.PotBB100 = w.PotBB100
	p.HeroStack = w.HeroStack
	p.VillainStacks = w.VillainStacks
	p.Position = Position(w.Position)

	return nil
}

// MarshalJSON emits only the canonical field names.
func (p SolveParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Format        Format   `json:"format"`
		Street        Street   `json:"street"`
		HeroCards     []byte   `json:"hero_cards"`
		BoardCards    []byte   `json:"board_cards"`
		DeadCards     []byte   `json:"dead_cards"`
		PotBB100      uint32   `json:"pot_bb100"`
		HeroStack     uint32   `json:"hero_stack"`
		VillainStacks []uint32 `json:"villain_stacks"`
		Position      Position `json:"position"`
		NumPlayers    uint32   `json:"num_players"`
	}{
		Format:        p.Format,
		Street:        p.Street,
		HeroCards:     p.HeroCards,
		BoardCards:    p.BoardCards,
		DeadCards:     p.DeadCards,
		PotBB100:      p.PotBB100,
		HeroStack:     p.HeroStack,
		VillainStacks: p.VillainStacks,
		Position:      p.Position,
		NumPlayers:    p.NumPlayers,
	})
}

// SolveResult is the external-interface output of Solve.
type SolveResult struct {
	Action           uint32  `json:"action"`
	RaiseAmountBB100 uint32  `json:"raise_amount_bb100"`
	Equity           float64 `json:"equity"`
	EVBB100          int32   `json:"ev_bb100"`
	FreqFold         float64 `json:"freq_fold"`
	FreqCheck        float64 `json:"freq_check"`
	FreqCall         float64 `json:"freq_call"`
	FreqRaise        float64 `json:"freq_raise"`
	FreqAllIn        float64 `json:"freq_allin"`
	Confidence       float64 `json:"confidence"`
}
