// Package strategy implements the closed-form mapping from equity and
// game context to a mixed action-frequency vector, raise sizing, EV, and
// confidence. Pure function, no I/O, no shared state — grounded directly
// on compute_strategy/compute_ev/compute_confidence in the original
// engine this module reimplements.
package strategy

import "fmt"

// Position is hero's seat relative to the button.
type Position int

const (
	PositionBTN Position = iota
	PositionSB
	PositionBB
	PositionUTG
	PositionMP
	PositionCO
)

// Street is the current betting round.
type Street int

const (
	StreetPreflop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
)

// Action indexes both the frequency vector and the recommended action.
type Action int

const (
	ActionFold Action = iota
	ActionCheck
	ActionCall
	ActionRaise
	ActionAllIn
)

func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all-in"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

var positionBonus = map[Position]float64{
	PositionBTN: 0.06,
	PositionCO:  0.04,
	PositionMP:  0.02,
}

var streetMultiplier = map[Street]float64{
	StreetPreflop: 0.85,
	StreetFlop:    1.0,
	StreetTurn:    1.1,
	StreetRiver:   1.25,
}

const multiWayPenaltyPerOpponent = 0.04

// Input is the context the strategy engine reasons over.
type Input struct {
	Equity     float64
	SPR        float64
	Street     Street
	Position   Position
	Opponents  int
	Sims       int
	BoardCards int
	Pot        int32 // BB x100
}

// Decision is the strategy engine's output.
type Decision struct {
	Freq        [5]float64
	Action      Action
	RaiseAmount int32 // BB x100
	EV          int32 // BB x100
	Confidence  float64
	AdjEquity   float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func adjustedEquity(in Input) float64 {
	bonus := positionBonus[in.Position]
	penalty := multiWayPenaltyPerOpponent * float64(max(0, in.Opponents-1))
	return clamp(in.Equity+bonus-penalty, 0, 1)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Compute runs the full pipeline: adjusted equity, commitment/standard
// branch, normalisation, raise sizing, EV, and confidence.
func Compute(in Input) Decision {
	adjEquity := adjustedEquity(in)
	mult := streetMultiplier[in.Street]

	var freq [5]float64
	if in.SPR < 2 {
		freq, _ = commitmentBranch(adjEquity)
	} else {
		freq = standardBranch(adjEquity, mult)
	}

	normalize(&freq)
	action := argMax(freq)

	d := Decision{
		Freq:      freq,
		Action:    action,
		AdjEquity: adjEquity,
	}
	d.RaiseAmount = raiseSizing(in, freq, adjEquity)
	d.EV = computeEV(in, freq, d.RaiseAmount)
	d.Confidence = computeConfidence(in)

	return d
}

// commitmentBranch implements the SPR < 2 commitment heuristic. The bool
// return reports whether the shove sub-branch was taken; Compute uses only
// the frequency vector.
func commitmentBranch(adjEquity float64) ([5]float64, bool) {
	if adjEquity > 0.40 {
		return [5]float64{0, 0, 0, 0.10, 0.90}, true
	}
	return [5]float64{0.85, 0, 0.15, 0, 0}, false
}

type bucket struct {
	threshold                        float64
	fold, check, call, raiseM, allin float64
}

var buckets = []bucket{
	{0.75, 0, 0, 0.15, 0.75, 0.10},
	{0.60, 0, 0.10, 0.40, 0.50, 0},
	{0.45, 0.10, 0.30, 0.45, 0.15, 0},
	{0.30, 0.35, 0.40, 0.15, 0.10, 0},
	{0.18, 0.55, 0.35, 0, 0.10, 0},
}

func standardBranch(adjEquity, streetMult float64) [5]float64 {
	for _, b := range buckets {
		if adjEquity > b.threshold {
			return [5]float64{b.fold, b.check, b.call, b.raiseM * streetMult, b.allin}
		}
	}
	return [5]float64{0.85, 0.10, 0, 0.05, 0}
}

func normalize(freq *[5]float64) {
	var sum float64
	for _, f := range freq {
		sum += f
	}
	if sum == 0 {
		return
	}
	for i := range freq {
		freq[i] /= sum
	}
}

func argMax(freq [5]float64) Action {
	best := 0
	for i := 1; i < len(freq); i++ {
		if freq[i] > freq[best] {
			best = i
		}
	}
	return Action(best)
}

func raiseSizing(in Input, freq [5]float64, adjEquity float64) int32 {
	if freq[ActionRaise] <= 0.10 && freq[ActionAllIn] <= 0.10 {
		return 0
	}

	sprUnits := in.SPR * 100
	var amount float64
	switch in.Street {
	case StreetPreflop:
		amount = 300
	case StreetFlop:
		amount = 0.67 * sprUnits
	case StreetTurn:
		amount = 0.75 * sprUnits
	case StreetRiver:
		if adjEquity > 0.70 {
			amount = 1.0 * sprUnits
		} else {
			amount = 0.5 * sprUnits
		}
	}

	if amount > 99999 {
		amount = 99999
	}
	return int32(amount)
}

func computeEV(in Input, freq [5]float64, raise int32) int32 {
	pot := float64(in.Pot)
	callCost := 0.5 * pot
	evCall := in.Equity*pot - (1-in.Equity)*callCost
	evRaise := in.Equity*(pot+float64(raise)) - (1-in.Equity)*float64(raise)

	ev := freq[ActionCheck]*0.5*evCall +
		freq[ActionCall]*evCall +
		freq[ActionRaise]*evRaise +
		freq[ActionAllIn]*1.2*evRaise

	return int32(ev)
}

func computeConfidence(in Input) float64 {
	simConf := float64(in.Sims) / 10000
	if simConf > 1 {
		simConf = 1
	}

	var boardConf float64
	switch in.BoardCards {
	case 0:
		boardConf = 0.3
	case 3:
		boardConf = 0.6
	case 4:
		boardConf = 0.8
	case 5:
		boardConf = 0.95
	default:
		boardConf = 0.5
	}

	oppFactor := 1 - minFloat(0.3, 0.05*float64(in.Opponents))

	return clamp(simConf*boardConf*oppFactor, 0.1, 0.99)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
