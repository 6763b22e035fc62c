package solver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitIsIdempotent(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())
}

func TestVersionReportsModulePath(t *testing.T) {
	assert.Contains(t, Version(), "ploengine")
}

func TestEvaluateRoyalFlush(t *testing.T) {
	r, err := Evaluate([5]byte{51, 47, 43, 39, 35})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), r)
}

func TestEvaluateRejectsOutOfRangeID(t *testing.T) {
	_, err := Evaluate([5]byte{255, 47, 43, 39, 35})
	assert.Error(t, err)
}

func TestEquityInRange(t *testing.T) {
	hero := []byte{51, 47, 43, 39, 35}
	v, err := Equity(hero, nil, 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestSolveReturnsNormalizedFrequencies(t *testing.T) {
	params := SolveParams{
		Format:     FormatPLO5,
		Street:     StreetFlop,
		HeroCards:  []byte{51, 47, 43, 39, 35},
		PotBB100:   1000,
		HeroStack:  5000,
		Position:   Position(0),
		NumPlayers: 2,
	}
	result, err := Solve(params)
	require.NoError(t, err)

	sum := result.FreqFold + result.FreqCheck + result.FreqCall + result.FreqRaise + result.FreqAllIn
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.GreaterOrEqual(t, result.Confidence, 0.1)
	assert.LessOrEqual(t, result.Confidence, 0.99)
}

func TestSolveIsDeterministic(t *testing.T) {
	params := SolveParams{
		Format:     FormatPLO5,
		Street:     StreetTurn,
		HeroCards:  []byte{48, 49, 40, 36, 32},
		BoardCards: []byte{50, 44, 38, 30, 20},
		PotBB100:   2000,
		HeroStack:  6000,
		NumPlayers: 3,
	}
	r1, err := Solve(params)
	require.NoError(t, err)
	r2, err := Solve(params)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestSolveParamsUnmarshalCanonicalFields(t *testing.T) {
	var p SolveParams
	err := json.Unmarshal([]byte(`{"format":1,"num_players":4}`), &p)
	require.NoError(t, err)
	assert.Equal(t, FormatPLO6, p.Format)
	assert.Equal(t, uint32(4), p.NumPlayers)
}

func TestSolveParamsUnmarshalAliasFields(t *testing.T) {
	var p SolveParams
	err := json.Unmarshal([]byte(`{"game_variant":1,"num_opponents":3}`), &p)
	require.NoError(t, err)
	assert.Equal(t, FormatPLO6, p.Format)
	assert.Equal(t, uint32(4), p.NumPlayers) // num_opponents + 1
}

func TestSolveParamsCanonicalTakesPrecedenceOverAlias(t *testing.T) {
	var p SolveParams
	err := json.Unmarshal([]byte(`{"format":0,"game_variant":1}`), &p)
	require.NoError(t, err)
	assert.Equal(t, FormatPLO5, p.Format)
}

func TestSolveRejectsWrongHeroCardCount(t *testing.T) {
	_, err := Solve(SolveParams{Format: FormatPLO5, HeroCards: []byte{1, 2}, NumPlayers: 2, PotBB100: 100, HeroStack: 100})
	assert.Error(t, err)
}

func TestSimsForPLO6AlwaysThreeThousand(t *testing.T) {
	assert.Equal(t, 3000, simsFor(FormatPLO6, StreetRiver))
	assert.Equal(t, 3000, simsFor(FormatPLO6, StreetPreflop))
}

func TestSimsForStreetDefaults(t *testing.T) {
	assert.Equal(t, 8000, simsFor(FormatPLO5, StreetRiver))
	assert.Equal(t, 5000, simsFor(FormatPLO5, StreetTurn))
	assert.Equal(t, 4000, simsFor(FormatPLO5, StreetFlop))
	assert.Equal(t, 4000, simsFor(FormatNLH, StreetPreflop))
}
