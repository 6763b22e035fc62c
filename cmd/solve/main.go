// Command solve runs a single solver call from flags and prints the
// result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/ploengine/solver"
)

var cli struct {
	Format     uint32   `help:"0=PLO5, 1=PLO6, 2=NLH." default:"0"`
	Street     uint32   `help:"0=preflop, 1=flop, 2=turn, 3=river." default:"1"`
	Hero       []uint8  `help:"Hero card ids, 0-51." required:""`
	Board      []uint8  `help:"Board card ids, 0-51."`
	Dead       []uint8  `help:"Dead card ids, 0-51."`
	Pot        uint32   `help:"Pot size in BB x100." default:"1000"`
	Stack      uint32   `help:"Hero stack in BB x100." default:"10000"`
	Position   uint32   `help:"Hero position, BTN=0..CO=5." default:"0"`
	NumPlayers uint32   `help:"Number of players at the table, including hero." default:"2"`
	Verbose    bool     `help:"Log progress to stderr." short:"v"`
}

func main() {
	kong.Parse(&cli, kong.Description("Run a single solve() call and print the result as JSON."))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if !cli.Verbose {
		logger = logger.Level(zerolog.Disabled)
	}

	if err := solver.Init(); err != nil {
		logger.Fatal().Err(err).Msg("solve: failed to initialise tables")
	}

	params := solver.SolveParams{
		Format:     solver.Format(cli.Format),
		Street:     solver.Street(cli.Street),
		HeroCards:  cli.Hero,
		BoardCards: cli.Board,
		DeadCards:  cli.Dead,
		PotBB100:   cli.Pot,
		HeroStack:  cli.Stack,
		Position:   solver.Position(cli.Position),
		NumPlayers: cli.NumPlayers,
	}

	logger.Info().Interface("params", params).Msg("solve: running")

	result, err := solver.Solve(params)
	if err != nil {
		logger.Fatal().Err(err).Msg("solve: failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
