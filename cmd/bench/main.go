// Command bench load-tests the equity simulator across multiple workers
// and reports throughput.
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/internal/config"
	"github.com/lox/ploengine/internal/equity"
)

var cli struct {
	Config  string  `help:"Path to an HCL config file." type:"existingfile"`
	Hero    []uint8 `help:"Hero card ids, 0-51." default:"51,47,43,39,35"`
	Board   []uint8 `help:"Board card ids, 0-51."`
	Sims    int     `help:"Override the configured simulation count."`
	Workers int     `help:"Override the configured worker count."`
}

func main() {
	kong.Parse(&cli, kong.Description("Benchmark the Monte-Carlo equity simulator."))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	cfg, err := config.LoadBenchConfig(cli.Config)
	if err != nil {
		logger.Fatal().Err(err).Msg("bench: failed to load config")
	}
	if cli.Sims > 0 {
		cfg.Sims = cli.Sims
	}
	if cli.Workers > 0 {
		cfg.Workers = cli.Workers
	}

	hero := make([]cards.Card, len(cli.Hero))
	for i, id := range cli.Hero {
		hero[i] = cards.Card(id)
	}
	board := make([]cards.Card, len(cli.Board))
	for i, id := range cli.Board {
		board[i] = cards.Card(id)
	}

	clock := quartz.NewReal()
	v, elapsed, rate, err := benchmarkRate(clock, cfg.Sims, func() (float64, error) {
		return equity.SimulateParallel(hero, board, nil, cfg.Sims, 1, len(hero), equity.DefaultSeed, cfg.Workers)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("bench: simulation failed")
	}

	logger.Info().
		Float64("equity", v).
		Int("sims", cfg.Sims).
		Int("workers", cfg.Workers).
		Dur("elapsed", elapsed).
		Float64("sims_per_sec", rate).
		Msg("bench: done")
}

// benchmarkRate times run against clock and derives a sims-per-second rate.
// Takes the clock as an injected quartz.Clock rather than calling
// time.Now/time.Since directly so tests can drive elapsed time with
// quartz.NewMock instead of depending on how long the real simulation takes.
func benchmarkRate(clock quartz.Clock, sims int, run func() (float64, error)) (equityVal float64, elapsed time.Duration, ratePerSec float64, err error) {
	start := clock.Now()
	equityVal, err = run()
	if err != nil {
		return 0, 0, 0, err
	}
	elapsed = clock.Since(start)
	ratePerSec = float64(sims) / elapsed.Seconds()
	return equityVal, elapsed, ratePerSec, nil
}
