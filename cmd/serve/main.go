// Command serve runs the WebSocket bridge that exposes the solver to a
// host runtime.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/ploengine/internal/bridge"
	"github.com/lox/ploengine/internal/config"
	"github.com/lox/ploengine/solver"
)

var cli struct {
	Config     string `help:"Path to an HCL config file." type:"existingfile"`
	ListenAddr string `help:"Override the configured listen address." default:""`
	LogLevel   string `help:"Override the configured log level (debug, info, warn, error)." default:""`
}

func main() {
	kong.Parse(&cli, kong.Description("WebSocket bridge exposing the PLO/NLH solver."))

	cfg, err := config.LoadBridgeConfig(cli.Config)
	if err != nil {
		log.Fatal().Err(err).Msg("serve: failed to load config")
	}
	if cli.ListenAddr != "" {
		cfg.ListenAddr = cli.ListenAddr
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	if err := solver.Init(); err != nil {
		logger.Fatal().Err(err).Msg("serve: failed to initialise lookup tables")
	}
	logger.Info().Str("version", solver.Version()).Msg("serve: tables ready")

	srv := bridge.New(logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", srv)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("serve: listening")
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		logger.Fatal().Err(err).Msg("serve: exited")
	}
}
