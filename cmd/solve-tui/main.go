// Command solve-tui runs an interactive terminal explorer: type a hand and
// see solver.Solve's decision rendered live.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	clog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/ploengine/internal/tui"
	"github.com/lox/ploengine/solver"
)

func main() {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Level: clog.WarnLevel})
	logger.SetColorProfile(termenv.TrueColor)

	if err := solver.Init(); err != nil {
		logger.Fatal("solve-tui: failed to initialise tables", "err", err)
	}

	p := tea.NewProgram(tui.New(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "solve-tui:", err)
		os.Exit(1)
	}
}
