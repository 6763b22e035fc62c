// Package tui implements an interactive explorer for a single solve() call:
// a human types hero/board/dead cards and table context, and the model
// renders the live Decision. Repurposed from the teacher's
// internal/display.TUIModel (viewport + text input + styled panes, built
// to play a hand against bots) into a one-shot inspector for solver.Solve.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/ploengine/internal/cards"
	"github.com/lox/ploengine/solver"
)

// Styles mirrors the teacher's TUIStyles grouping: one lipgloss.Style per
// visual concern, built once and reused across renders.
type Styles struct {
	LogPane   lipgloss.Style
	InputPane lipgloss.Style
	Header    lipgloss.Style
	HandInfo  lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1),
		InputPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Model is the bubbletea model: one text input line for a compact
// whitespace-separated "hero board dead pot stack pos players" spec, and a
// scrollable log of past solves with the most recent Decision at the bottom.
type Model struct {
	input    textinput.Model
	log      viewport.Model
	styles   *Styles
	history  []string
	lastErr  error
	width    int
	height   int
	quitting bool
}

// New builds a fresh Model with an empty history, input focused.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "hero board dead pot stack pos players  (e.g. 48,49,40,36,32 50,44,38,30,20 - 1000 5000 0 2)"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	vp := viewport.New(100, 20)
	vp.SetContent("")

	return &Model{
		input:  ti,
		log:    vp,
		styles: defaultStyles(),
	}
}

// Init starts the textinput cursor blink, matching the teacher's Init.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles bubbletea messages: window resize, submit-on-enter,
// up/down (or k/j) to scroll the log, quit on ctrl+c/esc.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = m.width - 4
		if m.height > 12 {
			m.log.Height = m.height - 10
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.submit(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
		case "up", "k":
			m.log.ScrollUp(1)
		case "down", "j":
			m.log.ScrollDown(1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the log pane above the input pane, styled per m.styles.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	logPane := m.styles.LogPane.Width(maxInt(m.width-4, 20)).Render(m.log.View())

	var inputContent strings.Builder
	inputContent.WriteString(m.input.View())
	inputContent.WriteString("\n")
	inputContent.WriteString(m.styles.Info.Render("Enter to solve \xb7 \xe2\x86\x91/\xe2\x86\x93 scroll \xb7 Ctrl+C to quit"))

	inputPane := m.styles.InputPane.Width(maxInt(m.width-4, 20)).Render(inputContent.String())

	return lipgloss.JoinVertical(lipgloss.Left, logPane, inputPane)
}

// submit parses one input line, runs solver.Solve, and appends the
// rendered result (or error) to the scrollback log.
func (m *Model) submit(line string) {
	if line == "" {
		return
	}

	params, err := parseLine(line)
	if err != nil {
		m.appendLog(m.styles.Error.Render(fmt.Sprintf("parse error: %v", err)))
		return
	}

	result, err := solver.Solve(params)
	if err != nil {
		m.appendLog(m.styles.Error.Render(fmt.Sprintf("solve error: %v", err)))
		return
	}

	m.appendLog(renderDecision(m.styles, line, result))
}

func (m *Model) appendLog(entry string) {
	m.history = append(m.history, entry)
	m.log.SetContent(strings.Join(m.history, "\n\n"))
	m.log.GotoBottom()
}

func renderDecision(s *Styles, line string, r solver.SolveResult) string {
	action := []string{"fold", "check", "call", "raise", "all-in"}[r.Action%5]
	return s.HandInfo.Render(line) + "\n" +
		s.Success.Render(fmt.Sprintf("action=%s  equity=%.3f  ev=%d  confidence=%.2f", action, r.Equity, r.EVBB100, r.Confidence)) + "\n" +
		s.Info.Render(fmt.Sprintf("freq fold=%.2f check=%.2f call=%.2f raise=%.2f allin=%.2f  raise_amount=%d",
			r.FreqFold, r.FreqCheck, r.FreqCall, r.FreqRaise, r.FreqAllIn, r.RaiseAmountBB100))
}

// parseLine decodes a compact whitespace-separated line:
//
//	hero board dead pot stack pos players
//
// where hero/board/dead are comma-separated card ids (or "-" for empty).
func parseLine(line string) (solver.SolveParams, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return solver.SolveParams{}, fmt.Errorf("want 7 space-separated fields, got %d", len(fields))
	}

	hero, err := parseCardList(fields[0])
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("hero: %w", err)
	}
	board, err := parseCardList(fields[1])
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("board: %w", err)
	}
	dead, err := parseCardList(fields[2])
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("dead: %w", err)
	}

	pot, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("pot: %w", err)
	}
	stack, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("stack: %w", err)
	}
	pos, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("pos: %w", err)
	}
	players, err := strconv.ParseUint(fields[6], 10, 32)
	if err != nil {
		return solver.SolveParams{}, fmt.Errorf("players: %w", err)
	}

	format := solver.FormatPLO5
	switch len(hero) {
	case 6:
		format = solver.FormatPLO6
	}

	street := solver.StreetPreflop
	switch len(board) {
	case 3:
		street = solver.StreetFlop
	case 4:
		street = solver.StreetTurn
	case 5:
		street = solver.StreetRiver
	}

	return solver.SolveParams{
		Format:     format,
		Street:     street,
		HeroCards:  hero,
		BoardCards: board,
		DeadCards:  dead,
		PotBB100:   uint32(pot),
		HeroStack:  uint32(stack),
		Position:   solver.Position(pos),
		NumPlayers: uint32(players),
	}, nil
}

func parseCardList(s string) ([]byte, error) {
	if s == "-" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("card id %q: %w", p, err)
		}
		if id > 51 {
			return nil, fmt.Errorf("card id %d out of range", id)
		}
		out = append(out, byte(id))
	}
	return out, nil
}

// CardString renders a card id in rank+suit notation, used by callers that
// want to echo parsed input back to the user.
func CardString(id byte) string {
	return cards.Card(id).String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
