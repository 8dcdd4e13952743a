package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Split key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Split, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "hand 1 wins"),
	),
	Right: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "hand 2 wins"),
	),
	Split: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "split pot"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the Bubble Tea model for the interactive quiz
type Model struct {
	dealer *Dealer
	logger *log.Logger
	help   help.Model

	round    Round
	last     *Result
	rounds   int // stop after this many answers, 0 for no limit
	quitting bool
}

// NewModel deals the first round. rounds limits how many answers are taken;
// zero plays until the user quits.
func NewModel(dealer *Dealer, logger *log.Logger, rounds int) *Model {
	return &Model{
		dealer: dealer,
		logger: logger.WithPrefix("quiz"),
		help:   help.New(),
		round:  dealer.Deal(),
		rounds: rounds,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var guess Guess
	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Left):
		guess = LeftWins
	case key.Matches(keyMsg, keys.Right):
		guess = RightWins
	case key.Matches(keyMsg, keys.Split):
		guess = Split
	default:
		return m, nil
	}

	res := m.dealer.Judge(m.round, guess)
	m.last = &res
	m.logger.Debug("Judged round",
		"guess", res.Guess,
		"answer", res.Answer,
		"left", res.Left,
		"right", res.Right)

	if m.rounds > 0 && m.dealer.Score().Total >= m.rounds {
		m.quitting = true
		return m, tea.Quit
	}
	m.round = m.dealer.Deal()
	return m, nil
}

// View renders the current round and the previous verdict
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Which hand wins?"))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render("score " + m.dealer.Score().String()))
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(verdict(*m.last))
		b.WriteString("\n\n")
	}
	if m.quitting {
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("1:"), renderHand(m.round.Left))
	fmt.Fprintf(&b, "%s %s\n\n", LabelStyle.Render("2:"), renderHand(m.round.Right))
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// Score returns the running tally.
func (m *Model) Score() Score {
	return m.dealer.Score()
}

func verdict(r Result) string {
	var b strings.Builder
	if r.Correct() {
		b.WriteString(SuccessStyle.Render("Correct!"))
	} else {
		b.WriteString(ErrorStyle.Render("Wrong:"))
	}
	fmt.Fprintf(&b, " %s\n", r.Answer)
	fmt.Fprintf(&b, "  1: %s  %s\n", renderHand(r.Round.Left), InfoStyle.Render(r.LeftDescribe))
	fmt.Fprintf(&b, "  2: %s  %s", renderHand(r.Round.Right), InfoStyle.Render(r.RightDescribe))
	return b.String()
}
