package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/router"
	"github.com/abhisek/batball/internal/store"
	"github.com/abhisek/batball/internal/ui/layout"
	"github.com/abhisek/batball/internal/ui/theme"
)

// PageSize is the number of rounds loaded when the screen opens.
const PageSize = 50

type historyLoadedMsg struct {
	Rounds []store.RoundEventRecord
	Err    error
}

// HistoryScreen lists the most recent rounds, newest first.
type HistoryScreen struct {
	rounds   store.RoundRepo
	records  []store.RoundEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(rounds store.RoundRepo) *HistoryScreen {
	return &HistoryScreen{
		rounds:   rounds,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.rounds
	return func() tea.Msg {
		recs, err := repo.RecentRounds(context.Background(), store.QueryOpts{Limit: PageSize})
		return historyLoadedMsg{Rounds: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Go play!")
	}

	// Keep the selection on screen.
	visible := max(height-2, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	var b strings.Builder
	b.WriteString("\n")

	for i := start; i < len(s.records) && i < start+visible; i++ {
		rec := s.records[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		player, _ := game.ParseMove(rec.PlayerMove)
		opponent, _ := game.ParseMove(rec.OpponentMove)
		line := fmt.Sprintf("%s%s  %s %-5s vs %s %-5s  %-4s  +%d",
			prefix, rec.Timestamp.Format("Jan 02 15:04:05"),
			player.Icon(), player.String(), opponent.Icon(), opponent.String(),
			rec.Outcome, rec.Points)

		style := lipgloss.NewStyle().Foreground(theme.OutcomeColor(rec.Outcome))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			power := progression.PowerLevel(rec.PowerLevel)
			detail := fmt.Sprintf("    #%d  combo x%d  %s %s  round %s",
				rec.Sequence, rec.Combo, power.Icon(), power.DisplayName(), shortID(rec.RoundID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
