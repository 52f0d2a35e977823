package arcade

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/ui/components"
	"github.com/abhisek/batball/internal/ui/layout"
	"github.com/abhisek/batball/internal/ui/theme"
)

func (s *ArcadeScreen) View(width, height int) string {
	if s.confirmReset {
		return renderResetConfirm(width, height)
	}

	rec := s.game.CurrentScore()
	cardWidth := min(width-4, 64)

	sections := []string{
		"",
		s.renderMatchup(),
		s.renderOutcome(),
		"",
		s.renderScoreboard(rec, cardWidth),
		"",
		s.renderMeters(rec, cardWidth),
		"",
		s.renderPicker(),
	}
	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	lines := make([]string, 0, len(sections))
	for _, sec := range sections {
		lines = append(lines, layout.Centered(width, sec))
	}
	return lipgloss.NewStyle().Height(height).Render(strings.Join(lines, "\n"))
}

func (s *ArcadeScreen) renderMatchup() string {
	player, opponent := "?", "?"
	switch {
	case s.Revealing():
		player = s.pending.Icon() + " " + s.pending.String()
		opponent = "…"
	case s.last != nil:
		player = s.last.PlayerMove.Icon() + " " + s.last.PlayerMove.String()
		opponent = s.last.OpponentMove.Icon() + " " + s.last.OpponentMove.String()
	}

	side := lipgloss.NewStyle().Width(14).Align(lipgloss.Center).Bold(true)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Body.Render("You ")+side.Foreground(theme.Primary).Render(player),
		theme.Hint.Render("  vs  "),
		side.Foreground(theme.Info).Render(opponent)+theme.Body.Render(" CPU"),
	)
}

func (s *ArcadeScreen) renderOutcome() string {
	if s.Revealing() {
		return theme.Hint.Render("Bowling…")
	}
	if s.last == nil {
		return theme.Subtitle.Render("Pick your move to start the match")
	}

	a := s.last.Award
	headline := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.OutcomeColor(s.last.Outcome.String())).
		Render(s.last.Outcome.DisplayName())

	detail := fmt.Sprintf("+%d pts", a.Points)
	if a.ComboMultiplier > 1 {
		detail += fmt.Sprintf("  combo x%d", a.ComboMultiplier)
	}
	if a.PowerMultiplier > 1 {
		detail += fmt.Sprintf("  power x%d", a.PowerMultiplier)
	}

	lines := []string{headline + "  " + theme.Hint.Render(detail)}
	if a.Milestone != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(a.Milestone))
	}
	if a.LeveledUp() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Render(
			fmt.Sprintf("Level up! Now level %d", a.LevelAfter)))
	}
	if a.PowerChanged() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.PowerColor(string(a.PowerAfter))).Render(
			fmt.Sprintf("%s %s power unlocked", a.PowerAfter.Icon(), a.PowerAfter.DisplayName())))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *ArcadeScreen) renderScoreboard(rec progression.ScoreRecord, width int) string {
	cell := func(label string, value int, c lipgloss.Style) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			c.Bold(true).Render(fmt.Sprintf("%d", value)),
			theme.Hint.Render(label),
		)
	}
	col := lipgloss.NewStyle().Width(max((width-4)/5, 8)).Align(lipgloss.Center)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(cell("Wins", rec.Win, lipgloss.NewStyle().Foreground(theme.Success))),
		col.Render(cell("Lost", rec.Lost, lipgloss.NewStyle().Foreground(theme.Error))),
		col.Render(cell("Ties", rec.Tie, lipgloss.NewStyle().Foreground(theme.Info))),
		col.Render(cell("Streak", rec.Streak, lipgloss.NewStyle().Foreground(theme.Primary))),
		col.Render(cell("Best", rec.HighestStreak, lipgloss.NewStyle().Foreground(theme.Accent))),
	)

	status := fmt.Sprintf("Win rate %.0f%%", rec.WinRate()*100)
	if combo := s.game.ComboMultiplier(); combo > 1 {
		status += fmt.Sprintf("   Combo x%d", combo)
	}
	if next := progression.NextMilestone(rec.Streak); next > 0 {
		status += fmt.Sprintf("   Next milestone at %d", next)
	}

	return theme.Card.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Center, row, "", theme.Hint.Render(status)))
}

func (s *ArcadeScreen) renderMeters(rec progression.ScoreRecord, width int) string {
	into, span := rec.LevelProgress()
	xp := components.NewMeter(fmt.Sprintf("Lv %d", rec.Level), into, span, width)
	xp.Fill = theme.Accent

	power := s.game.PowerLevel()
	meter := components.NewMeter("Power", rec.PowerMeter, progression.MaxPowerMeter, width)
	meter.Fill = theme.PowerColor(string(power))

	tier := lipgloss.NewStyle().
		Foreground(theme.PowerColor(string(power))).
		Bold(true).
		Render(fmt.Sprintf("%s %s  x%d", power.Icon(), power.DisplayName(), power.Multiplier()))

	return lipgloss.JoinVertical(lipgloss.Left,
		xp.View(),
		meter.View(),
		layout.Centered(width, tier),
	)
}

func (s *ArcadeScreen) renderPicker() string {
	last, played := s.game.LastMove()
	bindings := map[game.Move]string{
		game.MoveBat:   s.keys.Bat.Help().Key,
		game.MoveBall:  s.keys.Ball.Help().Key,
		game.MoveStump: s.keys.Stump.Help().Key,
	}

	opts := make([]string, 0, len(bindings))
	for _, mv := range game.AllMoves() {
		label := fmt.Sprintf("[%s] %s %s", strings.ToUpper(bindings[mv]), mv.Icon(), mv.String())
		style := theme.Unselected
		if played && mv == last {
			style = theme.Selected
		}
		opts = append(opts, style.Render(label))
	}
	return strings.Join(opts, "    ")
}

func renderResetConfirm(width, height int) string {
	box := theme.Card.
		BorderForeground(theme.Error).
		Padding(1, 4).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Render("Reset the game?"),
			"",
			theme.Body.Render("Score, level, power and round history will be cleared."),
			"",
			theme.Hint.Render("y to reset, n to keep playing"),
		))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
