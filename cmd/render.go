package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/batball/internal/game"
	"github.com/abhisek/batball/internal/progression"
	"github.com/abhisek/batball/internal/round"
	"github.com/abhisek/batball/internal/store"
	"github.com/abhisek/batball/internal/ui/components"
	"github.com/abhisek/batball/internal/ui/theme"
)

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		lipgloss.Fprintln(w, l)
	}
}

func renderResult(res *round.Result) []string {
	a := res.Award
	outcome := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.OutcomeColor(res.Outcome.String())).
		Render(res.Outcome.DisplayName())

	lines := []string{
		fmt.Sprintf("You %s %s  vs  %s %s CPU",
			res.PlayerMove.Icon(), res.PlayerMove, res.OpponentMove.Icon(), res.OpponentMove),
		fmt.Sprintf("%s  +%d pts (combo x%d, power x%d)", outcome, a.Points, a.ComboMultiplier, a.PowerMultiplier),
	}
	if a.Milestone != "" {
		lines = append(lines, theme.Selected.Render(a.Milestone))
	}
	if a.LeveledUp() {
		lines = append(lines, fmt.Sprintf("Level up! Now level %d", a.LevelAfter))
	}
	if a.PowerChanged() {
		lines = append(lines, fmt.Sprintf("%s %s power unlocked", a.PowerAfter.Icon(), a.PowerAfter.DisplayName()))
	}
	rec := res.ScoreAfter
	lines = append(lines, fmt.Sprintf("Streak %d (best %d)  Level %d  XP %d",
		rec.Streak, rec.HighestStreak, rec.Level, rec.Experience))
	return lines
}

func renderStats(rec progression.ScoreRecord) []string {
	power := rec.PowerLevel()
	into, span := rec.LevelProgress()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
		}).
		Rows(
			[]string{"Rounds", strconv.Itoa(rec.Rounds())},
			[]string{"Wins", strconv.Itoa(rec.Win)},
			[]string{"Lost", strconv.Itoa(rec.Lost)},
			[]string{"Ties", strconv.Itoa(rec.Tie)},
			[]string{"Win rate", fmt.Sprintf("%.1f%%", rec.WinRate()*100)},
			[]string{"Streak", fmt.Sprintf("%d (best %d)", rec.Streak, rec.HighestStreak)},
			[]string{"Level", strconv.Itoa(rec.Level)},
			[]string{"Experience", strconv.Itoa(rec.Experience)},
			[]string{"Power", fmt.Sprintf("%s %s (x%d)", power.Icon(), power.DisplayName(), power.Multiplier())},
		)

	xp := components.NewMeter("XP", into, span, 40)
	xp.Fill = theme.Accent
	meter := components.NewMeter("Meter", rec.PowerMeter, progression.MaxPowerMeter, 40)
	meter.Fill = theme.PowerColor(string(power))

	return []string{t.Render(), xp.View(), meter.View()}
}

func renderHistory(recs []store.RoundEventRecord) []string {
	if len(recs) == 0 {
		return []string{theme.Hint.Render("No rounds yet.")}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "When", "You", "CPU", "Result", "Points", "Combo", "Power").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(theme.Primary)
			}
			if col == 4 && row >= 0 && row < len(recs) {
				return s.Foreground(theme.OutcomeColor(recs[row].Outcome))
			}
			return s.Foreground(theme.Text)
		})

	for _, r := range recs {
		player, _ := game.ParseMove(r.PlayerMove)
		opponent, _ := game.ParseMove(r.OpponentMove)
		t.Row(
			strconv.FormatInt(r.Sequence, 10),
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			player.Icon()+" "+player.String(),
			opponent.Icon()+" "+opponent.String(),
			r.Outcome,
			"+"+strconv.Itoa(r.Points),
			"x"+strconv.Itoa(r.Combo),
			progression.PowerLevel(r.PowerLevel).DisplayName(),
		)
	}
	return []string{t.Render()}
}
