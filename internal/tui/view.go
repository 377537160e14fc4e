package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jstrand/ritual/internal/metrics"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAddHabit:
		if m.form != nil {
			content = m.form.View()
		}
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.viewList()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("ritual — "+time.Now().Format("Mon Jan 2")),
		content,
		m.help.View(m.keys),
	))
}

func (m Model) viewList() string {
	sections := []string{m.list.View()}
	if m.showStats {
		sections = append(sections, m.viewStats())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewStats() string {
	snap := m.tracker.Snapshot()
	stats := snap.Stats

	line := fmt.Sprintf("Level %d · %d XP · %d/%d habits active · avg streak %d",
		stats.Level, stats.TotalXP, stats.ActiveHabits, stats.TotalHabits, stats.AverageStreak)

	unlocked := ""
	for _, p := range metrics.CheckAchievements(snap.Habits, snap.Completions, stats) {
		unlocked += p.Icon + " "
	}
	if unlocked != "" {
		unlocked = unlockedStyle.Render(unlocked)
	}

	return statsStyle.Render(line + "\n" + unlocked)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		confirmStyle.Render(fmt.Sprintf("Delete habit %q and all of its history?", m.habitToDelete.Name)),
		"",
		"[y] delete    [n] cancel",
	)
}
