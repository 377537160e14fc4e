// Package metrics holds the pure calculation functions for streaks,
// experience points, completion ratios, and achievement evaluation.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jstrand/ritual/internal/dateutil"
	"github.com/jstrand/ritual/internal/models"
)

const (
	baseXP              = 10
	streakBonusPer7Days = 5
	xpPerLevel          = 1000
)

// Streak counts consecutive completed days walking backward from now.
// A completion on the current day holds the chain without extending it;
// each completion exactly one day earlier than the running cursor extends
// it by one; any larger gap breaks the walk.
func Streak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := make([]time.Time, len(dates))
	for i, d := range dates {
		days[i] = dateutil.StartOfDay(d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	cursor := dateutil.StartOfDay(now)

	for _, day := range days {
		switch gap := dateutil.DaysBetween(day, cursor); gap {
		case 0:
			// Same day as the cursor, chain holds.
		case 1:
			streak++
			cursor = day
		default:
			return streak
		}
	}

	return streak
}

// XP returns the experience awarded for a habit at the given user level:
// a base amount plus a bonus per full week of streak, scaled by the level
// multiplier. Corrupt input clamps to zero rather than propagating.
func XP(habit models.Habit, userLevel int) int {
	streak := habit.Streak
	if streak < 0 {
		streak = 0
	}
	if userLevel < 0 {
		userLevel = 0
	}

	bonus := (streak / 7) * streakBonusPer7Days
	multiplier := math.Max(1, float64(userLevel)*0.1)

	total := float64(baseXP+bonus) * multiplier
	if math.IsNaN(total) || total < 0 {
		return 0
	}
	return int(math.Round(total))
}

// LevelForXP returns the level implied by a cumulative XP total, minimum 1.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/xpPerLevel + 1
}

// CompletionRatio reports completed occurrences against opportunities as a
// literal "completed/opportunities" pair. For a weekly habit whose first
// scheduled day has not yet arrived the ratio is "0/0".
func CompletionRatio(habit models.Habit, now time.Time) string {
	switch {
	case habit.Frequency == models.FrequencyDaily:
		opportunities := dateutil.DaysBetween(habit.CreatedAt, now)
		if opportunities < 1 {
			opportunities = 1
		}
		return fmt.Sprintf("%d/%d", habit.TotalCompletions, opportunities)

	case habit.Frequency == models.FrequencyWeekly && habit.SelectedDay != nil:
		first := dateutil.NextWeekday(habit.CreatedAt, time.Weekday(*habit.SelectedDay))
		if first.After(now) {
			return "0/0"
		}
		opportunities := dateutil.WeeksBetween(first, now) + 1
		if opportunities < 1 {
			opportunities = 1
		}
		return fmt.Sprintf("%d/%d", habit.TotalCompletions, opportunities)

	default:
		return fmt.Sprintf("%d/1", habit.TotalCompletions)
	}
}
