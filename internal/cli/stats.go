package cli

import (
	"fmt"
	"time"

	"github.com/jstrand/ritual/internal/dateutil"
	"github.com/jstrand/ritual/internal/metrics"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	snap := ctx.Tracker.Snapshot()
	stats := snap.Stats

	fmt.Printf("Level %d — %d XP\n", stats.Level, stats.TotalXP)
	fmt.Printf("Habits: %d total, %d active\n", stats.TotalHabits, stats.ActiveHabits)
	fmt.Printf("Completions: %d\n", stats.TotalCompletions)
	fmt.Printf("Average streak: %d days\n", stats.AverageStreak)

	now := time.Now()
	weekStart := dateutil.StartOfWeek(now, ctx.WeekStart)
	thisWeek := 0
	for _, c := range snap.Completions {
		if c.Completed && !c.Date.Before(weekStart) && !c.Date.After(now) {
			thisWeek++
		}
	}
	fmt.Printf("This week: %d completions since %s\n", thisWeek, weekStart.Format("Mon Jan 2"))

	if len(snap.Habits) == 0 {
		return nil
	}

	fmt.Println()
	for _, h := range snap.Habits {
		if !h.IsActive {
			continue
		}
		last := "never"
		if h.LastCompleted != nil {
			last = h.LastCompleted.Format("2006-01-02")
		}
		fmt.Printf("%s %s: streak %d, completed %s, last %s\n",
			h.Icon, h.Name, h.Streak, metrics.CompletionRatio(h, now), last)
	}

	return nil
}
