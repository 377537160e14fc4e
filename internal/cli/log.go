package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jstrand/ritual/internal/models"
)

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	snap := ctx.Tracker.Snapshot()

	var selected []models.Habit
	for _, h := range snap.Habits {
		if !h.IsActive {
			continue
		}
		if c.Habit != "" && h.Name != c.Habit {
			continue
		}
		selected = append(selected, h)
	}
	if len(selected) == 0 {
		if c.Habit != "" {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		fmt.Println("No habits found.")
		return nil
	}

	endDay := time.Now()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print("Habit               ")
	for i := 0; i < c.Days; i++ {
		day := startDay.AddDate(0, 0, i)
		fmt.Printf(" %5s", day.Format("01/02"))
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	fmt.Print(strings.Repeat("------", c.Days))
	fmt.Println()

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		for i := 0; i < c.Days; i++ {
			day := startDay.AddDate(0, 0, i)
			if ctx.Tracker.IsHabitCompleted(habit.ID, day) {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}
