package cli

import (
	"fmt"

	"github.com/jstrand/ritual/internal/dateutil"
)

type DoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.FindHabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.ToggleHabit(habit.ID, date); err != nil {
		return err
	}

	day := date.Format(dateutil.DateFormat)
	if ctx.Tracker.IsHabitCompleted(habit.ID, date) {
		fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}
