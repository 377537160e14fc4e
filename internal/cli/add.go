package cli

import (
	"fmt"

	"github.com/jstrand/ritual/internal/tracker"
)

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Icon      string `short:"i" help:"Display icon." default:"✅"`
	Color     string `short:"c" help:"Theme color token." default:"bg-blue-500"`
	Frequency string `short:"f" help:"Frequency (daily|weekly)." default:"daily"`
	Day       string `short:"w" help:"Scheduled weekday for weekly habits (name or 0-6, default: today)."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if c.Name == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if _, ok := ctx.Tracker.FindHabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	freq, err := parseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	draft := tracker.HabitDraft{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Frequency: freq,
	}
	if c.Day != "" {
		day, err := parseWeekday(c.Day)
		if err != nil {
			return err
		}
		draft.SelectedDay = &day
	}

	habit, err := ctx.Tracker.AddHabit(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (%s)\n", habit.Icon, habit.Name, formatFrequency(habit))
	return nil
}
