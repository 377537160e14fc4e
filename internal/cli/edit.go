package cli

import (
	"fmt"
	"time"

	"github.com/jstrand/ritual/internal/models"
)

type EditCmd struct {
	Name      string `arg:"" help:"Habit name."`
	NewName   string `help:"New habit name."`
	Icon      string `short:"i" help:"New display icon."`
	Color     string `short:"c" help:"New theme color token."`
	Frequency string `short:"f" help:"New frequency (daily|weekly)."`
	Day       string `short:"w" help:"New scheduled weekday for weekly habits."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, ok := ctx.Tracker.FindHabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	// Updates replace the full record, so edit the fetched copy in place.
	if c.NewName != "" {
		habit.Name = c.NewName
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}
	if c.Color != "" {
		habit.Color = c.Color
	}
	if c.Frequency != "" {
		freq, err := parseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		habit.Frequency = freq
	}
	if c.Day != "" {
		day, err := parseWeekday(c.Day)
		if err != nil {
			return err
		}
		habit.SelectedDay = &day
	}
	// selected_day exists iff the habit is weekly.
	switch habit.Frequency {
	case models.FrequencyDaily:
		habit.SelectedDay = nil
	case models.FrequencyWeekly:
		if habit.SelectedDay == nil {
			day := int(time.Now().Weekday())
			habit.SelectedDay = &day
		}
	}

	if err := ctx.Tracker.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}
