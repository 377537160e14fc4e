package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("This will clear all habits, history, and stats. Are you sure?").
				Affirmative("Clear everything").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Tracker.ClearAll(); err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return nil
}
