package cli

import (
	"fmt"
	"time"

	"github.com/jstrand/ritual/internal/metrics"
)

type ListCmd struct {
	All bool `help:"Include inactive habits."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	snap := ctx.Tracker.Snapshot()
	if len(snap.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	shown := 0
	for _, h := range snap.Habits {
		if !h.IsActive && !c.All {
			continue
		}
		status := ""
		if !h.IsActive {
			status = " [INACTIVE]"
		}
		fmt.Printf("%s %s%s — %s, streak %d, completed %s\n",
			h.Icon, h.Name, status, formatFrequency(h), h.Streak, metrics.CompletionRatio(h, now))
		shown++
	}

	if shown == 0 {
		fmt.Println("No active habits. Use --all to include inactive ones.")
	}
	return nil
}
