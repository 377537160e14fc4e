package cli

import (
	"fmt"

	"github.com/jstrand/ritual/internal/metrics"
)

type AchievementsCmd struct {
	All bool `help:"Include locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	snap := ctx.Tracker.Snapshot()

	unlockedAt := make(map[string]string, len(snap.Achievements))
	for _, a := range snap.Achievements {
		unlockedAt[a.ID] = a.UnlockedAt.Format("2006-01-02")
	}

	progress := metrics.CatalogProgress(snap.Habits, snap.Completions, snap.Stats)
	shown := 0
	for _, p := range progress {
		if !p.Unlocked && !c.All {
			continue
		}
		shown++
		if p.Unlocked {
			when := unlockedAt[p.ID]
			if when == "" {
				when = "earlier"
			}
			fmt.Printf("%s %s — %s (unlocked %s)\n", p.Icon, p.Name, p.Description, when)
		} else {
			fmt.Printf("🔒 %s — %s (%d/%d)\n", p.Name, p.Description, p.Current, p.Requirement)
		}
	}

	if shown == 0 {
		fmt.Println("No achievements unlocked yet. Use --all to see the full catalog.")
	}
	return nil
}
