package metrics

import (
	"github.com/jstrand/ritual/internal/models"
)

// CatalogEntry is a potential milestone. The catalog is static
// configuration shared by every consumer; it is never mutated.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Type        models.AchievementType
	Requirement int
}

// Progress pairs a catalog entry with the current value driving it.
type Progress struct {
	CatalogEntry
	Current  int
	Unlocked bool
}

var Catalog = []CatalogEntry{
	{ID: "first-habit", Name: "First Steps", Description: "Create your first habit", Icon: "🌱", Type: models.AchievementCompletion, Requirement: 1},
	{ID: "streak-7", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Type: models.AchievementStreak, Requirement: 7},
	{ID: "streak-30", Name: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "🏆", Type: models.AchievementStreak, Requirement: 30},
	{ID: "streak-100", Name: "Century Club", Description: "Maintain a 100-day streak", Icon: "💎", Type: models.AchievementStreak, Requirement: 100},
	{ID: "completions-10", Name: "Getting Started", Description: "Complete 10 habits", Icon: "✅", Type: models.AchievementCompletion, Requirement: 10},
	{ID: "completions-100", Name: "Habit Hero", Description: "Complete 100 habits", Icon: "👑", Type: models.AchievementCompletion, Requirement: 100},
	{ID: "user-level-3", Name: "Level Up", Description: "Reach level 3", Icon: "⭐", Type: models.AchievementUserLevel, Requirement: 3},
	{ID: "user-level-5", Name: "High Achiever", Description: "Reach level 5", Icon: "🌟", Type: models.AchievementUserLevel, Requirement: 5},
}

// CatalogProgress evaluates every catalog entry against the current
// collections and returns its progress, unlocked or not.
func CatalogProgress(habits []models.Habit, completions []models.Completion, stats models.UserStats) []Progress {
	maxStreak := 0
	for _, h := range habits {
		if h.Streak > maxStreak {
			maxStreak = h.Streak
		}
	}

	completed := 0
	for _, c := range completions {
		if c.Completed {
			completed++
		}
	}

	result := make([]Progress, 0, len(Catalog))
	for _, entry := range Catalog {
		var current int
		switch entry.ID {
		case "first-habit":
			current = len(habits)
			if current > 1 {
				current = 1
			}
		case "completions-10", "completions-100":
			current = completed
		default:
			switch entry.Type {
			case models.AchievementStreak:
				current = maxStreak
			case models.AchievementUserLevel:
				current = stats.Level
			}
		}

		result = append(result, Progress{
			CatalogEntry: entry,
			Current:      current,
			Unlocked:     current >= entry.Requirement,
		})
	}

	return result
}

// CheckAchievements returns the catalog entries whose requirement is
// currently met. This is a pure re-derivation each call; persisting the
// unlock timestamps is the caller's concern.
func CheckAchievements(habits []models.Habit, completions []models.Completion, stats models.UserStats) []Progress {
	var met []Progress
	for _, p := range CatalogProgress(habits, completions, stats) {
		if p.Unlocked {
			met = append(met, p)
		}
	}
	return met
}
