package models

// UserStats is an aggregate fully derived from the habit and completion
// collections. Level and TotalXP only ever grow or hold across recomputes.
type UserStats struct {
	TotalXP          int `json:"total_xp"`
	Level            int `json:"level"`
	TotalHabits      int `json:"total_habits"`
	ActiveHabits     int `json:"active_habits"`
	TotalCompletions int `json:"total_completions"`
	AverageStreak    int `json:"average_streak"`
}
