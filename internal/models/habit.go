package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a recurring practice to track.
// Streak, TotalCompletions, and LastCompleted are derived from the
// completion set and are recomputed on every toggle, never edited directly.
type Habit struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Icon             string     `json:"icon"`
	Color            string     `json:"color"`
	Frequency        Frequency  `json:"frequency"`
	SelectedDay      *int       `json:"selected_day,omitempty"` // 0=Sunday..6=Saturday, weekly habits only
	CreatedAt        time.Time  `json:"created_at"`
	Streak           int        `json:"streak"`
	TotalCompletions int        `json:"total_completions"`
	LastCompleted    *time.Time `json:"last_completed,omitempty"`
	IsActive         bool       `json:"is_active"`
}

// Completion records whether a habit was performed on a given calendar day.
// At most one completion exists per (habit, calendar day); toggling an
// existing day flips Completed in place.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}
