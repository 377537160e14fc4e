package models

import "time"

type AchievementType string

const (
	AchievementStreak     AchievementType = "streak"
	AchievementCompletion AchievementType = "completion"
	AchievementUserLevel  AchievementType = "user-level"
)

// Achievement is a persisted marker that a milestone was reached.
// The full catalog of potential milestones is static configuration
// (see the metrics package); only unlocked entries are stored.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	UnlockedAt  time.Time       `json:"unlocked_at"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`
}
