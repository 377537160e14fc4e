package tracker

import (
	"math"
	"time"

	"github.com/jstrand/ritual/internal/dateutil"
	"github.com/jstrand/ritual/internal/metrics"
	"github.com/jstrand/ritual/internal/models"
)

// State is one immutable snapshot of the canonical collections.
type State struct {
	Habits       []models.Habit
	Completions  []models.Completion
	Achievements []models.Achievement
	Stats        models.UserStats
}

// reduce is the single transition function: it returns a new snapshot and
// never mutates its input. Unknown ids are no-ops, not errors.
func reduce(s State, a Action) State {
	switch action := a.(type) {
	case addHabit:
		next := s
		next.Habits = append(copyHabits(s.Habits), action.Habit)
		return next

	case updateHabit:
		next := s
		next.Habits = copyHabits(s.Habits)
		for i, h := range next.Habits {
			if h.ID == action.Habit.ID {
				next.Habits[i] = action.Habit
			}
		}
		return next

	case deleteHabit:
		return reduceDelete(s, action.ID)

	case toggleHabit:
		return reduceToggle(s, action)

	case addAchievement:
		next := s
		next.Achievements = append(copyAchievements(s.Achievements), action.Achievement)
		return next

	case recomputeStats:
		next := s
		next.Stats = deriveStats(s)
		return next

	case setInitialData:
		return action.Data

	default:
		return s
	}
}

func reduceDelete(s State, id string) State {
	next := s

	next.Habits = make([]models.Habit, 0, len(s.Habits))
	for _, h := range s.Habits {
		if h.ID != id {
			next.Habits = append(next.Habits, h)
		}
	}

	next.Completions = make([]models.Completion, 0, len(s.Completions))
	completed := 0
	for _, c := range s.Completions {
		if c.HabitID != id {
			next.Completions = append(next.Completions, c)
			if c.Completed {
				completed++
			}
		}
	}

	// Counts are re-derived from what remains, but level and XP are
	// ratcheted: a deletion must never read as stat loss.
	stats := s.Stats
	stats.TotalHabits = len(next.Habits)
	stats.ActiveHabits = countActive(next.Habits)
	stats.TotalCompletions = completed
	stats.AverageStreak = averageStreak(next.Habits)
	if stats.Level < 1 {
		stats.Level = 1
	}
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	next.Stats = stats

	return next
}

func reduceToggle(s State, action toggleHabit) State {
	next := s
	next.Completions = copyCompletions(s.Completions)

	// Flip the existing record for this calendar day in place; create one
	// only on the first toggle of that day. Identity is preserved across
	// repeated toggles.
	found := false
	for i, c := range next.Completions {
		if c.HabitID == action.HabitID && dateutil.SameDay(c.Date, action.Date) {
			next.Completions[i].Completed = !c.Completed
			found = true
			break
		}
	}
	if !found {
		next.Completions = append(next.Completions, models.Completion{
			ID:        action.CompletionID,
			HabitID:   action.HabitID,
			Date:      action.Date,
			Completed: true,
		})
	}

	next.Habits = copyHabits(s.Habits)
	for i, h := range next.Habits {
		if h.ID != action.HabitID {
			continue
		}

		var dates []time.Time
		var last time.Time
		for _, c := range next.Completions {
			if c.HabitID == action.HabitID && c.Completed {
				dates = append(dates, c.Date)
				if c.Date.After(last) {
					last = c.Date
				}
			}
		}

		h.TotalCompletions = len(dates)
		if len(dates) == 0 {
			h.LastCompleted = nil
			h.Streak = 0
		} else {
			lastCopy := last
			h.LastCompleted = &lastCopy
			h.Streak = metrics.Streak(dates, action.Now)
		}
		next.Habits[i] = h
	}

	return next
}

func deriveStats(s State) models.UserStats {
	totalXP := 0
	for _, h := range s.Habits {
		totalXP += metrics.XP(h, s.Stats.Level)
	}

	completed := 0
	for _, c := range s.Completions {
		if c.Completed {
			completed++
		}
	}

	currentLevel := s.Stats.Level
	if currentLevel < 1 {
		currentLevel = 1
	}
	level := metrics.LevelForXP(totalXP)
	if level < currentLevel {
		level = currentLevel
	}

	preservedXP := totalXP
	if s.Stats.TotalXP > preservedXP {
		preservedXP = s.Stats.TotalXP
	}

	return models.UserStats{
		TotalXP:          preservedXP,
		Level:            level,
		TotalHabits:      len(s.Habits),
		ActiveHabits:     countActive(s.Habits),
		TotalCompletions: completed,
		AverageStreak:    averageStreak(s.Habits),
	}
}

func countActive(habits []models.Habit) int {
	n := 0
	for _, h := range habits {
		if h.IsActive {
			n++
		}
	}
	return n
}

func averageStreak(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	sum := 0
	for _, h := range habits {
		if h.Streak > 0 {
			sum += h.Streak
		}
	}
	return int(math.Round(float64(sum) / float64(len(habits))))
}

func copyHabits(in []models.Habit) []models.Habit {
	out := make([]models.Habit, len(in))
	copy(out, in)
	return out
}

func copyCompletions(in []models.Completion) []models.Completion {
	out := make([]models.Completion, len(in))
	copy(out, in)
	return out
}

func copyAchievements(in []models.Achievement) []models.Achievement {
	out := make([]models.Achievement, len(in))
	copy(out, in)
	return out
}
