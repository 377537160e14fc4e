// Package tracker owns the habit, completion, achievement, and stats
// collections and exposes the operation surface consumers dispatch against.
// Every mutation folds through a pure reducer, is followed by a stats
// recompute, and is then mirrored to storage.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jstrand/ritual/internal/dateutil"
	"github.com/jstrand/ritual/internal/logger"
	"github.com/jstrand/ritual/internal/metrics"
	"github.com/jstrand/ritual/internal/models"
)

// HabitDraft is the caller-supplied portion of a new habit. Identity,
// derived fields, and the active flag are assigned by AddHabit.
type HabitDraft struct {
	Name        string
	Icon        string
	Color       string
	Frequency   models.Frequency
	SelectedDay *int
}

type Tracker struct {
	mu          sync.Mutex
	state       State
	bridge      *Bridge
	clock       dateutil.Clock
	initialized bool
}

// New creates a tracker backed by the given bridge. A nil bridge keeps the
// tracker purely in-memory, which the tests rely on. A nil clock defaults
// to time.Now.
func New(bridge *Bridge, clock dateutil.Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{
		bridge: bridge,
		clock:  clock,
	}
}

// Initialize loads persisted collections through the bridge as a single
// atomic transition, then recomputes stats so stale persisted aggregates
// are reconciled under the ratchet. Saves are suppressed until this
// completes.
func (t *Tracker) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.bridge != nil {
		data, err := t.bridge.LoadInitial()
		if err != nil {
			return fmt.Errorf("failed to load initial data: %w", err)
		}
		t.state = reduce(t.state, setInitialData{Data: data})
	}

	t.state = reduce(t.state, recomputeStats{})
	t.initialized = true
	return nil
}

// AddHabit assigns a new id and initial derived fields, appends the habit,
// and returns the stored record. A weekly habit without a selected day
// defaults to the current day-of-week.
func (t *Tracker) AddHabit(draft HabitDraft) (models.Habit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock()
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Icon:      draft.Icon,
		Color:     draft.Color,
		Frequency: draft.Frequency,
		CreatedAt: now,
		IsActive:  true,
	}
	if draft.Frequency == models.FrequencyWeekly {
		if draft.SelectedDay != nil {
			day := *draft.SelectedDay
			habit.SelectedDay = &day
		} else {
			day := int(now.Weekday())
			habit.SelectedDay = &day
		}
	}

	t.state = reduce(t.state, addHabit{Habit: habit})
	return habit, t.commit()
}

// UpdateHabit replaces the stored habit with a matching id by full value.
// Unknown ids are a no-op.
func (t *Tracker) UpdateHabit(habit models.Habit) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = reduce(t.state, updateHabit{Habit: habit})
	return t.commit()
}

// DeleteHabit removes the habit and every completion referencing it.
// Level and XP are carried forward under the ratchet.
func (t *Tracker) DeleteHabit(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = reduce(t.state, deleteHabit{ID: id})
	return t.commit()
}

// ToggleHabit flips the completion record for the habit on date's calendar
// day, then recomputes the habit's derived fields from the updated set.
// The streak is anchored at the clock's "now", not the toggled day.
func (t *Tracker) ToggleHabit(habitID string, date time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = reduce(t.state, toggleHabit{
		HabitID:      habitID,
		Date:         date,
		CompletionID: uuid.New().String(),
		Now:          t.clock(),
	})
	return t.commit()
}

// GetHabitCompletions returns all completion records for a habit,
// toggled-off days included.
func (t *Tracker) GetHabitCompletions(habitID string) []models.Completion {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []models.Completion
	for _, c := range t.state.Completions {
		if c.HabitID == habitID {
			out = append(out, c)
		}
	}
	return out
}

// IsHabitCompleted reports whether a completed record exists for the habit
// on date's calendar day.
func (t *Tracker) IsHabitCompleted(habitID string, date time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.state.Completions {
		if c.HabitID == habitID && c.Completed && dateutil.SameDay(c.Date, date) {
			return true
		}
	}
	return false
}

// FindHabitByName returns the first active habit with the given name.
func (t *Tracker) FindHabitByName(name string) (models.Habit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, h := range t.state.Habits {
		if h.IsActive && h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return State{
		Habits:       copyHabits(t.state.Habits),
		Completions:  copyCompletions(t.state.Completions),
		Achievements: copyAchievements(t.state.Achievements),
		Stats:        t.state.Stats,
	}
}

// Stats returns the current aggregate snapshot.
func (t *Tracker) Stats() models.UserStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Stats
}

// ClearAll wipes persisted and in-memory state back to defaults in one
// step. Confirmation is the caller's responsibility.
func (t *Tracker) ClearAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = State{}
	t.state = reduce(t.state, recomputeStats{})

	if t.bridge == nil {
		return nil
	}
	if err := t.bridge.Clear(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return t.bridge.Save(t.state)
}

// commit runs after every collection mutation while holding the lock:
// recompute stats, record any newly met achievements, then mirror the
// settled snapshot to storage.
func (t *Tracker) commit() error {
	t.state = reduce(t.state, recomputeStats{})

	unlocked := make(map[string]bool, len(t.state.Achievements))
	for _, a := range t.state.Achievements {
		unlocked[a.ID] = true
	}
	for _, p := range metrics.CheckAchievements(t.state.Habits, t.state.Completions, t.state.Stats) {
		if unlocked[p.ID] {
			continue
		}
		t.state = reduce(t.state, addAchievement{Achievement: models.Achievement{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Icon:        p.Icon,
			UnlockedAt:  t.clock(),
			Requirement: p.Requirement,
			Type:        p.Type,
		}})
		logger.Info("achievement unlocked", "id", p.ID)
	}

	if t.bridge == nil || !t.initialized {
		return nil
	}
	if err := t.bridge.Save(t.state); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}
