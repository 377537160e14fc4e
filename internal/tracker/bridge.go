package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/jstrand/ritual/internal/logger"
	"github.com/jstrand/ritual/internal/models"
	"github.com/jstrand/ritual/internal/storage"
)

const (
	blobHabits       = "habits"
	blobCompletions  = "completions"
	blobAchievements = "achievements"
	blobStats        = "stats"
)

// Bridge serializes the tracker's collections to and from an opaque blob
// store. Malformed blobs are logged and treated as absent; a missing key
// is a valid empty state.
type Bridge struct {
	provider storage.Provider
}

func NewBridge(provider storage.Provider) *Bridge {
	return &Bridge{provider: provider}
}

// LoadInitial reads the four collection blobs and reconciles them into a
// single snapshot. Records are deduplicated by id, first occurrence wins.
func (b *Bridge) LoadInitial() (State, error) {
	var state State

	var habits []models.Habit
	if loadBlob(b.provider, blobHabits, &habits) {
		state.Habits = dedupeHabits(habits)
	}

	var completions []models.Completion
	if loadBlob(b.provider, blobCompletions, &completions) {
		state.Completions = dedupeCompletions(completions)
	}

	var achievements []models.Achievement
	if loadBlob(b.provider, blobAchievements, &achievements) {
		state.Achievements = dedupeAchievements(achievements)
	}

	var stats models.UserStats
	if loadBlob(b.provider, blobStats, &stats) {
		if stats.Level < 1 {
			stats.Level = 1
		}
		state.Stats = stats
	}

	return state, nil
}

// Save mirrors the full snapshot to storage. This is a complete overwrite
// of every blob, not an incremental diff.
func (b *Bridge) Save(state State) error {
	blobs := map[string]interface{}{
		blobHabits:       emptyIfNilHabits(state.Habits),
		blobCompletions:  emptyIfNilCompletions(state.Completions),
		blobAchievements: emptyIfNilAchievements(state.Achievements),
		blobStats:        state.Stats,
	}

	for key, value := range blobs {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", key, err)
		}
		if err := b.provider.SetBlob(key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	return nil
}

// Clear empties the underlying store.
func (b *Bridge) Clear() error {
	return b.provider.Clear()
}

// loadBlob parses one blob into out. Absence and parse failures both
// report false; only parse failures are logged.
func loadBlob(provider storage.Provider, key string, out interface{}) bool {
	data, ok, err := provider.GetBlob(key)
	if err != nil {
		logger.Warn("failed to read blob, using defaults", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("failed to parse blob, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

func dedupeHabits(in []models.Habit) []models.Habit {
	seen := make(map[string]bool, len(in))
	out := make([]models.Habit, 0, len(in))
	for _, h := range in {
		if seen[h.ID] {
			continue
		}
		seen[h.ID] = true
		out = append(out, h)
	}
	return out
}

func dedupeCompletions(in []models.Completion) []models.Completion {
	seen := make(map[string]bool, len(in))
	out := make([]models.Completion, 0, len(in))
	for _, c := range in {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

func dedupeAchievements(in []models.Achievement) []models.Achievement {
	seen := make(map[string]bool, len(in))
	out := make([]models.Achievement, 0, len(in))
	for _, a := range in {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out
}

func emptyIfNilHabits(in []models.Habit) []models.Habit {
	if in == nil {
		return []models.Habit{}
	}
	return in
}

func emptyIfNilCompletions(in []models.Completion) []models.Completion {
	if in == nil {
		return []models.Completion{}
	}
	return in
}

func emptyIfNilAchievements(in []models.Achievement) []models.Achievement {
	if in == nil {
		return []models.Achievement{}
	}
	return in
}
