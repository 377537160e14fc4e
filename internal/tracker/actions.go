package tracker

import (
	"time"

	"github.com/jstrand/ritual/internal/models"
)

// Action is a tagged command folded over the state by reduce. Keeping the
// transition surface enumerable makes every state change auditable and
// testable without a UI.
type Action interface {
	isAction()
}

type addHabit struct {
	Habit models.Habit
}

type updateHabit struct {
	Habit models.Habit
}

type deleteHabit struct {
	ID string
}

// toggleHabit flips the completion for (HabitID, Date's calendar day).
// CompletionID is pre-assigned by the caller so the reducer stays pure;
// it is only used when no completion exists for that day yet. Now anchors
// the streak recomputation.
type toggleHabit struct {
	HabitID      string
	Date         time.Time
	CompletionID string
	Now          time.Time
}

type addAchievement struct {
	Achievement models.Achievement
}

// recomputeStats re-derives UserStats from the collections, applying the
// ratchet: level and total XP never decrease.
type recomputeStats struct{}

type setInitialData struct {
	Data State
}

func (addHabit) isAction()       {}
func (updateHabit) isAction()    {}
func (deleteHabit) isAction()    {}
func (toggleHabit) isAction()    {}
func (addAchievement) isAction() {}
func (recomputeStats) isAction() {}
func (setInitialData) isAction() {}
