package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"

	"github.com/jstrand/ritual/internal/models"
	"github.com/jstrand/ritual/internal/tracker"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
	StateConfirmDelete
)

// Item adapts a habit for the bubbles list.
type Item struct {
	Habit       models.Habit
	IsCompleted bool
}

func (i Item) Title() string {
	marker := "○"
	if i.IsCompleted {
		marker = "✓"
	}
	return marker + " " + i.Habit.Icon + " " + i.Habit.Name
}

func (i Item) Description() string {
	if i.IsCompleted {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type HabitFormModel struct {
	Name      string
	Frequency string
	Day       string
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	keys          KeyMap
	help          help.Model
	list          list.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete models.Habit
	showStats     bool
	quitting      bool
	width         int
	height        int
}

func NewModel(tr *tracker.Tracker) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	m := Model{
		tracker:   tr,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		list:      l,
		showStats: true,
	}
	m.refresh()
	return m
}

// refresh rebuilds the list items from the tracker's current snapshot.
func (m *Model) refresh() {
	snap := m.tracker.Snapshot()
	today := time.Now()

	var items []list.Item
	for _, h := range snap.Habits {
		if !h.IsActive {
			continue
		}
		items = append(items, Item{
			Habit:       h,
			IsCompleted: m.tracker.IsHabitCompleted(h.ID, today),
		})
	}
	m.list.SetItems(items)
}

func (m *Model) selectedHabit() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Habit{}, false
	}
	return item.Habit, true
}

func newHabitForm(data *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&data.Name),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
				).
				Value(&data.Frequency),
			huh.NewSelect[string]().
				Title("Weekday (weekly habits)").
				Options(
					huh.NewOption("Today", ""),
					huh.NewOption("Sunday", "0"),
					huh.NewOption("Monday", "1"),
					huh.NewOption("Tuesday", "2"),
					huh.NewOption("Wednesday", "3"),
					huh.NewOption("Thursday", "4"),
					huh.NewOption("Friday", "5"),
					huh.NewOption("Saturday", "6"),
				).
				Value(&data.Day),
		),
	)
}
