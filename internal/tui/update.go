package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jstrand/ritual/internal/logger"
	"github.com/jstrand/ritual/internal/models"
	"github.com/jstrand/ritual/internal/tracker"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-8)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateList:
			return m.updateList(msg)
		case StateAddHabit:
			return m.updateAddHabit(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	if m.state == StateAddHabit && m.form != nil {
		return m.updateAddHabit(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}
		if err := m.tracker.ToggleHabit(habit.ID, time.Now()); err != nil {
			logger.Error("toggle failed", "habit", habit.ID, "error", err)
			return m, nil
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Frequency: "daily"}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		habit, ok := m.selectedHabit()
		if !ok {
			return m, nil
		}
		m.habitToDelete = habit
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateList
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitHabitForm()
		m.state = StateList
		m.form = nil
		m.refresh()
	}

	return m, cmd
}

func (m *Model) submitHabitForm() {
	if m.habitForm == nil || m.habitForm.Name == "" {
		return
	}

	draft := tracker.HabitDraft{
		Name:      m.habitForm.Name,
		Icon:      "✅",
		Color:     "bg-blue-500",
		Frequency: models.Frequency(m.habitForm.Frequency),
	}
	if draft.Frequency == models.FrequencyWeekly && m.habitForm.Day != "" {
		if day, err := strconv.Atoi(m.habitForm.Day); err == nil {
			draft.SelectedDay = &day
		}
	}

	if _, err := m.tracker.AddHabit(draft); err != nil {
		logger.Error("add habit failed", "error", err)
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteHabit(m.habitToDelete.ID); err != nil {
			logger.Error("delete failed", "habit", m.habitToDelete.ID, "error", err)
		}
		m.habitToDelete = models.Habit{}
		m.state = StateList
		m.refresh()
		return m, nil
	case "n", "N", "esc", "q":
		m.habitToDelete = models.Habit{}
		m.state = StateList
		return m, nil
	}
	return m, nil
}
