package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jstrand/ritual/internal/models"
	"github.com/jstrand/ritual/internal/storage"
	"github.com/jstrand/ritual/internal/tracker"
)

type Context struct {
	Store     storage.Provider
	Tracker   *tracker.Tracker
	WeekStart time.Weekday
}

// load opens the store and feeds the persisted collections into the
// tracker. Every command except init goes through here.
func (c *Context) load() error {
	if err := c.Store.Load(); err != nil {
		return err
	}
	return c.Tracker.Initialize()
}

func parseWeekday(s string) (int, error) {
	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	part := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[part]; ok {
		return int(wd), nil
	}

	// Try parsing as number (0=Sunday, 6=Saturday)
	num, err := strconv.Atoi(part)
	if err == nil && num >= 0 && num <= 6 {
		return num, nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

func parseFrequency(s string) (models.Frequency, error) {
	switch s {
	case "daily":
		return models.FrequencyDaily, nil
	case "weekly":
		return models.FrequencyWeekly, nil
	default:
		return "", fmt.Errorf("invalid frequency: %s (expected daily|weekly)", s)
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

func formatFrequency(h models.Habit) string {
	if h.Frequency == models.FrequencyWeekly && h.SelectedDay != nil {
		return fmt.Sprintf("weekly on %s", time.Weekday(*h.SelectedDay).String()[:3])
	}
	return string(h.Frequency)
}
