package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/jstrand/ritual/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStreak_Empty(t *testing.T) {
	if got := Streak(nil, day(2024, 1, 10)); got != 0 {
		t.Errorf("expected 0 for no completions, got %d", got)
	}
}

func TestStreak_SingleCompletionToday(t *testing.T) {
	now := day(2024, 1, 10)
	if got := Streak([]time.Time{now}, now); got != 0 {
		t.Errorf("expected 0 for a lone same-day completion, got %d", got)
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	now := day(2024, 1, 10)
	dates := []time.Time{
		day(2024, 1, 8),
		day(2024, 1, 9),
		day(2024, 1, 10),
	}
	if got := Streak(dates, now); got != 2 {
		t.Errorf("expected 2 consecutive-day steps, got %d", got)
	}
}

func TestStreak_BreaksOnGap(t *testing.T) {
	// Completions on days 1, 2, and 5; the walk from day 5 stops at the
	// gap between day 5 and day 2.
	now := day(2024, 1, 5)
	dates := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
		day(2024, 1, 5),
	}
	if got := Streak(dates, now); got != 0 {
		t.Errorf("expected streak reset to 0 after gap, got %d", got)
	}
}

func TestStreak_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 1, 10, 22, 15, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2024, 1, 9, 6, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 13, 30, 0, 0, time.UTC),
	}
	if got := Streak(dates, now); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestXP(t *testing.T) {
	tests := []struct {
		streak int
		level  int
		want   int
	}{
		{0, 0, 10},   // base only, multiplier floored at 1
		{0, 1, 10},
		{6, 1, 10},   // streak bonus needs a full week
		{7, 1, 15},
		{14, 1, 20},
		{7, 10, 15},  // level 10 -> multiplier 1.0
		{7, 20, 30},  // level 20 -> multiplier 2.0
		{-5, -3, 10}, // corrupt input clamps
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("streak=%d level=%d", tt.streak, tt.level), func(t *testing.T) {
			h := models.Habit{Streak: tt.streak}
			got := XP(h, tt.level)
			if got != tt.want {
				t.Errorf("XP = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("XP must never be negative, got %d", got)
			}
		})
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{-10, 1},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestCompletionRatio_Daily(t *testing.T) {
	h := models.Habit{
		Frequency:        models.FrequencyDaily,
		CreatedAt:        day(2024, 1, 1),
		TotalCompletions: 3,
	}

	if got := CompletionRatio(h, day(2024, 1, 5)); got != "3/4" {
		t.Errorf("expected 3/4, got %s", got)
	}

	// Created moments ago: opportunities floor at 1.
	if got := CompletionRatio(h, day(2024, 1, 1)); got != "3/1" {
		t.Errorf("expected 3/1, got %s", got)
	}
}

func TestCompletionRatio_WeeklyBeforeFirstOpportunity(t *testing.T) {
	// Created on a Monday, scheduled for Fridays, asked on Wednesday:
	// the first opportunity is still ahead.
	friday := int(time.Friday)
	h := models.Habit{
		Frequency:   models.FrequencyWeekly,
		SelectedDay: &friday,
		CreatedAt:   day(2024, 1, 1), // Monday
	}

	if got := CompletionRatio(h, day(2024, 1, 3)); got != "0/0" {
		t.Errorf("expected 0/0 before first opportunity, got %s", got)
	}
}

func TestCompletionRatio_Weekly(t *testing.T) {
	friday := int(time.Friday)
	h := models.Habit{
		Frequency:        models.FrequencyWeekly,
		SelectedDay:      &friday,
		CreatedAt:        day(2024, 1, 1), // Monday; first Friday is Jan 5
		TotalCompletions: 2,
	}

	// Two Fridays have passed (Jan 5 and Jan 12).
	if got := CompletionRatio(h, day(2024, 1, 12)); got != "2/2" {
		t.Errorf("expected 2/2, got %s", got)
	}
}

func TestCompletionRatio_WeeklyWithoutSelectedDay(t *testing.T) {
	h := models.Habit{
		Frequency:        models.FrequencyWeekly,
		CreatedAt:        day(2024, 1, 1),
		TotalCompletions: 4,
	}
	if got := CompletionRatio(h, day(2024, 2, 1)); got != "4/1" {
		t.Errorf("expected fallback 4/1, got %s", got)
	}
}
