package calendar_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezhil-ai/ezhil/internal/calendar"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC)

func newStore(t *testing.T) *calendar.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar_store.json")
	return calendar.New(path, calendar.WithClock(func() time.Time { return fixedNow }))
}

func TestSchedule_ValidDate(t *testing.T) {
	s := newStore(t)

	msg, err := s.Schedule("Standup", "2025-01-10", "9:00 AM", "daily sync")
	require.NoError(t, err)
	assert.Contains(t, msg, "Standup")
	assert.Contains(t, msg, "2025-01-10")
	assert.Contains(t, msg, "9:00 AM")

	events := s.ListAll()
	require.Len(t, events, 1)
	assert.Equal(t, calendar.Event{
		Title: "Standup", Date: "2025-01-10", Time: "9:00 AM", Description: "daily sync",
	}, events[0])
}

func TestSchedule_DefaultsToAllDay(t *testing.T) {
	s := newStore(t)
	msg, err := s.Schedule("Holiday", "2025-01-20", "", "")
	require.NoError(t, err)
	assert.Contains(t, msg, calendar.AllDay)
	assert.Equal(t, calendar.AllDay, s.ListAll()[0].Time)
}

func TestSchedule_InvalidDateRejectedAndNotAppended(t *testing.T) {
	s := newStore(t)
	_, err := s.Schedule("Bad", "2025-13-40", "", "")
	require.Error(t, err)
	// The error carries a remediation hint with today's date.
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	assert.Contains(t, err.Error(), "2025-01-08")
	assert.Empty(t, s.ListAll())
}

func TestSchedule_DuplicatesPermitted(t *testing.T) {
	s := newStore(t)
	_, err := s.Schedule("Gym", "2025-01-09", "6:00 PM", "")
	require.NoError(t, err)
	_, err = s.Schedule("Gym", "2025-01-09", "6:00 PM", "")
	require.NoError(t, err)
	assert.Len(t, s.ListAll(), 2)
}

func TestListAll_EmptyAndIdempotent(t *testing.T) {
	s := newStore(t)
	assert.Empty(t, s.ListAll())

	_, err := s.Schedule("One", "2025-02-01", "", "")
	require.NoError(t, err)
	assert.Equal(t, s.ListAll(), s.ListAll())
}

func TestSearch_LiteralDate(t *testing.T) {
	s := newStore(t)
	_, err := s.Schedule("Standup", "2025-01-10", "9:00 AM", "")
	require.NoError(t, err)

	got := s.Search("2025-01-10")
	assert.Contains(t, got, "Standup")

	assert.Equal(t, "No events found for '2025-03-03'.", s.Search("2025-03-03"))
}

func TestSearch_Today(t *testing.T) {
	s := newStore(t)
	_, err := s.Schedule("Dentist", "2025-01-08", "2:00 PM", "")
	require.NoError(t, err)
	_, err = s.Schedule("Later", "2025-01-25", "", "")
	require.NoError(t, err)

	got := s.Search("today")
	assert.Contains(t, got, "Dentist")
	assert.NotContains(t, got, "Later")

	// Keyword matching is case-insensitive.
	assert.Contains(t, s.Search("TODAY"), "Dentist")
}

func TestSearch_Tomorrow(t *testing.T) {
	s := newStore(t)
	_, err := s.Schedule("Flight", "2025-01-09", "7:15 AM", "")
	require.NoError(t, err)

	assert.Contains(t, s.Search("tomorrow"), "Flight")
}

func TestSearch_ThisWeek(t *testing.T) {
	// fixedNow is Wednesday 2025-01-08; the week is Mon 01-06 .. Sun 01-12.
	s := newStore(t)
	_, err := s.Schedule("WeekStart", "2025-01-06", "", "")
	require.NoError(t, err)
	_, err = s.Schedule("WeekEnd", "2025-01-12", "", "")
	require.NoError(t, err)
	_, err = s.Schedule("NextMonday", "2025-01-13", "", "")
	require.NoError(t, err)

	got := s.Search("this week")
	assert.Contains(t, got, "WeekStart")
	assert.Contains(t, got, "WeekEnd")
	assert.NotContains(t, got, "NextMonday")
}

func TestSearch_EmptyCalendar(t *testing.T) {
	s := newStore(t)
	assert.Equal(t, "No events found in your calendar.", s.Search("today"))
}

func TestSearch_SkipsMalformedStoredDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar_store.json")
	raw := `[
  {"title": "Broken", "date": "sometime soon", "time": "all-day", "description": ""},
  {"title": "Fine", "date": "2025-01-08", "time": "all-day", "description": ""}
]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	s := calendar.New(path, calendar.WithClock(func() time.Time { return fixedNow }))
	got := s.Search("today")
	assert.Contains(t, got, "Fine")
	assert.NotContains(t, got, "Broken")
}

func TestSearch_SundayBelongsToCurrentWeek(t *testing.T) {
	// On a Sunday, "this week" still spans the preceding Monday.
	sunday := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "calendar_store.json")
	s := calendar.New(path, calendar.WithClock(func() time.Time { return sunday }))

	_, err := s.Schedule("MondayThing", "2025-01-06", "", "")
	require.NoError(t, err)
	assert.Contains(t, s.Search("this week"), "MondayThing")
}
