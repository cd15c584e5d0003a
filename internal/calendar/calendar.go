// Package calendar persists calendar events as an append-only JSON list and
// answers date and keyword queries over it.
package calendar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ezhil-ai/ezhil/internal/storage"
)

// DateLayout is the canonical event date form. Anything else is rejected at
// scheduling time.
const DateLayout = "2006-01-02"

// AllDay is the time sentinel used when the caller gives no time of day.
const AllDay = "all-day"

// Event is one calendar entry. Events are immutable once scheduled; there is
// no update or delete.
type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Store is a file-backed event list. Construct with New.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for "today"-relative queries and
// error hints. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) load() []Event {
	var events []Event
	// Corrupt files degrade to an empty calendar on reads.
	_ = storage.Load(s.path, &events)
	return events
}

func (s *Store) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Schedule validates date, appends the event, and persists the full list.
// An invalid date is a business error whose text tells the caller the
// expected format and today's date; the list on disk is untouched. eventTime
// defaults to AllDay when empty.
func (s *Store) Schedule(title, date, eventTime, description string) (string, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf(
			"invalid date format for '%s': use YYYY-MM-DD (for today, use %s)",
			date, s.today().Format(DateLayout),
		)
	}
	if eventTime == "" {
		eventTime = AllDay
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events := append(s.load(), Event{
		Title:       title,
		Date:        date,
		Time:        eventTime,
		Description: description,
	})
	if err := storage.Save(s.path, events); err != nil {
		return "", fmt.Errorf("persist calendar: %w", err)
	}
	return fmt.Sprintf("Event '%s' has been successfully scheduled on %s at %s.", title, date, eventTime), nil
}

// ListAll returns every event in storage order. Missing or unreadable
// storage is an empty list.
func (s *Store) ListAll() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Search answers a date query with a human-readable summary. query is either
// a literal YYYY-MM-DD date or one of the keywords "today", "tomorrow" and
// "this week" (case-insensitive; the week runs Monday through Sunday).
// Stored events whose date no longer parses are skipped, not reported.
func (s *Store) Search(query string) string {
	events := s.ListAll()
	if len(events) == 0 {
		return "No events found in your calendar."
	}

	today := s.today()
	var found []Event
	for _, e := range events {
		date, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if matches(query, e.Date, date, today) {
			found = append(found, e)
		}
	}

	if len(found) == 0 {
		return fmt.Sprintf("No events found for '%s'.", query)
	}
	var b strings.Builder
	b.WriteString("Here are the events found:")
	for _, e := range found {
		fmt.Fprintf(&b, "\n- %s on %s at %s (%s)", e.Title, e.Date, e.Time, e.Description)
	}
	return b.String()
}

func matches(query, rawDate string, date, today time.Time) bool {
	switch strings.ToLower(query) {
	case "today":
		return date.Equal(today)
	case "tomorrow":
		return date.Equal(today.AddDate(0, 0, 1))
	case "this week":
		start := startOfWeek(today)
		end := start.AddDate(0, 0, 6)
		return !date.Before(start) && !date.After(end)
	default:
		return query == rawDate
	}
}

// startOfWeek returns the Monday on or before d.
func startOfWeek(d time.Time) time.Time {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding Monday's week
	}
	return d.AddDate(0, 0, -offset)
}
