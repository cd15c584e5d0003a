package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ezhil-ai/ezhil/internal/calendar"
)

type ScheduleEventInput struct {
	Title       string `json:"title" jsonschema_description:"The title or name of the event."`
	EventDate   string `json:"event_date" jsonschema_description:"The date of the event, in YYYY-MM-DD format."`
	Time        string `json:"time,omitempty" jsonschema_description:"The time of the event, e.g. '2:00 PM'. Defaults to all-day."`
	Description string `json:"description,omitempty" jsonschema_description:"Any extra details about the event."`
}

var ScheduleEventInputSchema = GenerateSchema[ScheduleEventInput]()

// ScheduleEventDefinition wraps the calendar store's write path. Date
// validation failures come back as error results the model can act on.
func ScheduleEventDefinition(cal *calendar.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "schedule_event",
		Description: "Schedule a new event on the user's calendar. Provide title, date (YYYY-MM-DD), time (e.g. '2:00 PM'), and optional description.",
		InputSchema: ScheduleEventInputSchema,
		Function: func(input json.RawMessage) (string, error) {
			var in ScheduleEventInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", fmt.Errorf("invalid arguments for schedule_event: %w", err)
			}
			if in.Title == "" || in.EventDate == "" {
				return "", fmt.Errorf("invalid arguments for schedule_event: title and event_date are both required")
			}
			return cal.Schedule(in.Title, in.EventDate, in.Time, in.Description)
		},
	}
}
