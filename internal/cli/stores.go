package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezhil-ai/ezhil/internal/calendar"
	"github.com/ezhil-ai/ezhil/internal/config"
	"github.com/ezhil-ai/ezhil/internal/memstore"
)

func newMemoryCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "memory",
		Short: "Show everything Ezhil remembers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mem := memstore.New(cfg.MemoryFile).RecallAll()
			if len(mem) == 0 {
				cmd.Println("No memory stored.")
				return nil
			}
			return printJSON(cmd, mem)
		},
	}
}

func newCalendarCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Show all calendar events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events := calendar.New(cfg.CalendarFile).ListAll()
			if len(events) == 0 {
				cmd.Println("No events found.")
				return nil
			}
			return printJSON(cmd, events)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	cmd.Println(string(b))
	return nil
}
