// Package cli wires the ezhil command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ezhil-ai/ezhil/internal/config"
	"github.com/ezhil-ai/ezhil/internal/telemetry"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ezhil",
		Short:         "Ezhil: a personal assistant that remembers things and schedules events",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cfg, err := config.Load()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	setupLogging(cfg)

	rootCmd.AddCommand(
		newChatCmd(cfg),
		newMemoryCmd(cfg),
		newCalendarCmd(cfg),
	)
	return rootCmd
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: unknown log level %q, using info\n", cfg.LogLevel)
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	telemetry.SetLogger(logger)
}
