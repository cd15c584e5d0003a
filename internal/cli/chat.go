package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ezhil-ai/ezhil/internal/agent"
	"github.com/ezhil-ai/ezhil/internal/calendar"
	"github.com/ezhil-ai/ezhil/internal/config"
	"github.com/ezhil-ai/ezhil/internal/conversation"
	"github.com/ezhil-ai/ezhil/internal/memstore"
	"github.com/ezhil-ai/ezhil/internal/provider"
	"github.com/ezhil-ai/ezhil/tools"
)

func newChatCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to Ezhil (Ctrl-C to quit)",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runChat(cfg)
		},
	}
}

func runChat(cfg config.Config) error {
	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return fmt.Errorf("missing ANTHROPIC_API_KEY; export it before running")
	}

	entries, err := conversation.Load(cfg.ConversationFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load persisted conversation: %v\n", err)
	}

	mem := memstore.New(cfg.MemoryFile)
	cal := calendar.New(cfg.CalendarFile)
	loop := agent.New(
		provider.NewClient(),
		tools.Registry(mem, cal),
		provider.Model(cfg.Model),
		cfg.MaxTokens,
	)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Chat with Ezhil (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	for {
		fmt.Print("[94mYou[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return scanner.Err()
		case user, ok = <-inputCh:
			if !ok {
				return scanner.Err()
			}
		}

		answer, updated, err := loop.RunTurn(ctx, entries, user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		entries = updated
		fmt.Printf("[93mEzhil[0m: %s\n", answer)

		if err := conversation.Save(cfg.ConversationFile, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save conversation: %v\n", err)
		}
	}
}
