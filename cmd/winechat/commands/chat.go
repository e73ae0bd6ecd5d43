// ABOUTME: Interactive chat command running the dialogue engine in a REPL
// ABOUTME: One engine instance per invocation; reset and quit handled locally
package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eagles/winechat/internal/engine"
	"github.com/joho/godotenv"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the wine recommendation assistant",
		Long: `Chat with the wine recommendation assistant.

Starts an interactive conversation. The assistant asks about wine color,
alcohol strength, country and price range, then suggests matching wines
from the catalog. You can also answer several questions at once in free
text, e.g. "a light red from France under 25 dollars".

Type 'reset' to start over and 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d catalog records\n", cat.Len())
	}

	rec, err := engine.New(cat, 0)
	if err != nil {
		return fmt.Errorf("creating recommender: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Welcome to Wine Chat. Tell me what you're in the mood for ('quit' to leave).")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\nyou> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(out, "Cheers!")
			return nil
		case "reset":
			rec.Reset()
			fmt.Fprintln(out, "Session reset. Let's start fresh!")
			continue
		}

		resp := rec.HandleTurn(line)
		fmt.Fprintln(out, resp.Message)
		for i, opt := range resp.Options {
			fmt.Fprintf(out, "  %d. %s\n", i+1, opt)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
