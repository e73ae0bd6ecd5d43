// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for all winechat CLI operations
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	datasetFlag  string
)

const banner = `
██╗    ██╗██╗███╗   ██╗███████╗ ██████╗██╗  ██╗ █████╗ ████████╗
██║    ██║██║████╗  ██║██╔════╝██╔════╝██║  ██║██╔══██╗╚══██╔══╝
██║ █╗ ██║██║██╔██╗ ██║█████╗  ██║     ███████║███████║   ██║
██║███╗██║██║██║╚██╗██║██╔══╝  ██║     ██╔══██║██╔══██║   ██║
╚███╔███╔╝██║██║ ╚████║███████╗╚██████╗██║  ██║██║  ██║   ██║
 ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "winechat",
		Short: "Conversational wine recommendation assistant",
		Long: banner + `
Wine Chat guides you through a few preference questions (color, alcohol
strength, country, price range) and recommends matching wines from a
scraped catalog.

Run 'winechat chat' for an interactive conversation, 'winechat serve'
for the HTTP API, or 'winechat mcp' to expose the assistant to LLM
agents over stdio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, text, json")
	cmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "Path to the wine dataset (CSV or SQLite)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewDatasetCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
