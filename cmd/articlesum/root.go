package main

import (
	"github.com/spf13/cobra"
)

const cliEndpoint = "cli"

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:   "articlesum",
		Short: "Extractive article summarizer",
		Long: `articlesum condenses web articles and plain text into a few of their most
representative sentences, scored by word frequency.

Available commands:
  serve      - Run the HTTP API
  summarize  - Summarize a URL, text, a file or stdin
  tui        - Interactive terminal UI
  history    - List stored summaries
  analytics  - Show usage statistics
  delete     - Delete a stored summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default ./config.yaml or ~/.config/articlesum/config.yaml)")

	root.AddCommand(
		newServeCmd(&cfgPath),
		newSummarizeCmd(&cfgPath),
		newTUICmd(&cfgPath),
		newHistoryCmd(&cfgPath),
		newAnalyticsCmd(&cfgPath),
		newDeleteCmd(&cfgPath),
		newVersionCmd(),
	)
	return root
}
