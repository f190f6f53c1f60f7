package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"articlesum/internal/service"
)

func newSummarizeCmd(cfgPath *string) *cobra.Command {
	var (
		url, text, file string
		sentences       int
		noSave, asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a URL, text, a file or stdin",
		Long: `Summarize reads its input from exactly one of --url, --text or --file.
With none of them it reads the text from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.SummarizeRequest{URL: url, Text: text, Sentences: sentences, NoSave: noSave}
			switch {
			case countSet(url, text, file) > 1:
				return errors.New("use only one of --url, --text and --file")
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				req.Text = string(data)
			case url == "" && text == "":
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				req.Text = string(data)
			}
			if cmd.Flags().Changed("sentences") && sentences < 1 {
				return errors.New("--sentences must be at least 1")
			}

			a, err := newApp(*cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.svc.Summarize(cmd.Context(), cliEndpoint, req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			if res.Title != "" {
				fmt.Fprintln(out, res.Title)
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, res.Summary)
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%d -> %d words (%s)\n", res.OriginalLength, res.WordCount, res.Source)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Article URL to download and summarize")
	cmd.Flags().StringVar(&text, "text", "", "Text to summarize")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	cmd.Flags().IntVarP(&sentences, "sentences", "n", 0, "Number of sentences (default from config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not store the summary in history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
