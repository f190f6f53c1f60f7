package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"articlesum/internal/domain"
	"articlesum/internal/store"
)

const previewLen = 60

func newHistoryCmd(cfgPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No summaries yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tSOURCE\tWORDS\tSUMMARY")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%s\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.SourceType,
					r.WordCount, r.OriginalLength, preview(r.Summary))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", store.DefaultListLimit, "Maximum number of summaries to list")
	return cmd
}

func newAnalyticsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show usage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.svc.Analytics(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total API calls:\t%d\n", s.TotalAPICalls)
			fmt.Fprintf(w, "Successful calls:\t%d\n", s.SuccessfulCalls)
			fmt.Fprintf(w, "Success rate:\t%s\n", s.SuccessRate)
			fmt.Fprintf(w, "Total summaries:\t%d\n", s.TotalSummaries)
			fmt.Fprintf(w, "Avg summary length:\t%.2f words\n", s.AvgSummaryLength)
			return w.Flush()
		},
	}
}

func newDeleteCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a stored summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid summary id %q", args[0])
			}
			a, err := newApp(*cfgPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted summary %d\n", id)
			return nil
		},
	}
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if short := domain.TruncateRunes(s, previewLen); short != s {
		return short + "..."
	}
	return s
}
