package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wojakkk/studypal/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show deck statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := openDeck()
			if err != nil {
				return err
			}

			renderStats(cmd.OutOrStdout(), statistics.Calculate(d, today()))
			return nil
		},
	}
}

func renderStats(w io.Writer, stats statistics.DeckStatistics) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(w, "== StudyPal Stats ==")
	_, _ = fmt.Fprintf(w, "Total cards: %d\n", stats.TotalCards)
	_, _ = fmt.Fprintf(w, "Due today: %d\n", stats.DueCards)
	_, _ = fmt.Fprintf(w, "Learned (rep>=2): %d\n", stats.LearnedCards)
	_, _ = fmt.Fprintf(w, "Average ease: %.2f\n", stats.AverageEase)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Reviews coming up (next 7 days):")
	for offset, count := range stats.Upcoming {
		label := "today"
		if offset > 0 {
			label = fmt.Sprintf("+%dd", offset)
		}
		_, _ = fmt.Fprintf(w, "%5s: %3d %s\n", label, count, strings.Repeat("█", count))
	}
}
