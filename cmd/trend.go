package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sadopc/petpal/internal/store"
	"github.com/spf13/cobra"
)

func newTrendCommand(opts *rootOptions) *cobra.Command {
	var (
		pet  string
		days int
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print how many to-dos were completed per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			todos := s.store.Todos.List()
			if pet != "" {
				todos = s.store.Todos.ForPet(pet)
			}
			trend := store.CompletionTrend(todos).Last(days)

			out := cmd.OutOrStdout()
			if len(trend.Dates) == 0 {
				fmt.Fprintln(out, "No completed to-dos yet.")
				return nil
			}
			fmt.Fprintln(out, renderTrend(trend))
			fmt.Fprintf(out, "Total: %d\n", trend.Total())
			return nil
		},
	}

	cmd.Flags().StringVar(&pet, "pet", "", "only count to-dos for this pet")
	cmd.Flags().IntVar(&days, "days", 0, "only show the most recent N days (0 shows all)")
	return cmd
}

func renderTrend(trend store.Trend) string {
	peak := max(1, trend.Max())
	const barWidth = 30

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Done", "")
	for i, day := range trend.Dates {
		n := trend.Counts[i]
		bar := strings.Repeat("█", max(1, n*barWidth/peak))
		t.Row(day, strconv.Itoa(n), bar)
	}
	return t.Render()
}
