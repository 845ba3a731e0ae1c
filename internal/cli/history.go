package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagDB == "" {
				return errors.New("no run history: pass --db or set db_path")
			}
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Created", "Source", "Quantum", "Procs", "Avg waiting", "Avg response"})
			for _, r := range runs {
				table.Append([]string{
					r.ID,
					r.CreatedAt.Local().Format(time.DateTime),
					r.Source,
					fmt.Sprint(uint64(r.Metrics.Quantum)),
					fmt.Sprint(r.Metrics.NProcs),
					fmt.Sprintf("%.2f", r.Metrics.AvgWaiting),
					fmt.Sprintf("%.2f", r.Metrics.AvgResponse),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many runs (0 for all)")
	return cmd
}
