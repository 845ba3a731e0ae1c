package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rrsched"
)

func newGenCmd() *cobra.Command {
	lgc := rrsched.DefaultLoadGenConfig()
	var (
		minBurst, maxBurst uint32
		output             string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random process file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lgc.MinBurst = rrsched.Ttick(minBurst)
			lgc.MaxBurst = rrsched.Ttick(maxBurst)
			lg, err := rrsched.NewLoadGen(lgc)
			if err != nil {
				return err
			}
			procs := lg.Generate()

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := rrsched.WriteProcesses(out, procs); err != nil {
				return fmt.Errorf("write processes: %w", err)
			}
			logger.Info("generated processes", "procs", len(procs), "seed", lgc.Seed, "output", output)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&lgc.NProcs, "procs", "n", lgc.NProcs, "Number of processes")
	f.Uint64Var(&lgc.Seed, "seed", lgc.Seed, "Random seed")
	f.Float64Var(&lgc.AvgGap, "mean-gap", lgc.AvgGap, "Mean ticks between arrivals")
	f.Float64Var(&lgc.AvgBurst, "mean-burst", lgc.AvgBurst, "Mean burst length")
	f.Float64Var(&lgc.StdDevBurst, "stddev-burst", lgc.StdDevBurst, "Burst length standard deviation")
	f.Uint32Var(&minBurst, "min-burst", uint32(lgc.MinBurst), "Shortest burst")
	f.Uint32Var(&maxBurst, "max-burst", uint32(lgc.MaxBurst), "Longest burst")
	f.StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
