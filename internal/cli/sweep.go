package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rrsched"
)

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <file> <from> <to>",
		Short: "Compare every quantum in a range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			procs, err := rrsched.LoadFile(args[0])
			if err != nil {
				return err
			}
			from, err := rrsched.ParseQuantum(args[1])
			if err != nil {
				return err
			}
			to, err := rrsched.ParseQuantum(args[2])
			if err != nil {
				return err
			}
			format, err := rrsched.ParseFormat(flagFormat)
			if err != nil {
				return err
			}

			ms, err := rrsched.Sweep(procs, from, to, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case rrsched.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ms)
			case rrsched.FormatYAML:
				return yaml.NewEncoder(out).Encode(ms)
			default:
				rrsched.WriteSweep(out, ms)
				return nil
			}
		},
	}
}
