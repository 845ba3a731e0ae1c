package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rrsched"
	"rrsched/internal/store"
)

var (
	flagTable bool
	flagGantt bool
	flagTrace bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagTable, "table", false, "Print a per-process table before the report")
	cmd.Flags().BoolVar(&flagGantt, "gantt", false, "Print a Gantt chart before the report")
	cmd.Flags().BoolVar(&flagTrace, "trace", false, "Include every dispatch in json/yaml reports")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	procs, err := rrsched.LoadFile(args[0])
	if err != nil {
		return err
	}
	quantum, err := rrsched.ParseQuantum(args[1])
	if err != nil {
		return err
	}
	format, err := rrsched.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	logger.Info("loaded processes", "file", args[0], "procs", len(procs), "quantum", uint64(quantum))

	sd, err := rrsched.NewSched(procs, quantum, logger)
	if err != nil {
		return err
	}
	res := sd.Run()

	rep := rrsched.NewReport(res)
	if !flagTrace {
		rep.Trace = nil
	}

	out := cmd.OutOrStdout()
	if flagGantt {
		rrsched.WriteGantt(out, res.Trace)
	}
	if flagTable {
		rep.WriteTable(out)
	}
	if err := rep.Write(out, format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if flagDB != "" {
		return recordRun(cmd.Context(), args[0], rep)
	}
	return nil
}

func openStore(ctx context.Context) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(flagDB, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func recordRun(ctx context.Context, source string, rep *rrsched.Report) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	run := &store.Run{
		Source:  source,
		Metrics: *rep.Metrics,
		Procs:   rep.Procs,
	}
	if err := st.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	logger.Info("run recorded", "id", run.ID, "db", flagDB)
	return nil
}
