package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"rrsched/internal/config"
	"rrsched/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagFormat    string
	flagDB        string

	cfg    *config.Config
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command. Invoked with a process file and
// a quantum it runs one simulation; the subcommands cover the rest.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rrsched <file> <quantum>",
		Short: "Round-robin CPU scheduling simulator",
		Long: "rrsched simulates preemptive round-robin scheduling over the processes in <file>\n" +
			"and prints the average waiting and response times.",
		Args: exactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(flagConfig); err != nil {
				return err
			}
			applyConfig(cmd)
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			return nil
		},
		RunE:          runSimulation,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &flagError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")
	pf.StringVar(&flagFormat, "format", config.DefaultFormat, "Report format (text, json, yaml)")
	pf.StringVar(&flagDB, "db", "", "SQLite run history; runs are recorded when set")

	addRunFlags(root)

	root.AddCommand(
		newGenCmd(),
		newSweepCmd(),
		newHistoryCmd(),
	)

	return root
}

// applyConfig fills every persistent flag the user did not set from cfg.
func applyConfig(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		flagLogLevel = cfg.LogLevel
	}
	if !flags.Changed("log-format") {
		flagLogFormat = cfg.LogFormat
	}
	if !flags.Changed("format") {
		flagFormat = cfg.Format
	}
	if !flags.Changed("db") {
		flagDB = cfg.DBPath
	}
}

// exactArgs is cobra.ExactArgs with an error ExitCode recognises as a usage
// failure.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{want: n, got: len(args)}
		}
		return nil
	}
}
