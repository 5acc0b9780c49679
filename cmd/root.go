// Package cmd provides the root command and CLI setup for codeseq.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/natiilollll/Code-Sequence-Validator/internal/adapter"
	"github.com/natiilollll/Code-Sequence-Validator/internal/config"
	"github.com/natiilollll/Code-Sequence-Validator/internal/controller"
	"github.com/natiilollll/Code-Sequence-Validator/internal/domain"
	"github.com/natiilollll/Code-Sequence-Validator/internal/logging"
	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

var cfgFile string

var reportStore = adapter.NewReportStore()

// newWorkflow builds the workflow for one command invocation. keys is the
// keyboard source for the TUI and is nil when records arrive on stdin.
// Tests replace it to inject mocks.
var newWorkflow = func(cmd *cobra.Command, cfg *config.Config, keys io.Reader) domain.Workflow {
	ui := controller.NewUI(cmd, cfg.Output.TUI, keys)
	solver := domain.NewSolver(
		domain.WithMaxLength(cfg.Limit.MaxLength),
		domain.WithMaxOutputBytes(cfg.Limit.MaxOutputBytes),
	)

	return domain.NewWorkflow(
		adapter.NewLocalInputSource(cmd.InOrStdin()),
		reportStore,
		ui,
		solver,
		logging.New(cmd.ErrOrStderr(), cfg.Log.Verbose),
	)
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"run.parallel":           "parallel",
	"run.keep_going":         "keep-going",
	"output.summary":         "summary",
	"output.report":          "report",
	"output.tui":             "tui",
	"limit.max_length":       "max-length",
	"limit.max_output_bytes": "max-output",
	"log.verbose":            "verbose",
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeseq [files...]",
		Short: "Count and list digit-string partitions into codes",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE:  runRecords,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./codeseq.yaml or $XDG_CONFIG_HOME/codeseq/codeseq.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")
	addRunFlags(cmd)

	return cmd
}

const rootLongDescription = `codeseq reads records of the form "<action> <digits>" and counts the ways
to split each digit string into codes such that a code ending in an even digit
is never followed by a numerically smaller code (leading zeros ignored).

Actions:
  #   print only the count        ("Celkem: <n>")
  ?   print every partition ("* c1,c2,...") followed by the count

Records are read from the given files, or from standard input when none are
given. Strings longer than the length cap (30 by default) report 0.`

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("parallel", "p", 1, "number of records solved concurrently")
	cmd.Flags().BoolP("keep-going", "k", false, "report malformed records and continue")
	cmd.Flags().Bool("summary", false, "print a summary table after the answers")
	cmd.Flags().StringP("report", "r", "", "write a YAML report of all records to this file")
	cmd.Flags().Bool("tui", false, "show an interactive progress view when writing to a terminal")
	cmd.Flags().Bool("no-banner", false, "do not print the leading banner line")
	cmd.Flags().Int("max-length", domain.DefaultMaxLength, "longest digit string that is enumerated")
	cmd.Flags().Int("max-output", domain.DefaultMaxOutputBytes, "bound on the solution text of one record in bytes (0 = unbounded)")
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var keys io.Reader
	if len(args) > 0 && !containsStdin(args) {
		keys = cmd.InOrStdin()
	}

	wf := newWorkflow(cmd, cfg, keys)

	_, err = wf.Run(cmd.Context(), domain.RunArgs{
		Inputs:    parsePaths(args),
		Threads:   cfg.Run.Parallel,
		KeepGoing: cfg.Run.KeepGoing,
		Banner:    cfg.Output.Banner,
		Summary:   cfg.Output.Summary,
		Report:    m.Path(cfg.Output.Report),
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	return nil
}

// loadConfig merges defaults, config file, environment and the flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.New(cfgFile)
	bindFlags(v, cmd)

	cfg, err := config.Load(v)
	if err != nil {
		return nil, &ExitError{Code: ExitConfigError, Err: err}
	}

	if f := cmd.Flags().Lookup("no-banner"); f != nil && f.Changed {
		cfg.Output.Banner = false
	}

	return cfg, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func containsStdin(args []string) bool {
	for _, arg := range args {
		if arg == "-" {
			return true
		}
	}

	return false
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Malformed input was already reported on stdout.
	if !errors.Is(err, adapter.ErrMalformedRecord) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	os.Exit(ExitFailure)
}
