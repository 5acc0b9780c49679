package cmd

import (
	"github.com/spf13/cobra"

	"github.com/natiilollll/Code-Sequence-Validator/internal/domain"
)

var solveListFlag bool

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <digits>...",
		Short: "Answer digit strings given as arguments",
		Long:  "Count the partitions of each digit string given as an argument. With --list every partition is printed before its count.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			cfg.Output.TUI = false

			_, err = newWorkflow(cmd, cfg, nil).Solve(domain.SolveArgs{
				Digits: args,
				List:   solveListFlag,
			})
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&solveListFlag, "list", "l", false, "print every partition before the count")
	cmd.Flags().Int("max-length", domain.DefaultMaxLength, "longest digit string that is enumerated")
	cmd.Flags().Int("max-output", domain.DefaultMaxOutputBytes, "bound on the solution text of one record in bytes (0 = unbounded)")

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
