package cmd

import (
	"github.com/spf13/cobra"

	"github.com/natiilollll/Code-Sequence-Validator/internal/controller"
	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.yaml>",
		Short: "View a previously written report",
		Long:  "View a YAML report written by 'codeseq run --report' as a table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := reportStore.LoadReports(m.Path(args[0]))
			if err != nil {
				return err
			}

			controller.WriteReportTable(cmd.OutOrStdout(), reports)

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
