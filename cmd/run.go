package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Process "<action> <digits>" records from the given files, or from standard
input when no file (or "-") is given, and print the answers in input order.

By default the first malformed record prints "Nespravny vstup." and stops the
run with exit status 1. With --keep-going every malformed record is reported
and the remaining records are still answered.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Answer records from files or standard input",
		Long:  runLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE:  runRecords,
	}
	addRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
