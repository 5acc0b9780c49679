package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI for the command. When useTUI is true and the command
// writes to a terminal it returns a TUI (Bubble Tea); otherwise a SimpleUI.
// keys is the keyboard source for the TUI and may be nil.
func NewUI(cmd *cobra.Command, useTUI bool, keys io.Reader) UI {
	if useTUI && IsTTY(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout(), keys)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
