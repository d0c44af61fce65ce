package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI returns the Bubble Tea editor for terminals and the line-command
// SimpleUI otherwise. Both read and write through cmd's streams.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device, so false for pipes,
// regular files and in-memory writers.
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
