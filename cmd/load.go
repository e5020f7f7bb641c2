package cmd

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hangxie/csv-browser/model"
)

// stdinSource is the source name shown in the status line for piped input
const stdinSource = "stdin"

// loadFrame loads the CSV either from the given file path or, when no
// path is given, from piped stdin. Returns the frame and the source
// name for the status line. Keyboard input is unaffected by consuming
// stdin here: both viewers read keys from /dev/tty via tcell.
func loadFrame(path string) (*model.Frame, string, error) {
	if path != "" {
		frame, err := model.LoadFile(path)
		return frame, path, err
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, "", ErrNoInput
	}
	frame, err := model.FromReader(os.Stdin)
	return frame, stdinSource, err
}
