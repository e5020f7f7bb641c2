package cmd

import "errors"

var (
	// ErrNoInput is returned when no file argument is given and stdin is a terminal
	ErrNoInput = errors.New("no input: provide a CSV file or pipe data to stdin")
)
