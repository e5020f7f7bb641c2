package model

import "errors"

var (
	// ErrInvalidRowIndex is returned when an invalid row index is requested
	ErrInvalidRowIndex = errors.New("invalid row index")

	// ErrInvalidColumnIndex is returned when an invalid column index is requested
	ErrInvalidColumnIndex = errors.New("invalid column index")

	// ErrEmptyInput is returned when the CSV source contains no data
	ErrEmptyInput = errors.New("empty input")
)
