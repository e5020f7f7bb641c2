package model

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ColumnType is the semantic type of a CSV column as shown to the user.
// It refines gota's inferred series types with date/datetime detection.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeDate
	TypeDatetime
)

// String returns the display name of the column type
func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeDate:
		return "date"
	case TypeDatetime:
		return "datetime"
	default:
		return "string"
	}
}

// dateLayouts are tried in order when refining a string column; the first
// layout that parses every non-null value wins.
var dateLayouts = []struct {
	layout string
	typ    ColumnType
}{
	{"2006-01-02", TypeDate},
	{"2006/01/02", TypeDate},
	{time.RFC3339, TypeDatetime},
	{"2006-01-02T15:04:05", TypeDatetime},
	{"2006-01-02 15:04:05", TypeDatetime},
}

// Frame is an immutable tabular view over a parsed CSV. Parsing and type
// inference are done by gota; Frame adds the semantic column types and
// display-oriented accessors. A Frame is never mutated after construction.
type Frame struct {
	df    dataframe.DataFrame
	types []ColumnType
}

// LoadFile reads and parses a CSV file
func LoadFile(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	frame, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return frame, nil
}

// FromReader parses CSV data from a reader. The first record is treated as
// the header row; column types are inferred from the data.
func FromReader(r io.Reader) (*Frame, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}
	if df.Ncol() == 0 {
		return nil, ErrEmptyInput
	}
	return NewFrame(df), nil
}

// NewFrame wraps an existing dataframe and computes semantic column types
func NewFrame(df dataframe.DataFrame) *Frame {
	return &Frame{
		df:    df,
		types: refineTypes(df),
	}
}

// refineTypes maps gota series types to ColumnType, upgrading string
// columns whose values all parse as dates or timestamps
func refineTypes(df dataframe.DataFrame) []ColumnType {
	types := make([]ColumnType, df.Ncol())
	for i, st := range df.Types() {
		switch st {
		case series.Int:
			types[i] = TypeInt
		case series.Float:
			types[i] = TypeFloat
		case series.Bool:
			types[i] = TypeBool
		default:
			types[i] = detectTemporal(df.Col(df.Names()[i]).Records())
		}
	}
	return types
}

// detectTemporal returns TypeDate or TypeDatetime when every non-empty
// value in the column parses with a single layout, TypeString otherwise
func detectTemporal(records []string) ColumnType {
	for _, dl := range dateLayouts {
		matched := 0
		ok := true
		for _, rec := range records {
			if rec == "" || rec == "NaN" {
				continue
			}
			if _, err := time.Parse(dl.layout, rec); err != nil {
				ok = false
				break
			}
			matched++
		}
		if ok && matched > 0 {
			return dl.typ
		}
	}
	return TypeString
}

// NumRows returns the number of data rows
func (f *Frame) NumRows() int {
	return f.df.Nrow()
}

// NumCols returns the number of columns
func (f *Frame) NumCols() int {
	return f.df.Ncol()
}

// Names returns the column names in order
func (f *Frame) Names() []string {
	return f.df.Names()
}

// Types returns the semantic column types in order
func (f *Frame) Types() []ColumnType {
	return f.types
}

// Type returns the semantic type of a single column
func (f *Frame) Type(col int) ColumnType {
	if col < 0 || col >= len(f.types) {
		return TypeString
	}
	return f.types[col]
}

// Cell returns the display-formatted value at (row, col): "-" for nulls,
// %.4g for floats, the underlying string otherwise
func (f *Frame) Cell(row, col int) (string, error) {
	if row < 0 || row >= f.df.Nrow() {
		return "", ErrInvalidRowIndex
	}
	if col < 0 || col >= f.df.Ncol() {
		return "", ErrInvalidColumnIndex
	}
	return FormatValue(f.df.Elem(row, col), f.types[col]), nil
}

// RawCell returns the unformatted value at (row, col), empty for nulls.
// Used for clipboard copy where display formatting is unwanted.
func (f *Frame) RawCell(row, col int) (string, error) {
	if row < 0 || row >= f.df.Nrow() {
		return "", ErrInvalidRowIndex
	}
	if col < 0 || col >= f.df.Ncol() {
		return "", ErrInvalidColumnIndex
	}
	elem := f.df.Elem(row, col)
	if elem.IsNA() {
		return "", nil
	}
	// gota renders floats with fixed six decimals; use the shortest
	// exact representation instead
	if f.types[col] == TypeFloat {
		return strconv.FormatFloat(elem.Float(), 'g', -1, 64), nil
	}
	return elem.String(), nil
}

// Row returns all display-formatted values of a single row
func (f *Frame) Row(row int) ([]string, error) {
	if row < 0 || row >= f.df.Nrow() {
		return nil, ErrInvalidRowIndex
	}
	values := make([]string, f.df.Ncol())
	for col := range values {
		values[col] = FormatValue(f.df.Elem(row, col), f.types[col])
	}
	return values, nil
}
