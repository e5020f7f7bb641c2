package model

import "github.com/gdamore/tcell/v2"

// Align is the horizontal alignment of a column
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style describes how cells of one column type are displayed
type Style struct {
	Color tcell.Color
	Align Align
}

// styles maps each column type to its fixed display style. Numeric
// columns are right-aligned, booleans and temporals centered.
var styles = map[ColumnType]Style{
	TypeInt:      {Color: tcell.ColorAqua, Align: AlignRight},
	TypeFloat:    {Color: tcell.ColorFuchsia, Align: AlignRight},
	TypeString:   {Color: tcell.ColorGreen, Align: AlignLeft},
	TypeBool:     {Color: tcell.ColorYellow, Align: AlignCenter},
	TypeDate:     {Color: tcell.ColorBlue, Align: AlignCenter},
	TypeDatetime: {Color: tcell.ColorBlue, Align: AlignCenter},
}

// StyleFor returns the display style for a column type
func StyleFor(typ ColumnType) Style {
	if s, ok := styles[typ]; ok {
		return s
	}
	return Style{Color: tcell.ColorGreen, Align: AlignLeft}
}
