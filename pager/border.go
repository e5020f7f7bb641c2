package pager

import (
	"fmt"
	"sort"
	"strings"
)

// Border is a named set of box-drawing runes for the table frame.
// Boxed styles draw a full outer frame; the others only draw the
// header separator and/or column separators.
type Border struct {
	Name string

	Boxed     bool // full outer frame
	HeaderSep bool // horizontal rule under the header row
	ColSep    bool // vertical rules between columns

	Horizontal rune
	Vertical   rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	TopT        rune
	BottomT     rune
	LeftT       rune
	RightT      rune
	Cross       rune
}

var borders = map[string]Border{
	"simple": {
		Name:       "simple",
		HeaderSep:  true,
		Horizontal: '─',
	},
	"minimal": {
		Name:       "minimal",
		HeaderSep:  true,
		ColSep:     true,
		Horizontal: '─',
		Vertical:   '│',
		Cross:      '┼',
	},
	"rounded": {
		Name:       "rounded",
		Boxed:      true,
		HeaderSep:  true,
		ColSep:     true,
		Horizontal: '─',
		Vertical:   '│',
		TopLeft:    '╭',
		TopRight:   '╮',
		BottomLeft: '╰', BottomRight: '╯',
		TopT: '┬', BottomT: '┴', LeftT: '├', RightT: '┤', Cross: '┼',
	},
	"heavy": {
		Name:       "heavy",
		Boxed:      true,
		HeaderSep:  true,
		ColSep:     true,
		Horizontal: '━',
		Vertical:   '┃',
		TopLeft:    '┏',
		TopRight:   '┓',
		BottomLeft: '┗', BottomRight: '┛',
		TopT: '┳', BottomT: '┻', LeftT: '┣', RightT: '┫', Cross: '╋',
	},
	"double": {
		Name:       "double",
		Boxed:      true,
		HeaderSep:  true,
		ColSep:     true,
		Horizontal: '═',
		Vertical:   '║',
		TopLeft:    '╔',
		TopRight:   '╗',
		BottomLeft: '╚', BottomRight: '╝',
		TopT: '╦', BottomT: '╩', LeftT: '╠', RightT: '╣', Cross: '╬',
	},
	"ascii": {
		Name:       "ascii",
		Boxed:      true,
		HeaderSep:  true,
		ColSep:     true,
		Horizontal: '-',
		Vertical:   '|',
		TopLeft:    '+',
		TopRight:   '+',
		BottomLeft: '+', BottomRight: '+',
		TopT: '+', BottomT: '+', LeftT: '+', RightT: '+', Cross: '+',
	},
	"none": {
		Name: "none",
	},
}

// BorderNames returns the valid border style names, sorted
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BorderByName looks up a border style by name (case-insensitive).
// Unknown names produce an error listing the valid styles.
func BorderByName(name string) (Border, error) {
	border, ok := borders[strings.ToLower(name)]
	if !ok {
		return Border{}, fmt.Errorf("unknown box style %q, valid styles: %s",
			name, strings.Join(BorderNames(), ", "))
	}
	return border, nil
}

// ChromeOverhead returns the number of terminal rows this style spends
// on non-data elements: header, separators, outer frame, status line
func (b Border) ChromeOverhead() int {
	overhead := 1 // header row
	if b.HeaderSep {
		overhead++
	}
	if b.Boxed {
		overhead += 2 // top and bottom frame
	}
	return overhead + 1 // status line
}
