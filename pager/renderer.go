package pager

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/hangxie/csv-browser/model"
)

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle = tcell.StyleDefault
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
)

// ruleKind selects the junction runes for a horizontal rule
type ruleKind int

const (
	ruleTop ruleKind = iota
	ruleMiddle
	ruleBottom
)

// draw repaints the whole frame: optional top border, header, optional
// separator, the visible row window, optional bottom border and the
// status line. tcell's cell buffer turns this into a diff, so a full
// repaint leaves no artifacts from the previous frame.
func (p *Pager) draw() {
	width, height := p.screen.Size()
	p.screen.Clear()

	start, end := p.state.Window()
	widths := p.columnWidths(start, end)

	y := 0
	if p.border.Boxed {
		p.drawRule(y, width, widths, ruleTop)
		y++
	}
	p.drawHeader(y, width, widths)
	y++
	if p.border.HeaderSep {
		p.drawRule(y, width, widths, ruleMiddle)
		y++
	}

	for row := start; row < end; row++ {
		p.drawRow(y, width, widths, row)
		y++
	}

	if p.border.Boxed {
		// Extend the outer frame down to the bottom rule even when the
		// final page is short
		for ; y < height-2; y++ {
			p.putRune(0, y, p.border.Vertical, borderStyle, width)
			p.putRune(p.frameWidth(widths)-1, y, p.border.Vertical, borderStyle, width)
		}
		p.drawRule(height-2, width, widths, ruleBottom)
	}

	p.drawStatus(height-1, width, start, end)
	p.screen.Show()
}

// columnWidths sizes each column to the widest value in the visible
// window (or the header if wider), capped so a single long value cannot
// crowd out the other columns
func (p *Pager) columnWidths(start, end int) []int {
	names := p.frame.Names()
	widths := make([]int, len(names))
	for col, name := range names {
		widths[col] = runewidth.StringWidth(name)
	}
	for row := start; row < end; row++ {
		for col := range names {
			cell, err := p.frame.Cell(row, col)
			if err != nil {
				continue
			}
			if w := runewidth.StringWidth(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}
	for col := range widths {
		if widths[col] > maxColumnWidth {
			widths[col] = maxColumnWidth
		}
		if widths[col] < 1 {
			widths[col] = 1
		}
	}
	return widths
}

// frameWidth returns the total width of one table line including
// padding and separators
func (p *Pager) frameWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if p.border.ColSep {
		total += len(widths) - 1
	}
	if p.border.Boxed {
		total += 2
	}
	return total
}

func (p *Pager) drawHeader(y, screenWidth int, widths []int) {
	x := 0
	if p.border.Boxed {
		p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
		x++
	}
	for col := range widths {
		style := model.StyleFor(p.frame.Type(col))
		text := padCell(p.frame.Names()[col], widths[col], style.Align)
		p.putText(x, y, " "+text+" ", headerStyle, screenWidth)
		x += widths[col] + 2
		if col < len(widths)-1 && p.border.ColSep {
			p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
			x++
		}
	}
	if p.border.Boxed {
		p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
	}
}

func (p *Pager) drawRow(y, screenWidth int, widths []int, row int) {
	x := 0
	if p.border.Boxed {
		p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
		x++
	}
	for col := range widths {
		style := model.StyleFor(p.frame.Type(col))
		cell, err := p.frame.Cell(row, col)
		if err != nil {
			cell = ""
		}
		text := padCell(cell, widths[col], style.Align)
		p.putText(x, y, " "+text+" ", tcell.StyleDefault.Foreground(style.Color), screenWidth)
		x += widths[col] + 2
		if col < len(widths)-1 && p.border.ColSep {
			p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
			x++
		}
	}
	if p.border.Boxed {
		p.putRune(x, y, p.border.Vertical, borderStyle, screenWidth)
	}
}

// drawRule draws a horizontal rule with the junction runes of the
// border style at column boundaries
func (p *Pager) drawRule(y, screenWidth int, widths []int, kind ruleKind) {
	left, junction, right := p.ruleRunes(kind)
	x := 0
	if p.border.Boxed {
		p.putRune(x, y, left, borderStyle, screenWidth)
		x++
	}
	for col := range widths {
		for i := 0; i < widths[col]+2; i++ {
			p.putRune(x, y, p.border.Horizontal, borderStyle, screenWidth)
			x++
		}
		if col < len(widths)-1 && p.border.ColSep {
			p.putRune(x, y, junction, borderStyle, screenWidth)
			x++
		}
	}
	if p.border.Boxed {
		p.putRune(x, y, right, borderStyle, screenWidth)
	}
}

func (p *Pager) ruleRunes(kind ruleKind) (rune, rune, rune) {
	switch kind {
	case ruleTop:
		return p.border.TopLeft, p.border.TopT, p.border.TopRight
	case ruleBottom:
		return p.border.BottomLeft, p.border.BottomT, p.border.BottomRight
	default:
		return p.border.LeftT, p.border.Cross, p.border.RightT
	}
}

// drawStatus draws the full-width status bar: source name on the left,
// visible row range on the right
func (p *Pager) drawStatus(y, screenWidth, start, end int) {
	left := " " + p.source
	right := statusRange(start, end, p.state.TotalRows()) + " "

	padding := screenWidth - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if padding < 1 {
		padding = 1
	}
	p.putText(0, y, left+strings.Repeat(" ", padding)+right, statusStyle, screenWidth)
}

// statusRange formats the "rows a-b / total" status fragment; an empty
// table reads "rows 0-0 / 0"
func statusRange(start, end, total int) string {
	if total == 0 {
		return "rows 0-0 / 0"
	}
	return fmt.Sprintf("rows %d-%d / %d", start+1, end, total)
}

// padCell truncates and pads a value to the column width
func padCell(text string, width int, align model.Align) string {
	text = runewidth.Truncate(text, width, "…")
	switch align {
	case model.AlignRight:
		return runewidth.FillLeft(text, width)
	case model.AlignCenter:
		gap := width - runewidth.StringWidth(text)
		leftPad := gap / 2
		return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", gap-leftPad)
	default:
		return runewidth.FillRight(text, width)
	}
}

// putText writes a string starting at (x, y), clipped to the screen
func (p *Pager) putText(x, y int, text string, style tcell.Style, screenWidth int) {
	for _, r := range text {
		if x >= screenWidth {
			return
		}
		p.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// putRune writes a single rune, clipped to the screen
func (p *Pager) putRune(x, y int, r rune, style tcell.Style, screenWidth int) {
	if r == 0 || x < 0 || x >= screenWidth {
		return
	}
	p.screen.SetContent(x, y, r, nil, style)
}
