package pager

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangxie/csv-browser/model"
)

func testFrame(t *testing.T, csv string) *model.Frame {
	t.Helper()
	frame, err := model.FromReader(strings.NewReader(csv))
	require.NoError(t, err)
	return frame
}

func testScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	return screen
}

// screenLine returns the visible text of one screen row
func screenLine(t *testing.T, screen tcell.SimulationScreen, y int) string {
	t.Helper()
	cells, width, height := screen.GetContents()
	require.Less(t, y, height)

	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		}
	}
	return sb.String()
}

func screenText(t *testing.T, screen tcell.SimulationScreen) string {
	t.Helper()
	_, _, height := screen.GetContents()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = screenLine(t, screen, y)
	}
	return strings.Join(lines, "\n")
}

const smallCSV = "id,name,score\n1,alice,3.14159\n2,bob,2.5\n3,carol,1\n"

func Test_Pager_DrawHeaderAndRows(t *testing.T) {
	screen := testScreen(t, 80, 12)
	border, err := BorderByName("simple")
	require.NoError(t, err)

	p := newPager(screen, testFrame(t, smallCSV), "test.csv", border)
	p.draw()

	text := screenText(t, screen)
	assert.Contains(t, text, "id")
	assert.Contains(t, text, "name")
	assert.Contains(t, text, "score")
	assert.Contains(t, text, "alice")
	assert.Contains(t, text, "carol")
	// Floats use compact formatting
	assert.Contains(t, text, "3.142")
}

func Test_Pager_DrawStatusLine(t *testing.T) {
	screen := testScreen(t, 80, 12)
	border, err := BorderByName("simple")
	require.NoError(t, err)

	p := newPager(screen, testFrame(t, smallCSV), "test.csv", border)
	p.draw()

	_, height := screen.Size()
	status := screenLine(t, screen, height-1)
	assert.Contains(t, status, "test.csv")
	assert.Contains(t, status, "rows 1-3 / 3")
}

func Test_Pager_DrawLastPageStatus(t *testing.T) {
	// 163 rows, page size 50 (height 53 with simple border chrome of 3)
	var sb strings.Builder
	sb.WriteString("n\n")
	for i := 1; i <= 163; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	screen := testScreen(t, 40, 53)
	border, err := BorderByName("simple")
	require.NoError(t, err)

	p := newPager(screen, testFrame(t, sb.String()), "numbers.csv", border)
	require.Equal(t, 50, p.state.PageSize())

	p.state.LastPage()
	p.draw()

	_, height := screen.Size()
	status := screenLine(t, screen, height-1)
	assert.Contains(t, status, "rows 151-163 / 163")
}

func Test_Pager_DrawBoxedBorder(t *testing.T) {
	screen := testScreen(t, 80, 12)
	border, err := BorderByName("ascii")
	require.NoError(t, err)

	p := newPager(screen, testFrame(t, smallCSV), "test.csv", border)
	p.draw()

	top := screenLine(t, screen, 0)
	assert.True(t, strings.HasPrefix(top, "+"), "top border starts with a corner: %q", top)
	assert.Contains(t, top, "-")

	_, height := screen.Size()
	bottom := screenLine(t, screen, height-2)
	assert.True(t, strings.HasPrefix(bottom, "+"), "bottom border starts with a corner: %q", bottom)
}

func Test_StatusRange(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		total    int
		expected string
	}{
		{
			name:     "first page",
			start:    0,
			end:      50,
			total:    163,
			expected: "rows 1-50 / 163",
		},
		{
			name:     "last short page",
			start:    150,
			end:      163,
			total:    163,
			expected: "rows 151-163 / 163",
		},
		{
			name:     "empty table",
			start:    0,
			end:      0,
			total:    0,
			expected: "rows 0-0 / 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusRange(tt.start, tt.end, tt.total))
		})
	}
}

func Test_PadCell(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		align    model.Align
		expected string
	}{
		{
			name:     "left aligned pads right",
			text:     "ab",
			width:    5,
			align:    model.AlignLeft,
			expected: "ab   ",
		},
		{
			name:     "right aligned pads left",
			text:     "ab",
			width:    5,
			align:    model.AlignRight,
			expected: "   ab",
		},
		{
			name:     "centered",
			text:     "ab",
			width:    6,
			align:    model.AlignCenter,
			expected: "  ab  ",
		},
		{
			name:     "centered with odd gap",
			text:     "ab",
			width:    5,
			align:    model.AlignCenter,
			expected: " ab  ",
		},
		{
			name:     "truncates with ellipsis",
			text:     "abcdefgh",
			width:    5,
			align:    model.AlignLeft,
			expected: "abcd…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, padCell(tt.text, tt.width, tt.align))
		})
	}
}

func Test_Pager_ColumnWidths(t *testing.T) {
	screen := testScreen(t, 80, 12)
	border, err := BorderByName("simple")
	require.NoError(t, err)

	longValue := strings.Repeat("x", 100)
	csv := "short,header\n" + longValue + ",1\n"
	p := newPager(screen, testFrame(t, csv), "test.csv", border)

	widths := p.columnWidths(0, 1)
	require.Len(t, widths, 2)
	assert.Equal(t, maxColumnWidth, widths[0], "long values are capped")
	assert.Equal(t, len("header"), widths[1], "header sets the minimum width")
}
