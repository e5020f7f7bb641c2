package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hangxie/csv-browser/model"
)

// Batch sizes for incremental row loading: the initial page fill plus
// smaller follow-up batches as the selection nears the loaded tail
const (
	initialBatchSize = 100
	loadBatchSize    = 50
)

// loadAheadRows is how close to the loaded tail the selection may get
// before the next batch is loaded
const loadAheadRows = 10

// TUIApp represents the TUI application for browsing a CSV
type TUIApp struct {
	tviewApp       *tview.Application
	pages          *tview.Pages
	mainLayout     *tview.Flex
	headerView     *tview.TextView
	table          *tview.Table
	statusLine     *tview.TextView
	frame          *model.Frame
	source         string
	loadedRows     int
	showRowNumbers bool
}

// NewTUIApp creates a new TUIApp instance
func NewTUIApp(frame *model.Frame, source string) *TUIApp {
	return &TUIApp{
		tviewApp: tview.NewApplication(),
		pages:    tview.NewPages(),
		frame:    frame,
		source:   source,
	}
}

func (app *TUIApp) showMainView() {
	app.mainLayout = tview.NewFlex().SetDirection(tview.FlexRow)

	app.createHeaderView()
	app.createTable()
	app.createStatusLine()

	app.mainLayout.
		AddItem(app.headerView, app.getHeaderHeight(), 0, false).
		AddItem(app.table, 0, 1, true).
		AddItem(app.statusLine, 1, 0, false)

	// Add key bindings
	app.mainLayout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.tviewApp.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.tviewApp.Stop()
				return nil
			case 'g':
				app.selectFirstRow()
				return nil
			case 'G':
				app.selectLastRow()
				return nil
			case 't':
				app.toggleRowNumbers()
				return nil
			case 'c':
				app.copyCell()
				return nil
			}
		}
		return event
	})
}

func (app *TUIApp) createHeaderView() {
	app.headerView = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	app.headerView.SetBorder(true).
		SetTitle(" CSV Info ").
		SetTitleAlign(tview.AlignLeft)

	var header strings.Builder
	header.WriteString(fmt.Sprintf("[yellow]Source:[-] %s", app.source))
	header.WriteString(fmt.Sprintf("\n[yellow]Rows:[-] %d  ", app.frame.NumRows()))
	header.WriteString(fmt.Sprintf("[yellow]Columns:[-] %d", app.frame.NumCols()))

	app.headerView.SetText(header.String())
}

func (app *TUIApp) getHeaderHeight() int {
	if app.headerView == nil {
		return 3 // Default fallback
	}

	text := app.headerView.GetText(false)
	lines := strings.Count(text, "\n") + 1

	// Add 2 for top and bottom borders
	return lines + 2
}

func (app *TUIApp) createTable() {
	app.table = tview.NewTable().
		SetBorders(false).
		SetSeparator(tview.Borders.Vertical).
		SetSelectable(true, true).
		SetFixed(1, 0)

	app.table.SetBorder(true).
		SetTitle(" Rows (↑↓ to navigate, Enter=row details) ").
		SetTitleAlign(tview.AlignLeft)

	app.buildTable()

	// Load the next batch once the selection nears the loaded tail
	app.table.SetSelectionChangedFunc(func(row, column int) {
		if row >= app.loadedRows-loadAheadRows {
			app.loadRows(loadBatchSize)
		}
	})

	app.table.SetSelectedFunc(func(row, column int) {
		if row > 0 {
			app.showRowDetail(row - 1)
		}
	})
}

// buildTable clears the table and repopulates the header row plus all
// rows loaded so far
func (app *TUIApp) buildTable() {
	loaded := app.loadedRows
	if loaded == 0 {
		loaded = initialBatchSize
	}
	app.table.Clear()
	app.loadedRows = 0

	app.setupTableHeader()
	app.loadRows(loaded)
}

func (app *TUIApp) setupTableHeader() {
	colIdx := 0
	if app.showRowNumbers {
		cell := tview.NewTableCell("#").
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignCenter).
			SetSelectable(false)
		app.table.SetCell(0, colIdx, cell)
		colIdx++
	}

	for col, name := range app.frame.Names() {
		style := model.StyleFor(app.frame.Type(col))
		cell := tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetAlign(alignFor(style.Align)).
			SetSelectable(false)
		app.table.SetCell(0, colIdx, cell)
		colIdx++
	}
}

// loadRows appends up to count more rows to the table
func (app *TUIApp) loadRows(count int) {
	start := app.loadedRows
	if start >= app.frame.NumRows() {
		return
	}

	end := start + count
	if end > app.frame.NumRows() {
		end = app.frame.NumRows()
	}

	for row := start; row < end; row++ {
		tableRowIdx := row + 1 // +1 because row 0 is the header
		colIdx := 0

		if app.showRowNumbers {
			cell := tview.NewTableCell(fmt.Sprintf("%d", row+1)).
				SetTextColor(tcell.ColorDarkCyan).
				SetAlign(tview.AlignRight)
			app.table.SetCell(tableRowIdx, colIdx, cell)
			colIdx++
		}

		for col := 0; col < app.frame.NumCols(); col++ {
			value, err := app.frame.Cell(row, col)
			if err != nil {
				value = ""
			}
			style := model.StyleFor(app.frame.Type(col))
			cell := tview.NewTableCell(value).
				SetTextColor(style.Color).
				SetAlign(alignFor(style.Align)).
				SetMaxWidth(40)
			app.table.SetCell(tableRowIdx, colIdx, cell)
			colIdx++
		}
	}

	app.loadedRows = end
}

// loadAllRows loads every remaining row, for jumps to the end
func (app *TUIApp) loadAllRows() {
	if remaining := app.frame.NumRows() - app.loadedRows; remaining > 0 {
		app.loadRows(remaining)
	}
}

func (app *TUIApp) selectFirstRow() {
	if app.frame.NumRows() == 0 {
		return
	}
	_, col := app.table.GetSelection()
	app.table.Select(1, col)
	app.table.ScrollToBeginning()
}

func (app *TUIApp) selectLastRow() {
	if app.frame.NumRows() == 0 {
		return
	}
	app.loadAllRows()
	_, col := app.table.GetSelection()
	app.table.Select(app.table.GetRowCount()-1, col)
}

// toggleRowNumbers shows or hides the row number column
func (app *TUIApp) toggleRowNumbers() {
	row, _ := app.table.GetSelection()
	app.showRowNumbers = !app.showRowNumbers
	app.buildTable()
	if row > 0 && row < app.table.GetRowCount() {
		app.table.Select(row, 0)
	}
}

// copyCell copies the raw value of the selected cell to the clipboard
func (app *TUIApp) copyCell() {
	row, col := app.table.GetSelection()
	dataRow := row - 1
	dataCol := col
	if app.showRowNumbers {
		dataCol--
	}
	if dataRow < 0 || dataCol < 0 {
		return
	}

	value, err := app.frame.RawCell(dataRow, dataCol)
	if err != nil {
		return
	}

	if err := clipboard.WriteAll(value); err != nil {
		app.setStatus(fmt.Sprintf("[red]Clipboard unavailable: %v[-]", err))
		return
	}

	display := value
	if len(display) > 50 {
		display = display[:50] + "..."
	}
	app.setStatus(fmt.Sprintf("[green]Copied:[-] %s", display))
}

// showRowDetail opens a page showing one row as a column/value table
func (app *TUIApp) showRowDetail(rowIdx int) {
	values, err := app.frame.Row(rowIdx)
	if err != nil {
		return
	}

	headerView := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[yellow]Row:[-] %d / %d  [yellow]Source:[-] %s",
			rowIdx+1, app.frame.NumRows(), app.source))
	headerView.SetBorder(true).SetTitle(" Row Detail ")

	detailTable := tview.NewTable().
		SetBorders(false).
		SetSeparator(tview.Borders.Vertical).
		SetSelectable(true, false).
		SetFixed(1, 0)
	detailTable.SetBorder(true).SetTitleAlign(tview.AlignLeft)

	headers := []string{"Column", "Value"}
	for colIdx, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAlign(tview.AlignCenter).
			SetSelectable(false)
		if colIdx == 1 {
			cell.SetExpansion(1)
		}
		detailTable.SetCell(0, colIdx, cell)
	}

	for col, name := range app.frame.Names() {
		cell := tview.NewTableCell(name).
			SetTextColor(tcell.ColorWhite).
			SetAlign(tview.AlignLeft)
		detailTable.SetCell(col+1, 0, cell)

		style := model.StyleFor(app.frame.Type(col))
		cell = tview.NewTableCell(values[col]).
			SetTextColor(style.Color).
			SetAlign(tview.AlignLeft).
			SetExpansion(1)
		detailTable.SetCell(col+1, 1, cell)
	}

	statusLine := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	statusLine.SetText(" [yellow]Keys:[-] ESC=back, ↑↓=scroll")

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(headerView, 3, 0, false).
		AddItem(detailTable, 0, 1, true).
		AddItem(statusLine, 1, 0, false)

	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.pages.RemovePage("detail")
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.pages.RemovePage("detail")
				return nil
			}
		}
		return event
	})

	app.pages.AddPage("detail", flex, true, true)
}

func (app *TUIApp) createStatusLine() {
	app.statusLine = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	status := " [yellow]Keys:[-] q=quit, ↑↓=scroll, g/G=first/last, Enter=row details, c=copy cell, t=row numbers"
	app.statusLine.SetText(status)
}

func (app *TUIApp) setStatus(text string) {
	app.statusLine.SetText(" " + text)
}

// alignFor maps a model alignment to the tview constant
func alignFor(align model.Align) int {
	switch align {
	case model.AlignRight:
		return tview.AlignRight
	case model.AlignCenter:
		return tview.AlignCenter
	default:
		return tview.AlignLeft
	}
}
