package pager

// MinPageRows is the smallest page size ever used; very small terminals
// still get one data row rather than a zero or negative page.
const MinPageRows = 1

// maxColumnWidth caps a single column so one wide column cannot push
// the rest off screen.
const maxColumnWidth = 40

// PageSize computes how many data rows fit on one page given the
// terminal height and the rows consumed by chrome (header, borders,
// status line). Falls back to minRows on terminals shorter than the
// chrome itself.
func PageSize(termHeight, chromeOverhead, minRows int) int {
	rows := termHeight - chromeOverhead
	if rows < minRows {
		return minRows
	}
	return rows
}
