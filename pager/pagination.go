package pager

// PageState tracks the visible window over the loaded rows. Pages are
// fixed windows starting at multiples of the page size; the final page
// may be shorter. The offset is always a valid row index while rows
// exist, and stays 0 for an empty table.
type PageState struct {
	totalRows int
	pageSize  int
	offset    int
}

// NewPageState creates a PageState positioned at the first page
func NewPageState(totalRows, pageSize int) *PageState {
	if totalRows < 0 {
		totalRows = 0
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return &PageState{
		totalRows: totalRows,
		pageSize:  pageSize,
	}
}

// TotalRows returns the number of rows in the table
func (s *PageState) TotalRows() int {
	return s.totalRows
}

// PageSize returns the number of rows shown per page
func (s *PageState) PageSize() int {
	return s.pageSize
}

// Offset returns the index of the first visible row
func (s *PageState) Offset() int {
	return s.offset
}

// SetPageSize updates the page size after a terminal resize and
// re-clamps the offset so the window stays valid
func (s *PageState) SetPageSize(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	s.pageSize = pageSize
	if s.offset > s.lastRow() {
		s.offset = s.lastRow()
	}
}

// Window returns the half-open row range [start, end) currently visible
func (s *PageState) Window() (int, int) {
	if s.totalRows == 0 {
		return 0, 0
	}
	end := s.offset + s.pageSize
	if end > s.totalRows {
		end = s.totalRows
	}
	return s.offset, end
}

// lastRow returns the highest valid row index, 0 for an empty table
func (s *PageState) lastRow() int {
	if s.totalRows == 0 {
		return 0
	}
	return s.totalRows - 1
}

// lastPageOffset returns the offset of the final page: the largest
// multiple of pageSize that is still a valid row index
func (s *PageState) lastPageOffset() int {
	if s.totalRows == 0 {
		return 0
	}
	return (s.totalRows - 1) / s.pageSize * s.pageSize
}

// OnFirstPage reports whether the window starts at the first row
func (s *PageState) OnFirstPage() bool {
	return s.offset == 0
}

// OnLastPage reports whether the window already reaches the final row
func (s *PageState) OnLastPage() bool {
	return s.offset+s.pageSize >= s.totalRows
}

// LineDown moves the window down one row, clamped to the last row.
// Returns true when the offset changed.
func (s *PageState) LineDown() bool {
	if s.totalRows == 0 || s.offset >= s.lastRow() {
		return false
	}
	s.offset++
	return true
}

// LineUp moves the window up one row, clamped to the first row
func (s *PageState) LineUp() bool {
	if s.offset == 0 {
		return false
	}
	s.offset--
	return true
}

// PageDown advances one page toward the last page offset. It never
// moves the window backward, so it is a no-op once the final row is
// already reachable from the current offset.
func (s *PageState) PageDown() bool {
	next := s.offset + s.pageSize
	if last := s.lastPageOffset(); next > last {
		next = last
	}
	if next <= s.offset {
		return false
	}
	s.offset = next
	return true
}

// PageUp moves one page back, clamped to the first row
func (s *PageState) PageUp() bool {
	if s.offset == 0 {
		return false
	}
	prev := s.offset - s.pageSize
	if prev < 0 {
		prev = 0
	}
	s.offset = prev
	return true
}

// FirstPage jumps to the first page
func (s *PageState) FirstPage() bool {
	if s.offset == 0 {
		return false
	}
	s.offset = 0
	return true
}

// LastPage jumps to the last page offset
func (s *PageState) LastPage() bool {
	last := s.lastPageOffset()
	if s.offset == last {
		return false
	}
	s.offset = last
	return true
}
