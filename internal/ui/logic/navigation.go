package logic

// RowKind identifies what a screen row shows
type RowKind int

const (
	RowHeader RowKind = iota
	RowLine
	RowEmpty // placeholder for a file without lines
	RowBlank // gap after each file
)

// Row is one screen line of the flattened paste
type Row struct {
	Kind RowKind
	File int
	Line int // 1-based, RowLine only
}

// Navigator handles the line cursor and viewport management. The cursor only
// ever rests on a RowLine.
type Navigator struct {
	rows           []Row
	fileRows       []int // index of each file's header row
	selectedIndex  int   // -1 when the paste has no lines at all
	viewportOffset int
	viewportHeight int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{selectedIndex: -1, viewportHeight: 1}
}

// SetFiles rebuilds the rows from per-file line counts and puts the cursor
// on the first line
func (n *Navigator) SetFiles(lineCounts []int) {
	n.rows = n.rows[:0]
	n.fileRows = n.fileRows[:0]
	for file, count := range lineCounts {
		n.fileRows = append(n.fileRows, len(n.rows))
		n.rows = append(n.rows, Row{Kind: RowHeader, File: file})
		if count == 0 {
			n.rows = append(n.rows, Row{Kind: RowEmpty, File: file})
		}
		for line := 1; line <= count; line++ {
			n.rows = append(n.rows, Row{Kind: RowLine, File: file, Line: line})
		}
		n.rows = append(n.rows, Row{Kind: RowBlank, File: file})
	}

	n.selectedIndex = -1
	n.viewportOffset = 0
	for i, r := range n.rows {
		if r.Kind == RowLine {
			n.selectedIndex = i
			break
		}
	}
}

// SetViewportHeight sets how many rows fit on screen
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// SelectedIndex returns the cursor row index, -1 if there is none
func (n *Navigator) SelectedIndex() int {
	return n.selectedIndex
}

// Len returns the number of rows
func (n *Navigator) Len() int {
	return len(n.rows)
}

// Row returns the row at index i
func (n *Navigator) Row(i int) (Row, bool) {
	if i < 0 || i >= len(n.rows) {
		return Row{}, false
	}
	return n.rows[i], true
}

// Visible returns the row at a screen position inside the viewport
func (n *Navigator) Visible(screenRow int) (Row, int, bool) {
	if screenRow < 0 || screenRow >= n.viewportHeight {
		return Row{}, -1, false
	}
	idx := n.viewportOffset + screenRow
	r, ok := n.Row(idx)
	return r, idx, ok
}

// Cursor returns the row under the cursor
func (n *Navigator) Cursor() (Row, bool) {
	return n.Row(n.selectedIndex)
}

// SetSelectedIndex moves the cursor to a line row
func (n *Navigator) SetSelectedIndex(index int) bool {
	r, ok := n.Row(index)
	if !ok || r.Kind != RowLine {
		return false
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return true
}

// Move moves the cursor by delta rows, landing on the nearest line row in
// the direction of travel
func (n *Navigator) Move(delta int) {
	if n.selectedIndex < 0 || delta == 0 {
		return
	}
	target := n.selectedIndex + delta
	if target < 0 {
		target = 0
	}
	if target >= len(n.rows) {
		target = len(n.rows) - 1
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	for _, dir := range []int{step, -step} {
		for i := target; i >= 0 && i < len(n.rows); i += dir {
			if n.rows[i].Kind == RowLine {
				n.selectedIndex = i
				n.ensureSelectedVisible()
				return
			}
		}
	}
}

// MoveToLine places the cursor on a 1-based line of a file
func (n *Navigator) MoveToLine(file, line int) bool {
	if file < 0 || file >= len(n.fileRows) {
		return false
	}
	return n.SetSelectedIndex(n.fileRows[file] + line)
}

// JumpFile moves the cursor to the first line of the next (delta > 0) or
// previous file that has lines, wrapping around
func (n *Navigator) JumpFile(delta int) {
	r, ok := n.Cursor()
	count := len(n.fileRows)
	if !ok || count == 0 || delta == 0 {
		return
	}
	for i := 1; i <= count; i++ {
		next := ((r.File+delta*i)%count + count) % count
		if n.MoveToLine(next, 1) {
			return
		}
	}
}

// Scroll moves the viewport without moving the cursor
func (n *Navigator) Scroll(delta int) {
	n.viewportOffset += delta
	n.clampOffset()
}

// ensureSelectedVisible adjusts the viewport to keep the cursor visible. A
// cursor on a file's first line pulls the header into view with it.
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < 0 {
		n.clampOffset()
		return
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
		if n.viewportOffset > 0 && n.rows[n.viewportOffset-1].Kind == RowHeader {
			n.viewportOffset--
		}
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	n.clampOffset()
}

func (n *Navigator) clampOffset() {
	maxOffset := len(n.rows) - n.viewportHeight
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
