package headlessterm

// EraseMode selects which part of a screen or line CSI J / CSI K clears.
type EraseMode int

const (
	EraseToEnd   EraseMode = 0 // cursor to end (inclusive of everything after the cursor)
	EraseToStart EraseMode = 1 // start to cursor, inclusive
	EraseAll     EraseMode = 2 // entire screen or line
)

// eraseCell blanks s.cells[i] unless it is protected.
func (s *Screen) eraseCell(i int, def Color) {
	if !s.cells[i].Protected {
		s.cells[i] = blank(def)
	}
}

// EraseScreen implements CSI J: erase mode relative to the cursor. Protected
// cells are skipped.
func (s *Screen) EraseScreen(mode EraseMode, def Color) {
	cy, cx := s.cursorRow, s.cursorCol

	switch mode {
	case EraseToEnd:
		for y := cy; y < s.rows; y++ {
			xStart := 0
			if y == cy {
				xStart = cx
			}
			for x := xStart; x < s.cols; x++ {
				s.eraseCell(s.index(y, x), def)
			}
		}
	case EraseToStart:
		for y := 0; y <= cy; y++ {
			xEnd := s.cols
			if y == cy {
				xEnd = cx + 1
			}
			for x := 0; x < xEnd; x++ {
				s.eraseCell(s.index(y, x), def)
			}
		}
	default: // EraseAll and anything unrecognized
		for y := 0; y < s.rows; y++ {
			for x := 0; x < s.cols; x++ {
				s.eraseCell(s.index(y, x), def)
			}
		}
	}
}

// EraseLine implements CSI K: erase mode relative to the cursor, current row
// only. Protected cells are skipped.
func (s *Screen) EraseLine(mode EraseMode, def Color) {
	y := s.cursorRow
	xStart, xEnd := 0, s.cols

	switch mode {
	case EraseToEnd:
		xStart = s.cursorCol
	case EraseToStart:
		xEnd = s.cursorCol + 1
	}

	for x := xStart; x < xEnd; x++ {
		s.eraseCell(s.index(y, x), def)
	}
}

// InsertChars implements CSI @: insert n blanks at the cursor column within
// the cursor row, shifting existing characters right. n is clamped so
// column+n never exceeds the row width. Protection-aware: protected
// destinations are left alone, and a protected source is skipped over while
// searching for a cell to shift in, exactly as ozterm_line_insert_characters
// does.
func (s *Screen) InsertChars(n int, def Color) {
	row := s.cells[s.cursorRow*s.cols : s.cursorRow*s.cols+s.cols]
	x := s.cursorCol
	if x >= s.cols || n <= 0 {
		return
	}
	if x+n >= s.cols {
		n = s.cols - x
	}

	for i := s.cols - 1; i >= x+n; i-- {
		if row[i].Protected {
			continue
		}
		src := i - n
		for src >= x && row[src].Protected {
			src--
		}
		if src >= x {
			row[i] = row[src]
		} else {
			row[i] = blank(def)
		}
	}

	for i := x; i < x+n; i++ {
		if !row[i].Protected {
			row[i] = blank(def)
		}
	}
}

// DeleteChars implements CSI P: delete n characters at the cursor column
// within the cursor row, shifting remaining characters left and filling the
// vacated tail with blanks. Same protection rules as InsertChars, mirrored
// from ozterm_line_delete_characters.
func (s *Screen) DeleteChars(n int, def Color) {
	row := s.cells[s.cursorRow*s.cols : s.cursorRow*s.cols+s.cols]
	x := s.cursorCol
	if x >= s.cols || n <= 0 {
		return
	}
	if x+n >= s.cols {
		n = s.cols - x
	}

	for i := x; i < s.cols-n; i++ {
		if row[i].Protected {
			continue
		}
		src := i + n
		for src < s.cols && row[src].Protected {
			src++
		}
		if src < s.cols {
			row[i] = row[src]
		} else {
			row[i] = blank(def)
		}
	}

	for i := s.cols - n; i < s.cols; i++ {
		if !row[i].Protected {
			row[i] = blank(def)
		}
	}
}

// ScrollUpRegion moves rows [top,bottom] up by n within the screen, blanking
// the newly exposed rows at the bottom. n is clamped to the region height.
// Does not touch scrollback. Protection-aware per cell: a destination cell
// already protected is left in place, mirroring ozterm_scroll_up_region
// (which copies the source through unconditionally once the destination is
// known writable, without itself skipping protected sources).
func (s *Screen) ScrollUpRegion(top, bottom, n int, def Color) {
	if n <= 0 {
		n = 1
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}

	for y := top; y <= bottom-n; y++ {
		for x := 0; x < s.cols; x++ {
			to := s.index(y, x)
			from := s.index(y+n, x)
			if !s.cells[to].Protected {
				s.cells[to] = s.cells[from]
			}
		}
	}

	for y := bottom - n + 1; y <= bottom; y++ {
		for x := 0; x < s.cols; x++ {
			s.eraseCell(s.index(y, x), def)
		}
	}
}

// ScrollDownRegion moves rows [top,bottom] down by n, blanking the newly
// exposed rows at the top. Mirrors ScrollUpRegion's protection rule.
func (s *Screen) ScrollDownRegion(top, bottom, n int, def Color) {
	if n <= 0 {
		n = 1
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}

	for y := bottom; y >= top+n; y-- {
		for x := 0; x < s.cols; x++ {
			to := s.index(y, x)
			from := s.index(y-n, x)
			if !s.cells[to].Protected {
				s.cells[to] = s.cells[from]
			}
		}
	}

	for y := top; y < top+n; y++ {
		for x := 0; x < s.cols; x++ {
			s.eraseCell(s.index(y, x), def)
		}
	}
}

// InsertLines implements CSI L: insert n blank lines at fromRow, shifting
// [fromRow,scrollBottom] down (the scroll bottom is the stationary edge;
// lines fall off the bottom of the region). Valid only when fromRow lies
// within [scrollTop,scrollBottom]; otherwise it is a no-op, per spec.
func (s *Screen) InsertLines(fromRow, n, scrollTop, scrollBottom int, def Color) {
	if n <= 0 || fromRow < scrollTop || fromRow > scrollBottom {
		return
	}
	if n > scrollBottom-fromRow+1 {
		n = scrollBottom - fromRow + 1
	}
	s.ScrollDownRegion(fromRow, scrollBottom, n, def)
}

// DeleteLines implements CSI M: delete n lines at fromRow, shifting
// [fromRow,scrollBottom] up (the scroll top side is stationary; blank rows
// appear at scrollBottom). Same validity rule as InsertLines.
func (s *Screen) DeleteLines(fromRow, n, scrollTop, scrollBottom int, def Color) {
	if n <= 0 || fromRow < scrollTop || fromRow > scrollBottom {
		return
	}
	if n > scrollBottom-fromRow+1 {
		n = scrollBottom - fromRow + 1
	}
	s.ScrollUpRegion(fromRow, scrollBottom, n, def)
}
