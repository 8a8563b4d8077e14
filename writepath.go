package headlessterm

// moveCursor clamps (row,col) to the active screen and, if the position
// actually changes, notifies the render observer with both the old and new
// position before updating the screen's cursor fields.
func (e *Emulator) moveCursor(row, col int) {
	if row >= e.rows {
		row = e.rows - 1
	}
	if row < 0 {
		row = 0
	}
	if col >= e.cols {
		col = e.cols - 1
	}
	if col < 0 {
		col = 0
	}

	oldRow, oldCol := e.active.cursorRow, e.active.cursorCol
	if oldRow == row && oldCol == col {
		return
	}

	e.active.cursorRow, e.active.cursorCol = row, col
	e.observer.MoveCursor(oldRow, oldCol, row, col)
}

// moveCursorDiff adds (dr,dc) to the cursor position, then clamps.
func (e *Emulator) moveCursorDiff(dr, dc int) {
	e.moveCursor(e.active.cursorRow+dr, e.active.cursorCol+dc)
}

// scrollUp is the history-committing scroll: for each of n rows about to
// fall off the top of the scroll region, copy it verbatim (including
// Protected) into scrollback, then shift the region up.
//
// Alternate screen never contributes to scrollback (the alternate buffer's
// Emulator.scrollback field is shared, but line-feed at the alternate's
// bottom never reaches ANSI operations that would need scrollback on most
// real applications; this core still honors the spec invariant explicitly
// by routing scrollback writes only while main is active).
func (e *Emulator) scrollUp(n int) {
	if n <= 0 {
		n = 1
	}
	if n > e.scrollBottom-e.scrollTop+1 {
		n = e.scrollBottom - e.scrollTop + 1
	}

	if e.active == e.main {
		for l := 0; l < n; l++ {
			row := e.scrollTop + l
			line := e.active.cells[row*e.cols : row*e.cols+e.cols]
			if e.externalScrollback != nil {
				e.externalScrollback.Push(append([]Cell(nil), line...))
			} else {
				e.scrollback.Push(line)
			}
		}
	}

	e.active.ScrollUpRegion(e.scrollTop, e.scrollBottom, n, e.defaultColor)
	e.observer.Refresh()
}

// putCharacterAndCursor implements the printable write path: control
// characters move the cursor (through moveCursor/moveCursorDiff, so the
// render observer always sees them), graphic/space characters are written
// at the cursor position and the cursor advances by one. Tab is not a
// cursor jump: it writes a run of space characters one at a time through
// this same path, exactly like ozterm_put_character_and_cursor's recursive
// expansion — so a tab over a protected cell overwrites that cell, the
// same as any other printable write (only erase, shift and scroll
// operations honor Protected).
//
// Auto-wrap is eager: the write that lands on the last column of a row
// performs the row-advance (or scroll_up(1), at the bottom of the scroll
// region) immediately, in the same call, rather than deferring it to the
// next character. Filling the last row's last column therefore commits
// exactly one scrollback entry on its own, with no further input required.
func (e *Emulator) putCharacterAndCursor(c byte) {
	switch c {
	case '\n':
		if e.active.cursorRow == e.scrollBottom {
			e.scrollUp(1)
		} else {
			e.moveCursor(e.active.cursorRow+1, e.active.cursorCol)
		}
	case '\r':
		e.moveCursor(e.active.cursorRow, 0)
	case '\b':
		if e.active.cursorCol > 0 {
			e.moveCursorDiff(0, -1)
		}
	case '\t':
		spaces := 8 - (e.active.cursorCol % 8)
		for i := 0; i < spaces; i++ {
			e.putCharacterAndCursor(' ')
		}
	default:
		if isGraphicOrSpace(c) {
			cell := Cell{
				Char:      c,
				Color:     e.defaultColor,
				Protected: e.active.attrProtected,
			}
			e.active.setCell(e.active.cursorRow, e.active.cursorCol, cell)
			e.observer.SetCharacter(e.active.cursorRow, e.active.cursorCol, cell)

			if e.active.cursorCol == e.cols-1 {
				if e.active.cursorRow == e.scrollBottom {
					e.scrollUp(1)
					e.active.cursorCol = 0
				} else {
					e.moveCursor(e.active.cursorRow+1, 0)
				}
			} else {
				e.moveCursor(e.active.cursorRow, e.active.cursorCol+1)
			}
		}
	}
}

func isGraphicOrSpace(c byte) bool {
	return (c >= 0x21 && c <= 0x7E) || c == ' '
}
