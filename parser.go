package headlessterm

import "strconv"

// feedByte advances the parser state machine by exactly one input byte.
// Must be called with e.mu held.
func (e *Emulator) feedByte(c byte) {
	switch e.state {
	case stateGround:
		e.feedGround(c)
	case stateEscape:
		e.feedEscape(c)
	case stateCSI:
		e.feedCSI(c)
	case stateOSC:
		e.feedOSC(c)
	case stateG0, stateG1:
		// A single designator byte (e.g. 'B' ASCII, '0' line-drawing) is
		// swallowed unconditionally; charset translation is out of scope.
		e.state = stateGround
	case stateHash:
		e.feedHash(c)
	}
}

func (e *Emulator) feedGround(c byte) {
	if c == 0x1b {
		e.state = stateEscape
		return
	}
	if isGraphicOrSpace(c) || c == '\n' || c == '\r' || c == '\b' || c == '\t' {
		e.putCharacterAndCursor(c)
	}
}

func (e *Emulator) feedEscape(c byte) {
	switch c {
	case '[':
		e.state = stateCSI
		e.csiPrivate = 0
		e.csiParamBuf = e.csiParamBuf[:0]
	case ']':
		e.state = stateOSC
		e.oscBuf = e.oscBuf[:0]
	case '(':
		e.state = stateG0
	case ')':
		e.state = stateG1
	case '#':
		e.state = stateHash
	case '7':
		e.savedCursor = SavedCursor{Row: e.active.cursorRow, Col: e.active.cursorCol}
		e.hasSavedCursor = true
		e.state = stateGround
	case '8':
		e.moveCursor(e.savedCursor.Row, e.savedCursor.Col)
		e.state = stateGround
	case 'c':
		e.active.Clear(e.defaultColor)
		e.moveCursor(0, 0)
		e.state = stateGround
	case 'D':
		e.moveCursorDiff(1, 0)
		e.state = stateGround
	case 'E':
		e.moveCursor(e.active.cursorRow+1, 0)
		e.state = stateGround
	case 'M':
		e.active.ScrollDownRegion(e.scrollTop, e.scrollBottom, 1, e.defaultColor)
		e.observer.Refresh()
		e.state = stateGround
	case 'Z':
		e.master.Write([]byte("\x1b[?6c"))
		e.state = stateGround
	case '\\':
		e.state = stateGround
	default:
		e.state = stateGround
	}
}

func (e *Emulator) feedOSC(c byte) {
	switch {
	case c == '\a':
		e.state = stateGround
	case c == 0x1b:
		// Tolerate ST (ESC \) as the OSC terminator: fall back into ESC
		// state, which absorbs the following '\\' and returns to ground.
		e.state = stateEscape
	case len(e.oscBuf) < 63:
		e.oscBuf = append(e.oscBuf, c)
	}
}

func (e *Emulator) feedHash(c byte) {
	if c == '8' {
		for i := range e.active.cells {
			e.active.cells[i] = Cell{Char: 'E', Color: e.defaultColor}
		}
		e.moveCursor(0, 0)
	}
	e.state = stateGround
}

func (e *Emulator) feedCSI(c byte) {
	if c == '?' || c == '>' {
		e.csiPrivate = c
		return
	}

	if (c >= '0' && c <= '9') || c == ';' {
		e.csiParamBuf = append(e.csiParamBuf, c)
		return
	}

	if c < '@' || c > '~' {
		e.state = stateGround
		e.csiParamBuf = e.csiParamBuf[:0]
		return
	}

	final := c
	params := string(e.csiParamBuf)
	p1, p2 := 1, 1
	if idx := indexByte(e.csiParamBuf, ';'); idx >= 0 {
		p1 = atoiOr(params[:idx], 1)
		p2 = atoiOr(params[idx+1:], 1)
	} else if params != "" {
		p1 = atoiOr(params, 1)
	}

	e.dispatchCSI(final, params, p1, p2, e.csiPrivate != 0)

	e.state = stateGround
	e.csiParamBuf = e.csiParamBuf[:0]
	e.csiPrivate = 0
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// dispatchCSI applies one fully-collected CSI sequence. p1/p2 default to 1
// when absent (ozterm.c initializes p1=p2=1 before parsing, so an absent
// parameter means 1, not atoi("")'s 0). Only a present-but-zero parameter,
// e.g. CSI 0 A, yields 0: cursor motion, @/P, L/M and S/T clamp it back to
// 1, H/f/d/G floor the resulting position at 0, and r treats it as out of
// range.
func (e *Emulator) dispatchCSI(final byte, params string, p1, p2 int, private bool) {
	switch final {
	case 'A':
		e.moveCursorDiff(-clampPositive(p1), 0)
	case 'B':
		e.moveCursorDiff(clampPositive(p1), 0)
	case 'C':
		e.moveCursorDiff(0, clampPositive(p1))
	case 'D':
		e.moveCursorDiff(0, -clampPositive(p1))
	case 'H', 'f':
		row, col := 0, 0
		if p1 > 0 {
			row = p1 - 1
		}
		if p2 > 0 {
			col = p2 - 1
		}
		e.moveCursor(row, col)
	case 'd':
		row := 0
		if p1 > 0 {
			row = p1 - 1
		}
		e.moveCursor(row, e.active.cursorCol)
	case 'G':
		col := 0
		if p1 > 0 {
			col = p1 - 1
		}
		e.moveCursor(e.active.cursorRow, col)
	case 'n':
		if params == "6" {
			reply := "\x1b[" + itoa(e.active.cursorRow+1) + ";" + itoa(e.active.cursorCol+1) + "R"
			e.master.Write([]byte(reply))
		}
	case 'J':
		e.active.EraseScreen(EraseMode(atoiOr(params, 0)), e.defaultColor)
		e.observer.Refresh()
	case 'K':
		e.active.EraseLine(EraseMode(atoiOr(params, 0)), e.defaultColor)
		e.observer.Refresh()
	case 'm':
		e.dispatchSGR(params)
	case 'h':
		e.dispatchMode(private, params, true)
	case 'l':
		e.dispatchMode(private, params, false)
	case 't':
		switch {
		case params == "11":
			e.master.Write([]byte("\x1b[1t"))
		case hasPrefix(params, "22;"), hasPrefix(params, "23;"):
			// Title/icon-name stack operations: accepted, ignored.
		}
	case 'c':
		if private {
			e.master.Write([]byte("\x1b[>0;0;0c"))
		} else if params == "0" || params == "" {
			e.master.Write([]byte("\x1b[?1;0c"))
		}
	case '@':
		e.active.InsertChars(clampPositive(p1), e.defaultColor)
	case 'P':
		e.active.DeleteChars(clampPositive(p1), e.defaultColor)
	case 'r':
		if p1 >= 1 && p2 >= 1 && p1 <= p2 && p1 <= e.rows && p2 <= e.rows {
			e.scrollTop = p1 - 1
			e.scrollBottom = p2 - 1
		} else {
			e.scrollTop = 0
			e.scrollBottom = e.rows - 1
		}
	case 'L':
		e.active.InsertLines(e.active.cursorRow, clampPositive(p1), e.scrollTop, e.scrollBottom, e.defaultColor)
		e.observer.Refresh()
	case 'M':
		e.active.DeleteLines(e.active.cursorRow, clampPositive(p1), e.scrollTop, e.scrollBottom, e.defaultColor)
		e.observer.Refresh()
	case 'S':
		e.active.ScrollUpRegion(e.scrollTop, e.scrollBottom, clampPositive(p1), e.defaultColor)
		e.observer.Refresh()
	case 'T':
		e.active.ScrollDownRegion(e.scrollTop, e.scrollBottom, clampPositive(p1), e.defaultColor)
		e.observer.Refresh()
	}
}

func clampPositive(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// dispatchMode handles DECSET/DECRST (CSI ? Pm h / CSI ? Pm l). Only the
// alt-screen switch has an observable effect; the rest (bracketed paste,
// cursor visibility/blink, autowrap) are accepted and otherwise inert,
// matching ozterm.c's commented-out bodies for those parameters.
func (e *Emulator) dispatchMode(private bool, params string, set bool) {
	if !private {
		return
	}
	switch params {
	case "1049":
		if set {
			e.switchToAlternateScreen()
		} else {
			e.restoreMainScreen()
		}
	case "2004", "25", "12", "7":
		// Accepted, no observable effect in this core.
	}
}

func (e *Emulator) switchToAlternateScreen() {
	e.active = e.alternate
	e.active.Clear(e.defaultColor)
	e.observer.Refresh()
}

func (e *Emulator) restoreMainScreen() {
	e.active = e.main
	e.observer.Refresh()
}

// dispatchSGR applies one SGR parameter list. Only 0 (reset) and 8
// (protect) have an effect; 1, 22, 31 and anything else are recognized as
// valid-but-inert, matching ozterm.c's SGR switch (whose bold/color cases
// are commented out in the original).
func (e *Emulator) dispatchSGR(params string) {
	if params == "" {
		e.active.attrProtected = false
		return
	}

	start := 0
	for i := 0; i <= len(params); i++ {
		if i == len(params) || params[i] == ';' {
			val := atoiOr(params[start:i], 0)
			switch val {
			case 0:
				e.active.attrProtected = false
			case 8:
				e.active.attrProtected = true
			}
			start = i + 1
		}
	}
}
