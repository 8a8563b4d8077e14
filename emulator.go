package headlessterm

import (
	"sync"
)

const (
	// DEFAULT_ROWS is a conventional row count for callers that need a
	// default; New does not apply it and requires an explicit positive size.
	DEFAULT_ROWS = 24
	// DEFAULT_COLS is the default column count, mirrored from DEFAULT_ROWS.
	DEFAULT_COLS = 80
)

// parseState is the parser's current state. It lives on Emulator, never at
// package scope, so that two Emulators never share parse state.
type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateCSI
	stateOSC
	stateG0
	stateG1
	stateHash
)

// Emulator is a headless VT220-ish terminal core: a byte-stream parser, two
// screens (main with scrollback, alternate without), a cursor, and a key
// encoder, wired to a host through MasterWriter and RenderObserver. All
// exported methods are safe for concurrent use via an internal mutex.
type Emulator struct {
	mu sync.Mutex

	rows, cols int

	main, alternate, active *Screen

	savedCursor     SavedCursor
	hasSavedCursor  bool
	defaultColor    Color

	scrollTop, scrollBottom int

	scrollback         *Scrollback
	externalScrollback ScrollbackProvider

	master   MasterWriter
	observer RenderObserver

	// parser state, persisted byte-to-byte across Feed calls
	state       parseState
	csiPrivate  byte // '?' or 0
	csiParamBuf []byte
	oscBuf      []byte
}

// Option configures an Emulator during construction.
type Option func(*Emulator)

// WithMasterWriter sets the writer that receives bytes generated in
// response to input (key encoding, device/status reports). Defaults to a
// discarding no-op.
func WithMasterWriter(w MasterWriter) Option {
	return func(e *Emulator) {
		e.master = w
	}
}

// WithRenderObserver sets the callback collaborator notified of screen
// mutations and cursor moves. Defaults to a no-op.
func WithRenderObserver(o RenderObserver) Option {
	return func(e *Emulator) {
		e.observer = o
	}
}

// WithScrollbackProvider replaces the default fixed-capacity ring with a
// caller-supplied implementation (e.g. disk-backed, or a different size).
func WithScrollbackProvider(sb ScrollbackProvider) Option {
	return func(e *Emulator) {
		if s, ok := sb.(*Scrollback); ok {
			e.scrollback = s
		} else {
			e.scrollback = nil
			e.externalScrollback = sb
		}
	}
}

// New constructs an Emulator with the given geometry. rows and cols must
// both be positive; an invalid geometry is a construction failure that is
// fatal and surfaced to the caller, not silently clamped to a default.
func New(rows, cols int, opts ...Option) (*Emulator, error) {
	if rows < 1 || cols < 1 {
		return nil, &GeometryError{Rows: rows, Cols: cols}
	}

	e := &Emulator{
		rows:         rows,
		cols:         cols,
		defaultColor: DefaultColor,
		scrollTop:    0,
		scrollBottom: rows - 1,
		master:       NoopMaster{},
		observer:     NoopObserver{},
	}

	e.main = newScreen(rows, cols, e.defaultColor)
	e.alternate = newScreen(rows, cols, e.defaultColor)
	e.active = e.main
	e.scrollback = NewScrollback(SCROLLBACK_LINES, cols, e.defaultColor)

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// GeometryError reports an invalid construction geometry.
type GeometryError struct {
	Rows, Cols int
}

func (err *GeometryError) Error() string {
	return "headlessterm: invalid geometry " + itoa(err.Rows) + "x" + itoa(err.Cols)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Close releases no resources (the core holds none) but satisfies the
// io.Closer-shaped lifecycle hosts commonly expect from long-lived
// collaborators.
func (e *Emulator) Close() error { return nil }

// Rows returns the fixed row count.
func (e *Emulator) Rows() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rows
}

// Cols returns the fixed column count.
func (e *Emulator) Cols() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cols
}

// CursorRow returns the active screen's cursor row.
func (e *Emulator) CursorRow() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active.cursorRow
}

// CursorCol returns the active screen's cursor column.
func (e *Emulator) CursorCol() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active.cursorCol
}

// Cell returns the cell at (row, col) of the effective row under the
// current scroll offset (see RowData).
func (e *Emulator) Cell(row, col int) Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.effectiveRowLocked(row)
	if r == nil || col < 0 || col >= e.cols {
		return Cell{}
	}
	return r[col]
}

// DefaultColor returns the color used to fill newly exposed or cleared
// cells.
func (e *Emulator) DefaultColor() Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultColor
}

// IsAlternateScreen reports whether the alternate screen is active.
func (e *Emulator) IsAlternateScreen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active == e.alternate
}

// ScrollbackCount returns the number of lines currently held in scrollback.
func (e *Emulator) ScrollbackCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.externalScrollback != nil {
		return e.externalScrollback.Len()
	}
	return e.scrollback.Len()
}

// ScrollbackLine returns scrollback line index (0 == oldest), or nil if out
// of range.
func (e *Emulator) ScrollbackLine(index int) []Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrollbackLineLocked(index)
}

func (e *Emulator) scrollbackLenLocked() int {
	if e.externalScrollback != nil {
		return e.externalScrollback.Len()
	}
	return e.scrollback.Len()
}

func (e *Emulator) scrollbackLineLocked(index int) []Cell {
	if e.externalScrollback != nil {
		return e.externalScrollback.Line(index)
	}
	return e.scrollback.Line(index)
}

func (e *Emulator) scrollOffsetLocked() int {
	if e.externalScrollback != nil {
		return 0
	}
	return e.scrollback.Offset()
}

func (e *Emulator) resetScrollOffsetLocked() {
	if e.externalScrollback != nil {
		return
	}
	if e.scrollback.Offset() != 0 {
		e.scrollback.SetOffset(0)
	}
}

// effectiveRowLocked returns the row seen at active-screen row r once the
// current scroll offset is applied: scrolling into history transparently
// substitutes scrollback lines for the top of the screen, exactly as if the
// whole buffer (history + live rows) had been scrolled as one past the
// viewport. r outside [0,rows) returns nil.
func (e *Emulator) effectiveRowLocked(r int) []Cell {
	if r < 0 || r >= e.rows {
		return nil
	}
	offset := e.scrollOffsetLocked()
	if offset == 0 {
		row := make([]Cell, e.cols)
		copy(row, e.active.cells[r*e.cols:r*e.cols+e.cols])
		return row
	}

	count := e.scrollbackLenLocked()
	s := count - offset + r
	if s >= 0 && s < count {
		line := e.scrollbackLineLocked(s)
		if line != nil {
			row := make([]Cell, e.cols)
			copy(row, line)
			return row
		}
	}

	live := r - offset
	if live < 0 || live >= e.rows {
		return make([]Cell, e.cols)
	}
	row := make([]Cell, e.cols)
	copy(row, e.active.cells[live*e.cols:live*e.cols+e.cols])
	return row
}

// Feed parses data and applies every resulting state transition. It
// implements io.Writer so an Emulator can be used directly as a command's
// Stdout. Any non-empty feed cancels a scrollback view in progress, exactly
// like typing while scrolled back snaps the terminal to live output.
func (e *Emulator) Feed(data []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, b := range data {
		e.feedByte(b)
	}
	if len(data) > 0 {
		e.resetScrollOffsetLocked()
	}
	return len(data), nil
}

// Write is an alias for Feed, satisfying io.Writer explicitly.
func (e *Emulator) Write(data []byte) (int, error) {
	return e.Feed(data)
}

// SendKey encodes a semantic key press (with modifiers) and writes the
// resulting bytes to the master writer.
func (e *Emulator) SendKey(mod KeyModifier, key Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sendKey(mod, key)
}

// Scroll sets the scrollback view offset (0 == live, increasing moves into
// history). Clamped to [0, ScrollbackCount()].
func (e *Emulator) Scroll(offset int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.externalScrollback != nil {
		return
	}
	e.scrollback.SetOffset(offset)
}

// ScrollOffset returns the current scrollback view offset.
func (e *Emulator) ScrollOffset() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.externalScrollback != nil {
		return 0
	}
	return e.scrollback.Offset()
}

// RowData returns a copy of row y's cells, blended with scrollback under the
// current scroll offset (0 == the live active screen). y outside [0,rows)
// returns nil.
func (e *Emulator) RowData(y int) []Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effectiveRowLocked(y)
}

// LineContent returns row's text with trailing spaces trimmed.
func (e *Emulator) LineContent(row int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lineContentLocked(row)
}

func (e *Emulator) lineContentLocked(row int) string {
	cells := e.effectiveRowLocked(row)
	if cells == nil {
		return ""
	}
	end := len(cells)
	for end > 0 && cells[end-1].Char == ' ' {
		end--
	}
	buf := make([]byte, end)
	for i := 0; i < end; i++ {
		c := cells[i].Char
		if c == 0 {
			c = ' '
		}
		buf[i] = c
	}
	return string(buf)
}

// String renders every row, trailing blank rows omitted, joined by "\n".
func (e *Emulator) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines := make([]string, e.rows)
	last := -1
	for row := 0; row < e.rows; row++ {
		lines[row] = e.lineContentLocked(row)
		if lines[row] != "" {
			last = row
		}
	}
	if last < 0 {
		return ""
	}

	out := lines[0]
	for i := 1; i <= last; i++ {
		out += "\n" + lines[i]
	}
	return out
}
