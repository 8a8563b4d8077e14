package headlessterm

import "testing"

func TestTabExpansion(t *testing.T) {
	emu, _ := New(1, 20)
	emu.Feed([]byte("A\tB"))

	if got := emu.CursorCol(); got != 9 {
		t.Errorf("cursor col after A\\tB = %d, want 9", got)
	}
	if got := emu.Cell(0, 8).Char; got != 'B' {
		t.Errorf("cell at col 8 = %q, want 'B'", got)
	}
}

func TestTabOverflowingLastRowScrollsExactlyOnce(t *testing.T) {
	emu, _ := New(1, 5)
	emu.Feed([]byte("\t"))

	if got := emu.CursorCol(); got < 0 || got >= emu.Cols() {
		t.Errorf("cursor col = %d, want in [0,%d)", got, emu.Cols())
	}
	if emu.ScrollbackCount() != 1 {
		t.Errorf("ScrollbackCount() = %d, want 1", emu.ScrollbackCount())
	}
}

// TestWritingExactlyColumnCountBytesOnLastRowCommitsScrollback is the literal
// last-row/last-column boundary case: filling the last cell of the bottom
// scroll-region row wraps AND commits exactly one scrollback entry in the
// same write, with no further input needed.
func TestWritingExactlyColumnCountBytesOnLastRowCommitsScrollback(t *testing.T) {
	emu, _ := New(1, 5)
	emu.Feed([]byte("ABCDE"))

	if emu.ScrollbackCount() != 1 {
		t.Fatalf("ScrollbackCount() = %d, want 1", emu.ScrollbackCount())
	}
	line := emu.ScrollbackLine(0)
	got := make([]byte, len(line))
	for i, c := range line {
		got[i] = c.Char
	}
	if string(got) != "ABCDE" {
		t.Errorf("scrollback line 0 = %q, want %q", got, "ABCDE")
	}
	if emu.CursorRow() != 0 || emu.CursorCol() != 0 {
		t.Errorf("cursor after wrap = (%d,%d), want (0,0)", emu.CursorRow(), emu.CursorCol())
	}
	if got := emu.LineContent(0); got != "" {
		t.Errorf("line 0 after wrap = %q, want blank", got)
	}
}

func TestWriteAtLastColumnAdvancesRowImmediately(t *testing.T) {
	emu, _ := New(2, 3)
	emu.Feed([]byte("ABC"))

	if emu.CursorRow() != 1 || emu.CursorCol() != 0 {
		t.Errorf("after filling the row cursor = (%d,%d), want (1,0) — wrap applies eagerly", emu.CursorRow(), emu.CursorCol())
	}

	emu.Feed([]byte("D"))
	if emu.CursorRow() != 1 || emu.CursorCol() != 1 {
		t.Errorf("after the next char cursor = (%d,%d), want (1,1)", emu.CursorRow(), emu.CursorCol())
	}
	if got := emu.LineContent(1); got != "D" {
		t.Errorf("line 1 = %q, want %q", got, "D")
	}
}

func TestBackspaceMovesCursorLeft(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("AB\b"))

	if got := emu.CursorCol(); got != 1 {
		t.Errorf("cursor col = %d, want 1", got)
	}
}

func TestBackspaceAtColumnZeroIsNoop(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("\b"))

	if got := emu.CursorCol(); got != 0 {
		t.Errorf("cursor col = %d, want 0", got)
	}
}

func TestMoveCursorNotifiesObserver(t *testing.T) {
	obs := &moveRecordingObserver{}
	emu, _ := New(5, 5, WithRenderObserver(obs))
	emu.Feed([]byte("\x1b[3;3H"))

	if len(obs.moves) != 1 {
		t.Fatalf("expected 1 MoveCursor call, got %d", len(obs.moves))
	}
	mv := obs.moves[0]
	if mv.newRow != 2 || mv.newCol != 2 {
		t.Errorf("moved to (%d,%d), want (2,2)", mv.newRow, mv.newCol)
	}
}

type moveCall struct {
	oldRow, oldCol, newRow, newCol int
}

type moveRecordingObserver struct {
	NoopObserver
	moves []moveCall
}

func (m *moveRecordingObserver) MoveCursor(oldRow, oldCol, newRow, newCol int) {
	m.moves = append(m.moves, moveCall{oldRow, oldCol, newRow, newCol})
}
