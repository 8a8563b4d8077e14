package headlessterm

import "testing"

func TestRISResetsScreenAndCursor(t *testing.T) {
	emu, _ := New(2, 5)
	emu.Feed([]byte("\x1b[3;3HHi\x1bc"))

	if emu.CursorRow() != 0 || emu.CursorCol() != 0 {
		t.Errorf("cursor after RIS = (%d,%d), want (0,0)", emu.CursorRow(), emu.CursorCol())
	}
	if got := emu.LineContent(1); got != "" {
		t.Errorf("line 1 after RIS = %q, want empty", got)
	}
}

func TestIndexMovesDownWithoutScrolling(t *testing.T) {
	emu, _ := New(2, 5)
	emu.Feed([]byte("\x1b[2;1H\x1bD"))

	if emu.CursorRow() != 1 {
		t.Errorf("ESC D at bottom row: cursor row = %d, want 1 (clamped, no scroll)", emu.CursorRow())
	}
	if emu.ScrollbackCount() != 0 {
		t.Errorf("ESC D must not scroll, got ScrollbackCount() = %d", emu.ScrollbackCount())
	}
}

func TestNextLineMovesToColumnZeroOfNextRow(t *testing.T) {
	emu, _ := New(3, 5)
	emu.Feed([]byte("\x1b[1;3H\x1bE"))

	if emu.CursorRow() != 1 || emu.CursorCol() != 0 {
		t.Errorf("cursor after ESC E = (%d,%d), want (1,0)", emu.CursorRow(), emu.CursorCol())
	}
}

func TestReverseIndexScrollsDownRegion(t *testing.T) {
	emu, _ := New(2, 3)
	emu.Feed([]byte("AA\r\nBB"))
	emu.Feed([]byte("\x1b[1;1H\x1bM"))

	if got := emu.LineContent(1); got != "AA" {
		t.Errorf("line 1 after reverse index = %q, want %q", got, "AA")
	}
	if got := emu.LineContent(0); got != "" {
		t.Errorf("line 0 after reverse index = %q, want blank", got)
	}
}

func TestDECIDReply(t *testing.T) {
	mw := &captureWriter{}
	emu, _ := New(5, 5, WithMasterWriter(mw))
	emu.Feed([]byte("\x1bZ"))

	if mw.String() != "\x1b[?6c" {
		t.Errorf("DECID reply = %q, want %q", mw.String(), "\x1b[?6c")
	}
}

func TestDECAlignmentFillsScreenWithE(t *testing.T) {
	emu, _ := New(2, 3)
	emu.Feed([]byte("\x1b#8"))

	if got := emu.LineContent(0); got != "EEE" {
		t.Errorf("line 0 after DECALN = %q, want %q", got, "EEE")
	}
	if emu.CursorRow() != 0 || emu.CursorCol() != 0 {
		t.Errorf("cursor after DECALN = (%d,%d), want (0,0)", emu.CursorRow(), emu.CursorCol())
	}
}

func TestOSCTerminatedByBELIsDiscarded(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("\x1b]0;some title\x07X"))

	if got := emu.LineContent(0); got != "X" {
		t.Errorf("line 0 = %q, want %q (OSC payload must not reach the grid)", got, "X")
	}
}

func TestOSCTerminatedBySTIsDiscarded(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("\x1b]0;title\x1b\\X"))

	if got := emu.LineContent(0); got != "X" {
		t.Errorf("line 0 = %q, want %q (ST-terminated OSC must not reach the grid)", got, "X")
	}
}

func TestOSCBufferCapIsNotExceeded(t *testing.T) {
	emu, _ := New(1, 10)
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	emu.Feed([]byte("\x1b]0;"))
	emu.Feed(long)
	emu.Feed([]byte("\x07Y"))

	if len(emu.oscBuf) > 63 {
		t.Errorf("OSC buffer holds %d bytes, want at most 63", len(emu.oscBuf))
	}
	if got := emu.LineContent(0); got != "Y" {
		t.Errorf("line 0 = %q, want %q", got, "Y")
	}
}

func TestG0DesignatorIsSwallowed(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("\x1b(BA"))

	if got := emu.LineContent(0); got != "A" {
		t.Errorf("line 0 = %q, want %q (G0 designator byte must not print)", got, "A")
	}
}

func TestCSIParamDefaultsToOneWhenAbsent(t *testing.T) {
	emu, _ := New(5, 5)
	emu.Feed([]byte("\x1b[3;3H\x1b[A"))

	if emu.CursorRow() != 1 {
		t.Errorf("CSI A with no parameter: cursor row = %d, want 1 (moved by 1)", emu.CursorRow())
	}
}

func TestCSIParamZeroIsClampedToOne(t *testing.T) {
	emu, _ := New(5, 5)
	emu.Feed([]byte("\x1b[3;3H\x1b[0A"))

	if emu.CursorRow() != 1 {
		t.Errorf("CSI 0 A: cursor row = %d, want 1 (0 clamped to 1, not 0)", emu.CursorRow())
	}
}

func TestCSIUnterminatedByInvalidFinalByteReturnsToGround(t *testing.T) {
	emu, _ := New(1, 10)
	emu.Feed([]byte("\x1b[3\x01X"))

	if got := emu.LineContent(0); got != "X" {
		t.Errorf("line 0 = %q, want %q (parser must recover to GROUND)", got, "X")
	}
}

func TestDECSTBMSetsScrollRegion(t *testing.T) {
	emu, _ := New(5, 3)
	emu.Feed([]byte("\x1b[2;3r"))
	emu.Feed([]byte("\x1b[5;1HAA\r\nBB\r\nCC"))

	if emu.ScrollbackCount() != 0 {
		t.Errorf("line feeds on row 5, below the 2-3 region, must not scroll, got ScrollbackCount() = %d", emu.ScrollbackCount())
	}
}

func TestDECSTBMOutOfRangeResetsToFullScreen(t *testing.T) {
	emu, _ := New(5, 3)
	emu.Feed([]byte("\x1b[2;3r"))
	emu.Feed([]byte("\x1b[9;1r"))
	emu.Feed([]byte("\x1b[5;1H\r\n"))

	if emu.ScrollbackCount() != 1 {
		t.Errorf("after an out-of-range DECSTBM the region should reset to the full screen, got ScrollbackCount() = %d", emu.ScrollbackCount())
	}
}

func TestDECSTBMInvertedRangeResetsToFullScreen(t *testing.T) {
	emu, _ := New(5, 3)
	emu.Feed([]byte("\x1b[4;2r"))
	emu.Feed([]byte("\x1b[5;1H\r\n"))

	if emu.ScrollbackCount() != 1 {
		t.Errorf("CSI 4;2r (p1>p2) must reset to the full screen, got ScrollbackCount() = %d", emu.ScrollbackCount())
	}
}

func TestPrimaryDeviceAttributesReply(t *testing.T) {
	mw := &captureWriter{}
	emu, _ := New(5, 5, WithMasterWriter(mw))
	emu.Feed([]byte("\x1b[c"))

	if mw.String() != "\x1b[?1;0c" {
		t.Errorf("DA reply = %q, want %q", mw.String(), "\x1b[?1;0c")
	}
}

func TestSecondaryDeviceAttributesReply(t *testing.T) {
	mw := &captureWriter{}
	emu, _ := New(5, 5, WithMasterWriter(mw))
	emu.Feed([]byte("\x1b[>c"))

	if mw.String() != "\x1b[>0;0;0c" {
		t.Errorf("secondary DA reply = %q, want %q", mw.String(), "\x1b[>0;0;0c")
	}
}

func TestWindowOpsReportWindowState(t *testing.T) {
	mw := &captureWriter{}
	emu, _ := New(5, 5, WithMasterWriter(mw))
	emu.Feed([]byte("\x1b[11t"))

	if mw.String() != "\x1b[1t" {
		t.Errorf("window-ops reply = %q, want %q", mw.String(), "\x1b[1t")
	}
}
