// Package headlessterm provides a headless ANSI/VT terminal emulator core.
//
// It parses a byte stream of 7-bit ASCII text and a narrow subset of VT100/
// xterm escape sequences, mutates an in-memory character grid accordingly,
// and notifies a host-supplied observer of the result. There is no display,
// no PTY, and no Unicode beyond the printable ASCII range — those concerns
// belong to whatever sits on either side of an Emulator.
//
// # Quick start
//
//	emu, err := headlessterm.New(24, 80,
//	    headlessterm.WithMasterWriter(ptyWriter),
//	    headlessterm.WithRenderObserver(myObserver),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	emu.Feed([]byte("\x1b[32mHello\x1b[0m"))
//	fmt.Println(emu.String())
//
// # Architecture
//
//   - [Emulator]: owns the parser state, the two screens, and the
//     collaborator hooks; implements [io.Writer] via Feed/Write.
//   - [Screen]: a fixed-geometry grid of [Cell]; an Emulator owns exactly
//     two (main and alternate), switching between them on CSI ?1049h/l.
//   - [Cell]: one byte, a packed foreground/background [Color], and a
//     protection flag consulted by the erase, shift and scroll operations
//     (Clear, DEC alignment and printable writes overwrite it).
//   - [Scrollback]: a fixed-capacity ring of rows scrolled off the top of
//     the main screen.
//
// # Collaborators
//
// Two interfaces connect the core to a host:
//
//   - [MasterWriter] receives bytes generated in response to input —
//     key encoding, device-attribute and cursor-position replies.
//   - [RenderObserver] is notified of cell writes, cursor moves, and
//     full-screen refreshes, so a host can paint incrementally instead of
//     rescanning the grid after every Feed call.
//
// Both default to no-ops ([NoopMaster], [NoopObserver]) when not supplied
// via [WithMasterWriter] / [WithRenderObserver], so an Emulator can be
// driven purely for its text content (see [Emulator.String]).
//
// # Protected cells
//
// SGR 8 marks subsequently written cells as protected; SGR 0 clears it.
// Character-shift operations (CSI @ / CSI P) skip over protected cells
// while hunting for a source to shift in; line and region scrolls only
// check the destination, copying a protected source through unchanged —
// this asymmetry is inherited from the reference implementation and is
// intentional, not an oversight.
//
// # Key encoding
//
// [Emulator.SendKey] turns a semantic [Key] plus [KeyModifier] into the
// wire bytes an application expects to read back — CSI sequences for
// cursor/function/navigation keys, SS3 for unmodified F1-F4, and literal
// control bytes for Return/Backspace/Escape/Tab. [Emulator.SendRune]
// handles graphic keys, applying the Ctrl+letter XOR-0x40 encoding when
// the modifier is exactly [KeyModCtrl].
//
// # Non-goals
//
// Unicode beyond 7-bit ASCII, 256-color/truecolor SGR, mouse reporting,
// bracketed-paste interpretation, line-drawing charset translation, bidi
// text, and resize/reflow are all out of scope.
package headlessterm
