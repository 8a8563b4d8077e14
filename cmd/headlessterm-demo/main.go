// Command headlessterm-demo feeds a short script of ANSI sequences and one
// key event through an Emulator and prints the resulting screen content and
// cursor position. It has no PTY of its own: a stdoutMaster stands in for the
// real master, printing whatever bytes the emulator would otherwise have
// written back to a shell.
package main

import (
	"fmt"

	headlessterm "github.com/ozkl/headlessterm"
)

type stdoutMaster struct{}

func (stdoutMaster) Write(p []byte) (int, error) {
	fmt.Printf("\n=== bytes the shell would receive ===\n%q\n", p)
	return len(p), nil
}

func main() {
	term, err := headlessterm.New(24, 80, headlessterm.WithMasterWriter(stdoutMaster{}))
	if err != nil {
		panic(err)
	}

	term.Write([]byte("\x1b]0;My Terminal Title\x07")) // set window title (discarded)
	term.Write([]byte("\x1b[31mHello "))                // SGR 31 (red): accepted, no color effect
	term.Write([]byte("\x1b[32mWorld"))                 // SGR 32 (green): accepted, no color effect
	term.Write([]byte("\x1b[0m!\r\n"))                  // reset and newline
	term.Write([]byte("\x1b[1;4mBold and Underlined\x1b[0m\r\n"))
	term.Write([]byte("Normal text\r\n"))
	term.Write([]byte("\x1b[2J\x1b[H")) // clear screen, home cursor
	term.Write([]byte("After clear"))

	fmt.Println("=== Terminal Content ===")
	fmt.Println(term.String())

	fmt.Printf("Cursor position: row=%d, col=%d\n", term.CursorRow(), term.CursorCol())

	// Roundtrip an arrow key through the encoder straight to the master.
	term.SendKey(headlessterm.KeyModCtrl, headlessterm.KeyRight)
}
