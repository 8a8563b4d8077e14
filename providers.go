package headlessterm

import "io"

// MasterWriter receives reply bytes the core must send back toward the PTY
// master: device-attribute replies, cursor-position reports, and the encoded
// output of SendKey. Typically an io.Writer connected to the PTY's input.
type MasterWriter = io.Writer

// NoopMaster discards all reply bytes.
type NoopMaster struct{}

func (NoopMaster) Write(p []byte) (int, error) { return len(p), nil }

// RenderObserver is the renderer-facing capability set: one interface
// implemented by the host instead of separate function-pointer slots plus an
// opaque user-data pointer — a Go closure or a host struct already carries
// whatever context it needs.
type RenderObserver interface {
	// Refresh indicates the renderer should repaint the visible screen.
	Refresh()
	// SetCharacter indicates a single cell changed.
	SetCharacter(row, col int, cell Cell)
	// MoveCursor indicates the cursor moved.
	MoveCursor(oldRow, oldCol, newRow, newCol int)
}

// NoopObserver ignores all renderer notifications.
type NoopObserver struct{}

func (NoopObserver) Refresh()                                     {}
func (NoopObserver) SetCharacter(row, col int, cell Cell)          {}
func (NoopObserver) MoveCursor(oldRow, oldCol, newRow, newCol int) {}

var _ RenderObserver = NoopObserver{}
var _ MasterWriter = NoopMaster{}
