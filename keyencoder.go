package headlessterm

// KeyModifier is a bitmask of modifier keys held while a Key is sent.
type KeyModifier uint8

const (
	KeyModNone       KeyModifier = 0
	KeyModLeftShift  KeyModifier = 1 << 0
	KeyModRightShift KeyModifier = 1 << 1
	KeyModAlt        KeyModifier = 1 << 2
	KeyModCtrl       KeyModifier = 1 << 3
)

// Key identifies a semantic key press. Graphic keys (letters, digits,
// punctuation) are sent as their own byte value, not through this enum.
type Key uint8

const (
	KeyNone Key = iota
	KeyReturn
	KeyBackspace
	KeyEscape
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// writeCSISequence formats "\033[<final>" when code==1 and there is no
// modifier, "\033[<code><final>" for an unmodified code, or
// "\033[<code>;<mod><final>" once a modifier is present — matching
// write_csi_sequence's three-way format exactly (including the
// code==1/no-modifier shorthand used by cursor keys and Home/End).
func writeCSISequence(code int, final byte, modValue int) []byte {
	if modValue <= 1 {
		if code == 1 {
			return []byte{0x1b, '[', final}
		}
		return append([]byte{0x1b, '['}, append([]byte(itoa(code)), final)...)
	}
	buf := []byte{0x1b, '['}
	buf = append(buf, []byte(itoa(code))...)
	buf = append(buf, ';')
	buf = append(buf, []byte(itoa(modValue))...)
	buf = append(buf, final)
	return buf
}

// sendKey encodes key under modifier and writes the result to the master
// writer. Must be called with e.mu held.
func (e *Emulator) sendKey(mod KeyModifier, key Key) {
	modValue := 1
	if mod&(KeyModLeftShift|KeyModRightShift) != 0 {
		modValue += 1
	}
	if mod&KeyModAlt != 0 {
		modValue += 2
	}
	if mod&KeyModCtrl != 0 {
		modValue += 4
	}

	var seq []byte

	switch key {
	case KeyF1, KeyF2, KeyF3, KeyF4:
		base := byte('P') + byte(key-KeyF1)
		if modValue == 1 {
			seq = []byte{0x1b, 'O', base}
		} else {
			seq = writeCSISequence(1, base, modValue)
		}
	case KeyF5:
		seq = writeCSISequence(15, '~', modValue)
	case KeyF6:
		seq = writeCSISequence(17, '~', modValue)
	case KeyF7:
		seq = writeCSISequence(18, '~', modValue)
	case KeyF8:
		seq = writeCSISequence(19, '~', modValue)
	case KeyF9:
		seq = writeCSISequence(20, '~', modValue)
	case KeyF10:
		seq = writeCSISequence(21, '~', modValue)
	case KeyF11:
		seq = writeCSISequence(23, '~', modValue)
	case KeyF12:
		seq = writeCSISequence(24, '~', modValue)
	case KeyHome:
		seq = writeCSISequence(1, 'H', modValue)
	case KeyEnd:
		seq = writeCSISequence(1, 'F', modValue)
	case KeyUp:
		seq = writeCSISequence(1, 'A', modValue)
	case KeyDown:
		seq = writeCSISequence(1, 'B', modValue)
	case KeyLeft:
		seq = writeCSISequence(1, 'D', modValue)
	case KeyRight:
		seq = writeCSISequence(1, 'C', modValue)
	case KeyPageUp:
		seq = writeCSISequence(5, '~', modValue)
	case KeyPageDown:
		seq = writeCSISequence(6, '~', modValue)
	case KeyInsert:
		seq = writeCSISequence(2, '~', modValue)
	case KeyDelete:
		seq = writeCSISequence(3, '~', modValue)
	case KeyReturn:
		seq = []byte{'\r'}
	case KeyBackspace:
		seq = []byte{127}
	case KeyEscape:
		seq = []byte{0x1b}
	case KeyTab:
		seq = []byte{'\t'}
	default:
		seq = []byte{byte(key)}
	}

	if len(seq) > 0 {
		e.master.Write(seq)
	}
}

// SendRune sends a single graphic or control byte as if typed, applying the
// Ctrl-key XOR-0x40 encoding ozterm_send_key applies to its default case
// (Ctrl+A through Ctrl+Z become bytes 0x01-0x1A). Non-Ctrl input is sent
// verbatim.
func (e *Emulator) SendRune(mod KeyModifier, b byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if mod == KeyModCtrl && isGraphicOrSpace(b) && b != ' ' {
		upper := b
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		b = upper ^ 0x40
	}
	e.master.Write([]byte{b})
}
