package headlessterm

// Cell is an attributed character: one printable byte, a packed foreground
// and background color index, and a protection flag consulted by every grid
// mutator except Clear.
//
// The character is a single byte rather than a rune: this core never decodes
// multi-byte UTF-8 (see doc.go), so a Cell's size and copy semantics stay
// fixed regardless of what the parser feeds it.
type Cell struct {
	Char      byte
	Color     Color
	Protected bool
}

// blank returns the cell written by Clear/Erase/scroll operations: a space
// in the given color, never protected.
func blank(c Color) Cell {
	return Cell{Char: ' ', Color: c}
}
