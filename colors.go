package headlessterm

import "image/color"

// Palette is the 16 ANSI base color slots this core honors. Full 256-color
// and truecolor SGR are out of scope (spec Non-goals); everything the parser
// accepts ultimately resolves to one of these sixteen indices.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // 0 black
	{205, 49, 49, 255},   // 1 red
	{13, 188, 121, 255},  // 2 green
	{229, 229, 16, 255},  // 3 yellow
	{36, 114, 200, 255},  // 4 blue
	{188, 63, 188, 255},  // 5 magenta
	{17, 168, 205, 255},  // 6 cyan
	{229, 229, 229, 255}, // 7 white
	{102, 102, 102, 255}, // 8 bright black
	{241, 76, 76, 255},   // 9 bright red
	{35, 209, 139, 255},  // 10 bright green
	{245, 245, 67, 255},  // 11 bright yellow
	{59, 142, 234, 255},  // 12 bright blue
	{214, 112, 214, 255}, // 13 bright magenta
	{41, 184, 219, 255},  // 14 bright cyan
	{255, 255, 255, 255}, // 15 bright white
}

// Color packs a foreground and a background palette index (each 0-15) into
// one byte, matching the single-byte "color" field of the reference
// implementation this core is ground on: high nibble background, low
// nibble foreground.
type Color byte

// PackColor builds a Color from a foreground/background palette pair.
// Indices outside [0,15] are masked to their low nibble.
func PackColor(fg, bg int) Color {
	return Color((byte(bg&0x0F) << 4) | byte(fg&0x0F))
}

// Fg returns the foreground palette index (0-15).
func (c Color) Fg() int { return int(c & 0x0F) }

// Bg returns the background palette index (0-15).
func (c Color) Bg() int { return int((c >> 4) & 0x0F) }

// RGBA resolves the color's foreground/background indices against Palette.
func (c Color) RGBA() (fg, bg color.RGBA) {
	return Palette[c.Fg()], Palette[c.Bg()]
}

// DefaultColor is the color every Emulator starts with: bright green
// foreground on black background (0x0A in the reference implementation).
const DefaultColor Color = 0x0A
