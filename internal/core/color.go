package core

import "fmt"

// Color tags an occupied cell with the tetromino that produced it.
type Color uint8

const (
	Cyan Color = iota
	Blue
	Magenta
	Yellow
	Orange
	Green
	Red
)

// ColorCount is the number of distinct block colors.
const ColorCount = 7

var colorNames = [ColorCount]string{"cyan", "blue", "magenta", "yellow", "orange", "green", "red"}

// Letters used by the text layout format, indexed by Color.
var colorLetters = [ColorCount]byte{'c', 'b', 'm', 'y', 'o', 'g', 'r'}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Letter returns the layout letter for c.
func (c Color) Letter() byte {
	if int(c) < len(colorLetters) {
		return colorLetters[c]
	}
	return '?'
}

// ColorForLetter maps a layout letter back to its Color. 'X' is accepted as
// magenta so hand-drawn layouts can use a single glyph.
func ColorForLetter(b byte) (Color, bool) {
	if b == 'X' {
		return Magenta, true
	}
	for i, l := range colorLetters {
		if l == b {
			return Color(i), true
		}
	}
	return 0, false
}
