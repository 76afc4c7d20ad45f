// Package tetromino holds the static shape tables. Every orientation is
// tabulated by hand inside a uniform 4x4 box, so movement code can use the
// same offset arithmetic for every shape and rotation.
package tetromino

import (
	"fmt"

	"sandtris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	O
	T
	L
	J
	S
	Z
)

// Count is the number of tetromino kinds.
const Count = 7

// Orientations is the number of rotation states per kind.
const Orientations = 4

// BoxSize is the side length of every shape matrix.
const BoxSize = 4

// Matrix is a 4x4 occupancy table indexed [row][col].
type Matrix [BoxSize][BoxSize]bool

// Extent is the horizontal footprint of one orientation inside its box.
type Extent struct {
	Left  int
	Right int
}

const (
	x = true
	o = false
)

var shapes = [Count][Orientations]Matrix{
	I: {
		{
			{o, o, o, o},
			{x, x, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, o, x, o},
			{o, o, x, o},
			{o, o, x, o},
		},
		{
			{o, o, o, o},
			{o, o, o, o},
			{x, x, x, x},
			{o, o, o, o},
		},
		{
			{o, x, o, o},
			{o, x, o, o},
			{o, x, o, o},
			{o, x, o, o},
		},
	},
	O: {
		{
			{o, o, o, o},
			{o, x, x, o},
			{o, x, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, o},
			{o, x, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, o},
			{o, x, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, o},
			{o, x, x, o},
			{o, o, o, o},
		},
	},
	T: {
		{
			{o, o, x, o},
			{o, x, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, o, x, x},
			{o, o, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, x},
			{o, o, x, o},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, x, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
	},
	L: {
		{
			{o, o, o, x},
			{o, x, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, o, x, o},
			{o, o, x, x},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, x},
			{o, x, o, o},
			{o, o, o, o},
		},
		{
			{o, x, x, o},
			{o, o, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
	},
	J: {
		{
			{o, x, o, o},
			{o, x, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, x, x},
			{o, o, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, x},
			{o, o, o, x},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, o, x, o},
			{o, x, x, o},
			{o, o, o, o},
		},
	},
	S: {
		{
			{o, o, x, x},
			{o, x, x, o},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, o, x, x},
			{o, o, o, x},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, o, x, x},
			{o, x, x, o},
			{o, o, o, o},
		},
		{
			{o, x, o, o},
			{o, x, x, o},
			{o, o, x, o},
			{o, o, o, o},
		},
	},
	Z: {
		{
			{o, x, x, o},
			{o, o, x, x},
			{o, o, o, o},
			{o, o, o, o},
		},
		{
			{o, o, o, x},
			{o, o, x, x},
			{o, o, x, o},
			{o, o, o, o},
		},
		{
			{o, o, o, o},
			{o, x, x, o},
			{o, o, x, x},
			{o, o, o, o},
		},
		{
			{o, o, x, o},
			{o, x, x, o},
			{o, x, o, o},
			{o, o, o, o},
		},
	},
}

var colors = [Count]core.Color{
	I: core.Cyan,
	O: core.Yellow,
	T: core.Magenta,
	L: core.Orange,
	J: core.Blue,
	S: core.Green,
	Z: core.Red,
}

var names = [Count]string{"I", "O", "T", "L", "J", "S", "Z"}

var extents = buildExtents()

func buildExtents() [Count][Orientations]Extent {
	var out [Count][Orientations]Extent
	for k := range shapes {
		for r := range shapes[k] {
			e := Extent{Left: BoxSize, Right: -1}
			for _, row := range shapes[k][r] {
				for col, filled := range row {
					if !filled {
						continue
					}
					e.Left = min(e.Left, col)
					e.Right = max(e.Right, col)
				}
			}
			out[k][r] = e
		}
	}
	return out
}

func (k Kind) String() string {
	if k < Count {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool { return k < Count }

// Cells returns the occupancy matrix for a kind and orientation. The
// orientation is reduced modulo 4.
func Cells(k Kind, orientation int) Matrix {
	return shapes[k][Normalize(orientation)]
}

// Color returns the block color bound to k.
func Color(k Kind) core.Color { return colors[k] }

// ExtentOf returns the leftmost and rightmost occupied column offsets.
func ExtentOf(k Kind, orientation int) Extent {
	return extents[k][Normalize(orientation)]
}

// Next returns the orientation after the given one.
func Next(orientation int) int { return Normalize(orientation + 1) }

// Normalize reduces an orientation into [0, 4).
func Normalize(orientation int) int {
	return ((orientation % Orientations) + Orientations) % Orientations
}
