// Package heightmap defines the grid types, sentinel errors and the
// orthogonal neighborhood used across the module.
package heightmap

import (
	"errors"
)

// Sentinel errors for heightmap construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidDigit indicates a non-digit character in the input text.
	ErrInvalidDigit = errors.New("heightmap: invalid digit")
	// ErrHeightRange indicates a height outside [MinHeight, MaxHeight].
	ErrHeightRange = errors.New("heightmap: height out of range")
)

const (
	// MinHeight is the lowest representable elevation.
	MinHeight = 0
	// MaxHeight is the highest representable elevation.
	MaxHeight = 9
	// Boundary is the height that separates basins. Boundary cells never
	// belong to a basin.
	Boundary = MaxHeight
)

// Point addresses a cell by row and column, both zero-based.
type Point struct {
	Row, Col int
}

// Cell is a Point together with the height stored there.
type Cell struct {
	Point
	Height int
}

// orthogonal lists the 4-connected offsets in up, down, left, right order.
var orthogonal = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular height map. It is immutable once built:
// every constructor deep-copies its input and no accessor hands out
// the backing storage.
type Grid struct {
	width, height int
	cells         []int // row-major, len == width*height
}
