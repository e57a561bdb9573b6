// Package heightmap parses and holds a rectangular map of single-digit
// elevations, the shared input of the lowpoint and basin packages.
//
// What:
//
//   - Grid wraps a rectangular, immutable [][]int of heights in [0,9].
//   - Parse / Read turn line-oriented digit text into a Grid.
//   - New builds a Grid from an existing [][]int (deep-copied).
//   - Point / Cell address cells by (Row, Col); Index maps them row-major.
//   - Neighbors enumerates the in-bounds orthogonal neighbors of a cell.
//
// Input format:
//
//	2199943210
//	3987894921
//	9856789892
//
// Every line is trimmed; blank lines are skipped; every other rune must be
// a decimal digit.
//
// Errors:
//
//   - ErrEmptyGrid: no non-blank rows, or a zero-length row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidDigit: a non-digit rune was found while parsing.
//   - ErrHeightRange: New received a value outside [0,9].
//
// Complexity:
//
//   - Parse, Read, New: O(R×C) time and memory.
//   - At, InBounds, Index, Point: O(1).
//   - Neighbors: O(1), at most 4 results.
package heightmap
