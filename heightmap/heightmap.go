package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// initialLineBuf is the starting scan buffer; it grows without limit for wider rows.
const initialLineBuf = 64 * 1024

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input, so later writes to values are not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrHeightRange
// for any value outside [0,9].
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < MinHeight || v > MaxHeight {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrHeightRange, v, r, c)
			}
			cells = append(cells, v)
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse builds a Grid from digit text, one row per line.
// Lines are trimmed and blank lines are skipped. Parsing stops at the first
// non-digit with an error wrapping ErrInvalidDigit that carries the 1-based
// line and column of the raw input (leading whitespace included);
// no partial grid is returned. Rows may be arbitrarily wide.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read is Parse over an io.Reader.
func Read(r io.Reader) (*Grid, error) {
	var (
		cells []int
		w, h  int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuf), math.MaxInt)
	for lineNo := 1; sc.Scan(); lineNo++ {
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		// columns are reported against the raw line
		indent := utf8.RuneCountInString(raw[:len(raw)-len(strings.TrimLeftFunc(raw, unicode.IsSpace))])
		n := 0
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidDigit, ch, lineNo, indent+n+1)
			}
			cells = append(cells, int(ch-'0'))
			n++
		}
		if h == 0 {
			w = n
		} else if n != w {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrNonRectangular, lineNo, n, w)
		}
		h++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}
	if h == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the height at p. It panics if p is out of bounds,
// like an ordinary slice index.
func (g *Grid) At(p Point) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("heightmap: point (%d,%d) out of bounds %dx%d", p.Row, p.Col, g.height, g.width))
	}
	return g.cells[g.Index(p)]
}

// Cell returns p together with its height.
func (g *Grid) Cell(p Point) Cell {
	return Cell{Point: p, Height: g.At(p)}
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.width + p.Col
}

// Point converts a row-major index back to its coordinate.
// Complexity: O(1).
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.width, Col: idx % g.width}
}

// heightAt reads by row-major index without bounds checks beyond the slice's own.
func (g *Grid) heightAt(idx int) int {
	return g.cells[idx]
}

// Neighbors appends the in-bounds orthogonal neighbors of p to dst and
// returns the extended slice. Off-grid positions are omitted, never wrapped.
// Order is up, down, left, right.
func (g *Grid) Neighbors(dst []Point, p Point) []Point {
	for _, d := range orthogonal {
		q := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(q) {
			dst = append(dst, q)
		}
	}
	return dst
}

// IsBoundary reports whether the cell at p has the Boundary height.
func (g *Grid) IsBoundary(p Point) bool {
	return g.At(p) == Boundary
}

// CountHeight returns how many cells have height h.
func (g *Grid) CountHeight(h int) int {
	n := 0
	for i := range g.cells {
		if g.heightAt(i) == h {
			n++
		}
	}
	return n
}

// Rows returns a deep copy of the grid as [][]int.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		out[r] = make([]int, g.width)
		copy(out[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return out
}

// String renders the grid back into its digit-text form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for i, v := range g.cells {
		if i > 0 && i%g.width == 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}
