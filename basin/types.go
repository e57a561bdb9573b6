package basin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbasin/heightmap"
)

// Sentinel errors for partitioning and ranking.
var (
	// ErrOptionViolation is returned when an invalid Option or rank count is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")

	// ErrTooFewBasins is returned when fewer basins exist than the ranking needs.
	ErrTooFewBasins = errors.New("basin: not enough basins to rank")

	// ErrProductOverflow is returned when the ranked product does not fit in an int.
	ErrProductOverflow = errors.New("basin: product of basin sizes overflows int")
)

// DefaultTop is the number of largest basins multiplied by Score.
const DefaultTop = 3

// Basin is one connected component, held as owned coordinates.
// Heights are looked up by indexing back into the grid.
type Basin struct {
	Points []heightmap.Point
}

// Size returns the number of member cells.
func (b Basin) Size() int {
	return len(b.Points)
}

// Cells pairs every member with its height in g.
func (b Basin) Cells(g *heightmap.Grid) []heightmap.Cell {
	out := make([]heightmap.Cell, len(b.Points))
	for i, p := range b.Points {
		out[i] = g.Cell(p)
	}
	return out
}

// Contains reports whether p is a member of b. O(size).
func (b Basin) Contains(p heightmap.Point) bool {
	for _, q := range b.Points {
		if q == p {
			return true
		}
	}
	return false
}

// Option configures Partition via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds Partition parameters.
type Options struct {
	// Boundary is the separating height; cells at this height join no basin.
	Boundary int

	// OnBasin, if set, is called once per completed basin with its
	// discovery index.
	OnBasin func(idx int, b Basin)

	err error
}

// DefaultOptions returns Options with Boundary=heightmap.Boundary and a no-op OnBasin.
func DefaultOptions() Options {
	return Options{
		Boundary: heightmap.Boundary,
		OnBasin:  func(int, Basin) {},
	}
}

// WithBoundary sets the separating height.
//
//	h in [0,9]: use h
//	otherwise: ErrOptionViolation
func WithBoundary(h int) Option {
	return func(o *Options) {
		if h < heightmap.MinHeight || h > heightmap.MaxHeight {
			o.err = fmt.Errorf("%w: boundary %d outside [%d,%d]", ErrOptionViolation, h, heightmap.MinHeight, heightmap.MaxHeight)
			return
		}
		o.Boundary = h
	}
}

// WithOnBasin registers a callback run as each basin completes.
func WithOnBasin(fn func(idx int, b Basin)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBasin = fn
		}
	}
}
