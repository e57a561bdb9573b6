package basin

import (
	"github.com/katalvlaran/lvbasin/heightmap"
)

// filler holds mutable flood-fill state for one Partition call.
type filler struct {
	g        *heightmap.Grid
	boundary int
	visited  []bool
	queue    []heightmap.Point
	nbrs     []heightmap.Point
}

// Partition splits g into its basins.
// Returns ErrOptionViolation for a bad option; otherwise it is total: an
// all-boundary grid yields no basins, a grid without boundary cells yields one.
func Partition(g *heightmap.Grid, opts ...Option) ([]Basin, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := &filler{
		g:        g,
		boundary: o.Boundary,
		visited:  make([]bool, g.Len()),
		nbrs:     make([]heightmap.Point, 0, 4),
	}

	var basins []Basin
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := heightmap.Point{Row: r, Col: c}
			if f.skip(p) {
				continue
			}
			b := f.fill(p)
			o.OnBasin(len(basins), b)
			basins = append(basins, b)
		}
	}
	return basins, nil
}

// skip reports whether p is already claimed or is a boundary cell.
func (f *filler) skip(p heightmap.Point) bool {
	return f.visited[f.g.Index(p)] || f.g.At(p) == f.boundary
}

// fill drains a FIFO worklist seeded with start and returns the basin it covers.
func (f *filler) fill(start heightmap.Point) Basin {
	var b Basin
	f.queue = append(f.queue[:0], start)
	for qi := 0; qi < len(f.queue); qi++ {
		p := f.queue[qi]
		// duplicates are expected; filter at pop time
		if f.skip(p) {
			continue
		}
		f.visited[f.g.Index(p)] = true
		b.Points = append(b.Points, p)
		f.nbrs = f.g.Neighbors(f.nbrs[:0], p)
		f.queue = append(f.queue, f.nbrs...)
	}
	return b
}

// Sizes returns the size of each basin, in input order.
func Sizes(basins []Basin) []int {
	out := make([]int, len(basins))
	for i, b := range basins {
		out[i] = b.Size()
	}
	return out
}
