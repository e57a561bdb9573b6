package lowpoint

import (
	"github.com/katalvlaran/lvbasin/heightmap"
)

// LowPoint is a local minimum and its risk level.
type LowPoint struct {
	heightmap.Cell
	Risk int // Height + 1
}

// Detect scans g once in row-major order and returns every low point in
// order of discovery. It never modifies g.
func Detect(g *heightmap.Grid) []LowPoint {
	var (
		out  []LowPoint
		nbrs = make([]heightmap.Point, 0, 4)
	)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := heightmap.Point{Row: r, Col: c}
			h := g.At(p)
			nbrs = g.Neighbors(nbrs[:0], p)
			if lowerThanAll(g, h, nbrs) {
				out = append(out, LowPoint{
					Cell: heightmap.Cell{Point: p, Height: h},
					Risk: RiskLevel(h),
				})
			}
		}
	}
	return out
}

// lowerThanAll reports whether h < height(n) for every n; true when nbrs is empty.
func lowerThanAll(g *heightmap.Grid, h int, nbrs []heightmap.Point) bool {
	for _, n := range nbrs {
		if g.At(n) <= h {
			return false
		}
	}
	return true
}

// IsLowPoint reports whether the cell at p is a low point of g.
// It panics if p is out of bounds.
func IsLowPoint(g *heightmap.Grid, p heightmap.Point) bool {
	return lowerThanAll(g, g.At(p), g.Neighbors(nil, p))
}

// RiskLevel returns the risk level of a low point of the given height.
func RiskLevel(height int) int {
	return height + 1
}

// RiskLevels returns the risk level of each low point, in input order.
func RiskLevels(lps []LowPoint) []int {
	out := make([]int, len(lps))
	for i, lp := range lps {
		out[i] = lp.Risk
	}
	return out
}

// RiskSum totals the risk levels of lps.
func RiskSum(lps []LowPoint) int {
	sum := 0
	for _, lp := range lps {
		sum += lp.Risk
	}
	return sum
}
