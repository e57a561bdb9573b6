// Package lowpoint finds the local minima of a heightmap.Grid.
//
// A cell is a low point when its height is strictly less than the height
// of every orthogonal neighbor that exists. Off-grid positions are simply
// absent from the comparison; they are not treated as infinitely high.
// An equal neighbor disqualifies, so a flat minimum wider than one cell
// has no low point at all. A 1×1 grid has one low point.
//
// Each low point carries a risk level of height+1; RiskSum totals them.
//
// Complexity: Detect is O(R×C) time, O(k) memory for k low points.
package lowpoint
