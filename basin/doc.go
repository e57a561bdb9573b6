// Package basin partitions a heightmap.Grid into basins and ranks them.
//
// What:
//
//   - A basin is a maximal 4-connected region of non-boundary cells.
//     Cells at the boundary height (heightmap.Boundary, 9) belong to none.
//   - Partition labels every basin with an iterative breadth-first flood
//     fill over an explicit FIFO worklist and a visited slice.
//   - LargestProduct and Score rank basins by size.
//
// Flood fill:
//
//	The outer loop scans cells in row-major order and skips visited or
//	boundary cells. Each remaining cell seeds a worklist. A popped cell is
//	discarded if it is already visited or a boundary cell; otherwise it is
//	marked, appended to the basin, and all of its in-bounds orthogonal
//	neighbors are enqueued unfiltered. A cell may therefore sit in the
//	worklist more than once; the pop-time check keeps the result exact.
//
// Guarantees:
//
//   - Basins are pairwise disjoint and cover exactly the non-boundary cells.
//   - Output order is deterministic: basins in discovery order, members in
//     pop order.
//   - The grid is never written.
//
// Options:
//
//   - WithBoundary(h): treat height h as the separator instead of 9.
//   - WithOnBasin(fn): callback invoked as each basin is completed.
//
// Errors:
//
//   - ErrOptionViolation: invalid option or rank count.
//   - ErrTooFewBasins: fewer sizes than requested by LargestProduct.
//
// Complexity:
//
//   - Partition: O(R×C) time and memory; each cell is enqueued at most
//     once per neighbor.
//   - LargestProduct: O(k log k) for k basins.
package basin
