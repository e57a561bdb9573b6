// Package lvbasin analyzes rectangular height maps: it finds the local
// minima ("low points") and splits the map into basins separated by
// cells of height 9.
//
// What is in here?
//
//	heightmap/ — Grid, Point, Cell; parsing digit text into an immutable grid
//	lowpoint/  — low-point detection and risk levels (height+1)
//	basin/     — FIFO flood-fill partition into 4-connected basins, ranking
//	report/    — runs both passes over one grid and collects the results
//	cmd/lvbasin — command-line driver (logrus logging, YAML/text output)
//
// Quick example:
//
//	g, err := heightmap.Parse("2199943210\n3987894921\n9856789892\n")
//	if err != nil {
//		// ErrEmptyGrid, ErrNonRectangular or ErrInvalidDigit
//	}
//	risk := lowpoint.RiskSum(lowpoint.Detect(g))
//	basins, _ := basin.Partition(g)
//	score, err := basin.Score(basins) // ErrTooFewBasins below three basins
//
// Core packages are pure, synchronous and deterministic; they never log.
//
//	go get github.com/katalvlaran/lvbasin
package lvbasin
