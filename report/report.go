// Package report runs the low-point and basin passes over one grid and
// collects their results.
//
// The two passes are independent reads of an immutable grid, so Analyze
// runs them on an errgroup. Ranking consumes the basin pass only.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbasin/basin"
	"github.com/katalvlaran/lvbasin/heightmap"
	"github.com/katalvlaran/lvbasin/lowpoint"
)

// Options tunes Analyze.
type Options struct {
	// Boundary is the basin separator height (0 is a valid height, so the
	// zero Options uses 0; start from DefaultOptions).
	Boundary int
	// Top is how many of the largest basins are multiplied together.
	Top int
	// Log receives debug tracing of each pass. Nil disables it.
	Log logrus.FieldLogger
}

// DefaultOptions returns Boundary=heightmap.Boundary, Top=basin.DefaultTop.
func DefaultOptions() Options {
	return Options{Boundary: heightmap.Boundary, Top: basin.DefaultTop}
}

// Report is the outcome of one analysis.
type Report struct {
	Source     string `yaml:"source,omitempty"`
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	LowPoints  []int  `yaml:"low_points"`
	RiskLevels []int  `yaml:"risk_levels"`
	RiskSum    int    `yaml:"risk_sum"`
	BasinSizes []int  `yaml:"basin_sizes"`
	BasinScore int    `yaml:"basin_score"`
}

// Analyze detects low points and partitions basins of g, then ranks the basins.
// Errors from ranking (basin.ErrTooFewBasins) and options are returned
// unchanged after wrapping. ctx only guards the orchestration; the passes
// themselves are not interruptible.
func Analyze(ctx context.Context, g *heightmap.Grid, opts Options) (*Report, error) {
	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	var (
		lps    []lowpoint.LowPoint
		basins []basin.Basin
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		start := time.Now()
		lps = lowpoint.Detect(g)
		log.WithFields(logrus.Fields{
			"low_points": len(lps),
			"elapsed":    time.Since(start),
		}).Debug("low-point pass done")
		return egCtx.Err()
	})
	eg.Go(func() error {
		start := time.Now()
		var err error
		basins, err = basin.Partition(g, basin.WithBoundary(opts.Boundary))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"basins":  len(basins),
			"elapsed": time.Since(start),
		}).Debug("basin pass done")
		return egCtx.Err()
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	sizes := basin.Sizes(basins)
	score, err := basin.LargestProduct(sizes, opts.Top)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	heights := make([]int, len(lps))
	for i, lp := range lps {
		heights[i] = lp.Height
	}
	return &Report{
		Rows:       g.Height(),
		Cols:       g.Width(),
		LowPoints:  heights,
		RiskLevels: lowpoint.RiskLevels(lps),
		RiskSum:    lowpoint.RiskSum(lps),
		BasinSizes: sizes,
		BasinScore: score,
	}, nil
}

// Fields returns the scalar results as logrus fields.
func (r *Report) Fields() logrus.Fields {
	return logrus.Fields{
		"source":      r.Source,
		"rows":        r.Rows,
		"cols":        r.Cols,
		"low_points":  len(r.LowPoints),
		"risk_sum":    r.RiskSum,
		"basins":      len(r.BasinSizes),
		"basin_score": r.BasinScore,
	}
}

// WriteText writes the human-readable form of r.
func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nrisk levels: %v\nsum: %d\nbasin sizes: %v\nlargest basins product: %d\n",
		r.Source, r.RiskLevels, r.RiskSum, r.BasinSizes, r.BasinScore)
	return err
}

// WriteYAML writes reports as a YAML sequence.
func WriteYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}
