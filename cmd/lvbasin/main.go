// Command lvbasin reports the low-point risk sum and the largest-basins
// product of one or more height-map files.
//
//	lvbasin [-config FILE] [-format text|yaml] [-boundary 9] [-top 3] FILE...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbasin/heightmap"
	"github.com/katalvlaran/lvbasin/internal/config"
	"github.com/katalvlaran/lvbasin/report"
)

var log = logrus.New()

func setupLogging(cfg *config.Config, w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	setupLogging(cfg, stderr)
	log.WithFields(cfg.Fields()).Debug("config")

	reports, err := analyzeAll(ctx, cfg)
	if err != nil {
		log.Error(err)
		return 1
	}

	if cfg.Format == config.FormatYAML {
		err = report.WriteYAML(stdout, reports)
	} else {
		for _, r := range reports {
			if err = r.WriteText(stdout); err != nil {
				break
			}
		}
	}
	if err != nil {
		log.Error("unable to write report: ", err)
		return 1
	}
	return 0
}

// analyzeAll analyzes every input with at most cfg.Workers in flight.
// Reports keep the input order.
func analyzeAll(ctx context.Context, cfg *config.Config) ([]*report.Report, error) {
	reports := make([]*report.Report, len(cfg.Inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, path := range cfg.Inputs {
		i, path := i, path
		eg.Go(func() error {
			r, err := analyzeFile(egCtx, cfg, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyzeFile(ctx context.Context, cfg *config.Config, path string) (*report.Report, error) {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := heightmap.Read(f)
	if err != nil {
		return nil, err
	}
	fileLog := log.WithFields(logrus.Fields{
		"file": path,
		"rows": g.Height(),
		"cols": g.Width(),
	})
	fileLog.Debug("parsed")

	r, err := report.Analyze(ctx, g, report.Options{
		Boundary: cfg.Boundary,
		Top:      cfg.Top,
		Log:      fileLog,
	})
	if err != nil {
		return nil, err
	}
	r.Source = path
	fileLog.WithFields(r.Fields()).WithField("elapsed", time.Since(start)).Info("analyzed")
	return r, nil
}
