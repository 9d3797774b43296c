// Command stormreport builds the storm damage report: it loads the NOAA
// StormData file, aggregates casualties and damage by event type, and writes
// a markdown report with ranked tables and per-year casualty charts.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/couchcryptid/storm-damage-report/internal/aggregate"
	"github.com/couchcryptid/storm-damage-report/internal/config"
	"github.com/couchcryptid/storm-damage-report/internal/domain"
	"github.com/couchcryptid/storm-damage-report/internal/loader"
	"github.com/couchcryptid/storm-damage-report/internal/observability"
	"github.com/couchcryptid/storm-damage-report/internal/pipeline"
	"github.com/couchcryptid/storm-damage-report/internal/report"
)

func main() {
	cfg := &config.Config{}
	kong.Parse(cfg,
		kong.Name("stormreport"),
		kong.Description("Aggregate NOAA StormData casualties and damage by event type and render the report."),
	)

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, metrics); err != nil {
		var malformed *loader.MalformedInputError
		if errors.As(err, &malformed) {
			logger.Error("input file unusable", "error", err)
		} else {
			logger.Error("report failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	source := loader.NewFileSource(cfg.Input, logger)
	summary := aggregate.NewSummary()

	p := pipeline.New(source, pipeline.NewTransformer(logger), summary, logger, metrics)
	records, err := p.Run(ctx)
	if err != nil {
		return err
	}

	// Operator preview on stdout; the full document goes to the output dir.
	report.RenderAggregates(os.Stdout, "Most Harmful Event Types",
		summary.TopN(domain.MeasureFatalities, cfg.Top),
		domain.MeasureFatalities, domain.MeasureInjuries)
	report.RenderAggregates(os.Stdout, "Costliest Event Types",
		summary.TopN(domain.MeasurePropertyDamage, cfg.Top),
		domain.MeasurePropertyDamage, domain.MeasureCropDamage)

	writer := report.NewWriter(cfg.Out, logger)
	return writer.Write(summary, records, report.Params{
		TopN:        cfg.Top,
		SeriesEvent: cfg.SeriesEvent,
	})
}
