// Package pipeline orchestrates the one-shot load-derive-aggregate cycle
// that produces the report's aggregate records.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-damage-report/internal/domain"
	"github.com/couchcryptid/storm-damage-report/internal/observability"
)

// Extractor reads every raw record from the input source in file order.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.RawRecord, error)
}

// Transformer projects a raw record into its derived form. Transformation is
// total: field-level anomalies degrade silently and never produce an error.
type Transformer interface {
	Transform(raw domain.RawRecord) domain.Record
}

// Accumulator folds derived records into the per-event-type aggregates.
type Accumulator interface {
	Accumulate(rec domain.Record)
}

// Pipeline runs the extract-transform-accumulate cycle exactly once.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	accumulator Accumulator
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, a Accumulator, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		accumulator: a,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run executes the full batch cycle and returns the derived records in input
// order. The only error path is extraction: a file-level failure aborts the
// run, while record-level anomalies are counted and degrade silently. The
// context is honored between stages; the batch itself is not interruptible.
func (p *Pipeline) Run(ctx context.Context) ([]domain.Record, error) {
	start := time.Now()
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	rawBatch, err := p.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	p.metrics.RecordsLoaded.Add(float64(len(rawBatch)))
	p.logger.Info("records loaded", "count", len(rawBatch))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	derived := make([]domain.Record, 0, len(rawBatch))
	var dateMisses, unitFallbacks int
	for _, raw := range rawBatch {
		rec := p.transformer.Transform(raw)

		if !rec.HasEventDate() {
			dateMisses++
		}
		unitFallbacks += countUnitFallbacks(raw)

		p.accumulator.Accumulate(rec)
		derived = append(derived, rec)
	}

	p.metrics.RecordsDerived.Add(float64(len(derived)))
	p.metrics.DateParseMisses.Add(float64(dateMisses))
	p.metrics.UnitCodeFallback.Add(float64(unitFallbacks))

	elapsed := time.Since(start)
	p.metrics.PipelineDuration.Observe(elapsed.Seconds())
	p.logger.Info("pipeline complete",
		"records", len(derived),
		"date_parse_misses", dateMisses,
		"unit_code_fallbacks", unitFallbacks,
		"duration", elapsed,
	)

	return derived, nil
}

// countUnitFallbacks counts the non-empty, unrecognized damage-unit codes on
// a raw record. Empty codes are the common no-damage case and are not
// counted as anomalies.
func countUnitFallbacks(raw domain.RawRecord) int {
	n := 0
	if raw.PropertyDamageExp != "" && !domain.RecognizedUnitCode(raw.PropertyDamageExp) {
		n++
	}
	if raw.CropDamageExp != "" && !domain.RecognizedUnitCode(raw.CropDamageExp) {
		n++
	}
	return n
}
