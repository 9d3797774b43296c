package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/storm-damage-report/internal/domain"
)

// RecordTransformer implements Transformer using the domain derivation,
// logging record-level anomalies at debug so a noisy input file does not
// drown the run output.
type RecordTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a RecordTransformer.
func NewTransformer(logger *slog.Logger) *RecordTransformer {
	return &RecordTransformer{logger: logger}
}

func (t *RecordTransformer) Transform(raw domain.RawRecord) domain.Record {
	rec := domain.Derive(raw)

	if !rec.HasEventDate() {
		t.logger.Debug("unparseable begin date, record excluded from year views",
			"event_type", raw.EventType,
			"bgn_date", raw.BeginDateRaw,
		)
	}

	return rec
}
