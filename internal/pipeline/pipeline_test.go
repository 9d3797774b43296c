package pipeline_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-damage-report/internal/aggregate"
	"github.com/couchcryptid/storm-damage-report/internal/domain"
	"github.com/couchcryptid/storm-damage-report/internal/observability"
	"github.com/couchcryptid/storm-damage-report/internal/pipeline"
)

// --- mocks ---

type mockExtractor struct {
	records []domain.RawRecord
	err     error
	calls   int
}

func (m *mockExtractor) Extract(_ context.Context) ([]domain.RawRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

type recordingAccumulator struct {
	seen []domain.Record
}

func (a *recordingAccumulator) Accumulate(rec domain.Record) {
	a.seen = append(a.seen, rec)
}

func newTestMetrics() *observability.Metrics {
	// Use a fresh registry to avoid "already registered" panics in tests.
	return observability.NewMetricsForTesting()
}

var testRecords = []domain.RawRecord{
	{EventType: "TORNADO", BeginDateRaw: "4/28/2011 0:00:00", Fatalities: 3, Injuries: 45, PropertyDamage: 2.5, PropertyDamageExp: "M"},
	{EventType: "FLOOD", BeginDateRaw: "6/9/2008 0:00:00", PropertyDamage: 10, PropertyDamageExp: "B"},
	{EventType: "HAIL", BeginDateRaw: "garbage", PropertyDamage: 1.7, PropertyDamageExp: "5"},
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	ext := &mockExtractor{records: testRecords}
	acc := &recordingAccumulator{}
	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), acc, slog.Default(), newTestMetrics())

	derived, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, derived, 3)
	assert.Len(t, acc.seen, 3)
	assert.Equal(t, 1, ext.calls)

	assert.Equal(t, "TORNADO", derived[0].EventType)
	assert.Equal(t, 2_500_000.0, derived[0].PropertyDamageActual)
	assert.Equal(t, 10_000_000_000.0, derived[1].PropertyDamageActual)

	// The garbage date degrades silently; the record still aggregates.
	assert.False(t, derived[2].HasEventDate())
	assert.Equal(t, 1.7, derived[2].PropertyDamageActual)
}

func TestPipeline_Run_ExtractFailureAborts(t *testing.T) {
	extractErr := errors.New("boom")
	ext := &mockExtractor{err: extractErr}
	acc := &recordingAccumulator{}
	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), acc, slog.Default(), newTestMetrics())

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, extractErr)
	assert.Empty(t, acc.seen)
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ext := &mockExtractor{records: testRecords}
	acc := &recordingAccumulator{}
	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), acc, slog.Default(), newTestMetrics())

	_, err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_Run_IntoSummary(t *testing.T) {
	ext := &mockExtractor{records: testRecords}
	summary := aggregate.NewSummary()
	p := pipeline.New(ext, pipeline.NewTransformer(slog.Default()), summary, slog.Default(), newTestMetrics())

	derived, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, derived, 3)

	assert.Equal(t, 3, summary.Len())
	assert.Equal(t, 3, summary.Groups())

	top := summary.TopN(domain.MeasurePropertyDamage, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "FLOOD", top[0].EventType)
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	run := func() []domain.AggregateRecord {
		summary := aggregate.NewSummary()
		p := pipeline.New(&mockExtractor{records: testRecords}, pipeline.NewTransformer(slog.Default()), summary, slog.Default(), newTestMetrics())
		_, err := p.Run(context.Background())
		require.NoError(t, err)
		return summary.All()
	}

	assert.Equal(t, run(), run())
}
