package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/couchcryptid/storm-damage-report/internal/aggregate"
	"github.com/couchcryptid/storm-damage-report/internal/domain"
)

// Params selects what the report document shows. All values are call-site
// parameters; there is no persisted configuration.
type Params struct {
	TopN        int
	SeriesEvent string // exact EVTYPE label for the yearly casualty charts
}

// Writer renders the markdown report document and its chart images into an
// output directory.
type Writer struct {
	outDir string
	logger *slog.Logger
}

// NewWriter creates a Writer targeting outDir. The directory is created on
// demand.
func NewWriter(outDir string, logger *slog.Logger) *Writer {
	return &Writer{outDir: outDir, logger: logger}
}

// Write builds report.md plus one composed two-panel chart image from the
// pipeline's outputs. Rendering is the only side effect; the views themselves
// come from the aggregate package untouched.
func (w *Writer) Write(summary *aggregate.Summary, records []domain.Record, params Params) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	chartFile, err := w.writeCasualtyCharts(records, params.SeriesEvent)
	if err != nil {
		return err
	}

	doc := w.buildDocument(summary, params, chartFile)
	path := filepath.Join(w.outDir, "report.md")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w.logger.Info("report written", "path", path, "chart", chartFile)
	return nil
}

// writeCasualtyCharts renders the per-year fatality and injury series for
// the chosen event type as a side-by-side panel image. Returns the chart
// file name, or "" when the label has no dated records to plot.
func (w *Writer) writeCasualtyCharts(records []domain.Record, eventType string) (string, error) {
	series := aggregate.YearlySeries(records, eventType)
	if len(series) == 0 {
		w.logger.Warn("no dated records for event type, skipping charts", "event_type", eventType)
		return "", nil
	}

	fatalities := make([]Point, 0, len(series))
	injuries := make([]Point, 0, len(series))
	for _, yt := range series {
		fatalities = append(fatalities, Point{X: float64(yt.Year), Y: yt.Fatalities})
		injuries = append(injuries, Point{X: float64(yt.Year), Y: yt.Injuries})
	}

	panels := []Panel{
		{Chart: ChartSpec{
			Title:  fmt.Sprintf("%s fatalities per year", eventType),
			XLabel: "Year",
			YLabel: "Fatalities",
			Series: []Series{{Label: "Fatalities", Points: fatalities}},
		}},
		{Chart: ChartSpec{
			Title:  fmt.Sprintf("%s injuries per year", eventType),
			XLabel: "Year",
			YLabel: "Injuries",
			Series: []Series{{Label: "Injuries", Points: injuries}},
		}},
	}

	img, err := RenderGrid(panels, Layout{Rows: 1, Cols: 2})
	if err != nil {
		return "", fmt.Errorf("render casualty charts: %w", err)
	}

	name := slug(eventType) + "_casualties.png"
	if err := WritePNG(filepath.Join(w.outDir, name), img); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return name, nil
}

func (w *Writer) buildDocument(summary *aggregate.Summary, params Params, chartFile string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Storm Damage Report\n\n")
	fmt.Fprintf(&b, "Generated %s from %s records across %s event types.\n\n",
		domain.Now().UTC().Format("2006-01-02 15:04 UTC"),
		humanize.Comma(int64(summary.Len())),
		humanize.Comma(int64(summary.Groups())),
	)
	fmt.Fprintf(&b, "Event-type labels are aggregated by exact string match; differently cased or\n")
	fmt.Fprintf(&b, "abbreviated variants of the same phenomenon appear as separate rows.\n\n")

	fmt.Fprintf(&b, "## Most Harmful Event Types\n\n")
	fmt.Fprintf(&b, "### Top %d by fatalities\n\n", params.TopN)
	b.WriteString(MarkdownAggregates(summary.TopN(domain.MeasureFatalities, params.TopN),
		domain.MeasureFatalities, domain.MeasureInjuries))
	fmt.Fprintf(&b, "\n### Top %d by injuries\n\n", params.TopN)
	b.WriteString(MarkdownAggregates(summary.TopN(domain.MeasureInjuries, params.TopN),
		domain.MeasureInjuries, domain.MeasureFatalities))

	fmt.Fprintf(&b, "\n## Costliest Event Types\n\n")
	fmt.Fprintf(&b, "### Top %d by property damage\n\n", params.TopN)
	b.WriteString(MarkdownAggregates(summary.TopN(domain.MeasurePropertyDamage, params.TopN),
		domain.MeasurePropertyDamage, domain.MeasureCropDamage))
	fmt.Fprintf(&b, "\n### Top %d by crop damage\n\n", params.TopN)
	b.WriteString(MarkdownAggregates(summary.TopN(domain.MeasureCropDamage, params.TopN),
		domain.MeasureCropDamage, domain.MeasurePropertyDamage))

	if chartFile != "" {
		fmt.Fprintf(&b, "\n## %s Casualties Over Time\n\n", params.SeriesEvent)
		fmt.Fprintf(&b, "Records without a parseable begin date are excluded from the yearly series.\n\n")
		fmt.Fprintf(&b, "![%s casualties per year](%s)\n", params.SeriesEvent, chartFile)
	}

	fmt.Fprintf(&b, "\n---\n\nDamage figures combine the magnitude columns with their scale suffixes\n")
	fmt.Fprintf(&b, "(K = thousands, M = millions, B = billions). Suffixes outside that alphabet\n")
	fmt.Fprintf(&b, "occur in the source data and are applied as-is with no scaling; their intended\n")
	fmt.Fprintf(&b, "magnitude cannot be reconciled against the remarks text.\n")

	return b.String()
}

// slug converts an EVTYPE label into a file-name-safe fragment.
func slug(label string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, label)
	return strings.Trim(mapped, "_")
}
