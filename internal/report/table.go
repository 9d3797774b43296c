package report

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/couchcryptid/storm-damage-report/internal/domain"
)

// RenderAggregates prints aggregate records as a boxed terminal table with
// right-aligned, comma-grouped numeric columns.
func RenderAggregates(w io.Writer, title string, rows []domain.AggregateRecord, measures ...domain.Measure) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	header := table.Row{"Event Type"}
	configs := make([]table.ColumnConfig, 0, len(measures))
	for i, m := range measures {
		header = append(header, m.Title())
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, agg := range rows {
		row := table.Row{agg.EventType}
		for _, m := range measures {
			row = append(row, formatMeasure(m, m.ValueOf(agg)))
		}
		t.AppendRow(row)
	}

	t.Render()
}

// MarkdownAggregates renders aggregate records as a markdown table with
// right-justified numeric columns, for embedding in the report document.
func MarkdownAggregates(rows []domain.AggregateRecord, measures ...domain.Measure) string {
	var b strings.Builder

	b.WriteString("| Event Type |")
	for _, m := range measures {
		b.WriteString(" " + m.Title() + " |")
	}
	b.WriteString("\n|---|")
	for range measures {
		b.WriteString("---:|")
	}
	b.WriteString("\n")

	for _, agg := range rows {
		b.WriteString("| " + agg.EventType + " |")
		for _, m := range measures {
			b.WriteString(" " + formatMeasure(m, m.ValueOf(agg)) + " |")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// formatMeasure renders a measure value with thousands separators. Dollar
// measures drop fractional cents; counts keep up to two decimals in the rare
// rows where the source file carries them.
func formatMeasure(m domain.Measure, v float64) string {
	if m.Dollars() {
		return humanize.CommafWithDigits(v, 0)
	}
	return humanize.CommafWithDigits(v, 2)
}
