// Package aggregate builds the per-event-type totals and the read-only views
// the report renders from them.
//
// Event types are aggregation keys by exact string equality: "TORNADO" and
// "Tornado" are distinct groups. That mirrors the source data's free-form
// labels and is a documented property of the report, not a defect.
package aggregate

import (
	"sort"

	"github.com/couchcryptid/storm-damage-report/internal/domain"
)

// Summary accumulates derived records into one AggregateRecord per distinct
// event-type label, remembering the order in which labels were first seen so
// that ranked views can break ties deterministically.
type Summary struct {
	groups map[string]*domain.AggregateRecord
	order  []string
	total  int
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{groups: make(map[string]*domain.AggregateRecord)}
}

// Accumulate adds one derived record to its event-type group.
func (s *Summary) Accumulate(rec domain.Record) {
	g, ok := s.groups[rec.EventType]
	if !ok {
		g = &domain.AggregateRecord{EventType: rec.EventType}
		s.groups[rec.EventType] = g
		s.order = append(s.order, rec.EventType)
	}
	g.Fatalities += rec.Fatalities
	g.Injuries += rec.Injuries
	g.PropertyDamageActual += rec.PropertyDamageActual
	g.CropDamageActual += rec.CropDamageActual
	s.total++
}

// Len returns the number of records accumulated so far.
func (s *Summary) Len() int { return s.total }

// Groups returns the number of distinct event-type labels seen so far.
func (s *Summary) Groups() int { return len(s.order) }

// All returns every aggregate record. Callers must not rely on the order;
// it is only meaningful once a ranked view is applied.
func (s *Summary) All() []domain.AggregateRecord {
	out := make([]domain.AggregateRecord, 0, len(s.order))
	for _, label := range s.order {
		out = append(out, *s.groups[label])
	}
	return out
}

// TopN returns the n aggregate records with the highest value of the given
// measure, descending, with ties broken by group-discovery order. When n
// exceeds the number of groups, every group is returned.
func (s *Summary) TopN(measure domain.Measure, n int) []domain.AggregateRecord {
	ranked := s.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return measure.ValueOf(ranked[i]) > measure.ValueOf(ranked[j])
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// YearTotal holds the summed fatalities and injuries for one calendar year
// of a single event type.
type YearTotal struct {
	Year       int
	Fatalities float64
	Injuries   float64
}

// YearlySeries filters records to an exact event-type label, groups them by
// the calendar year of their event date, and sums fatalities and injuries per
// year. Records without a parseable event date are excluded. The result is
// sorted by year, ascending.
func YearlySeries(records []domain.Record, eventType string) []YearTotal {
	byYear := make(map[int]*YearTotal)
	for _, rec := range records {
		if rec.EventType != eventType || !rec.HasEventDate() {
			continue
		}
		year := rec.EventDate.Year()
		yt, ok := byYear[year]
		if !ok {
			yt = &YearTotal{Year: year}
			byYear[year] = yt
		}
		yt.Fatalities += rec.Fatalities
		yt.Injuries += rec.Injuries
	}

	out := make([]YearTotal, 0, len(byYear))
	for _, yt := range byYear {
		out = append(out, *yt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
