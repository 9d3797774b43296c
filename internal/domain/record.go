package domain

import "time"

// RawRecord is one row of the StormData CSV, restricted to the columns the
// report pipeline consumes. Numeric fields are parsed leniently at load time;
// text fields are passed through exactly as they appear in the file.
type RawRecord struct {
	EventType    string // EVTYPE: free-form label, inconsistent casing, not a controlled vocabulary
	BeginDateRaw string // BGN_DATE: "M/D/YYYY 0:00:00" style, only the date token matters

	Fatalities float64
	Injuries   float64

	PropertyDamage    float64 // PROPDMG: magnitude, scaled per PropertyDamageExp
	PropertyDamageExp string  // PROPDMGEXP: scale suffix, free-form in practice
	CropDamage        float64
	CropDamageExp     string

	Remarks string // REMARKS: free text, unused by the numeric outputs
}

// Record is the derived form of a RawRecord: the projected columns plus the
// parsed event date and the actual-dollar damage figures. Records are not
// mutated after derivation.
type Record struct {
	EventType  string
	EventDate  time.Time // zero when BeginDateRaw could not be parsed
	Fatalities float64
	Injuries   float64

	PropertyDamageActual float64 // dollars
	CropDamageActual     float64 // dollars
}

// HasEventDate reports whether the begin date parsed successfully. Records
// without a date are excluded from year-bucketed views.
func (r Record) HasEventDate() bool {
	return !r.EventDate.IsZero()
}

// Derive projects a RawRecord into its immutable derived form.
func Derive(raw RawRecord) Record {
	return Record{
		EventType:            raw.EventType,
		EventDate:            ParseBeginDate(raw.BeginDateRaw),
		Fatalities:           raw.Fatalities,
		Injuries:             raw.Injuries,
		PropertyDamageActual: DamageActual(raw.PropertyDamage, raw.PropertyDamageExp),
		CropDamageActual:     DamageActual(raw.CropDamage, raw.CropDamageExp),
	}
}

// AggregateRecord holds the per-event-type sums of the four report measures.
type AggregateRecord struct {
	EventType            string
	Fatalities           float64
	Injuries             float64
	PropertyDamageActual float64
	CropDamageActual     float64
}

// Measure names one of the four summed quantities on an AggregateRecord.
type Measure string

const (
	MeasureFatalities     Measure = "fatalities"
	MeasureInjuries       Measure = "injuries"
	MeasurePropertyDamage Measure = "property_damage"
	MeasureCropDamage     Measure = "crop_damage"
)

// Measures lists every measure in report order.
var Measures = []Measure{MeasureFatalities, MeasureInjuries, MeasurePropertyDamage, MeasureCropDamage}

// Valid reports whether m names a known measure.
func (m Measure) Valid() bool {
	switch m {
	case MeasureFatalities, MeasureInjuries, MeasurePropertyDamage, MeasureCropDamage:
		return true
	}
	return false
}

// Dollars reports whether the measure is a dollar amount rather than a count.
func (m Measure) Dollars() bool {
	return m == MeasurePropertyDamage || m == MeasureCropDamage
}

// ValueOf returns the measure's summed value from an AggregateRecord.
// Unknown measures return 0.
func (m Measure) ValueOf(a AggregateRecord) float64 {
	switch m {
	case MeasureFatalities:
		return a.Fatalities
	case MeasureInjuries:
		return a.Injuries
	case MeasurePropertyDamage:
		return a.PropertyDamageActual
	case MeasureCropDamage:
		return a.CropDamageActual
	}
	return 0
}

// Title returns the measure's human-readable report heading.
func (m Measure) Title() string {
	switch m {
	case MeasureFatalities:
		return "Fatalities"
	case MeasureInjuries:
		return "Injuries"
	case MeasurePropertyDamage:
		return "Property Damage ($)"
	case MeasureCropDamage:
		return "Crop Damage ($)"
	}
	return string(m)
}
