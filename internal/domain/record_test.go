package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		raw := RawRecord{
			EventType:         "TORNADO",
			BeginDateRaw:      "4/28/2011 0:00:00",
			Fatalities:        3,
			Injuries:          45,
			PropertyDamage:    2.5,
			PropertyDamageExp: "M",
			CropDamage:        100,
			CropDamageExp:     "K",
			Remarks:           "Long-track tornado.",
		}

		rec := Derive(raw)

		assert.Equal(t, "TORNADO", rec.EventType)
		assert.Equal(t, time.Date(2011, time.April, 28, 0, 0, 0, 0, time.UTC), rec.EventDate)
		assert.True(t, rec.HasEventDate())
		assert.Equal(t, 3.0, rec.Fatalities)
		assert.Equal(t, 45.0, rec.Injuries)
		assert.Equal(t, 2_500_000.0, rec.PropertyDamageActual)
		assert.Equal(t, 100_000.0, rec.CropDamageActual)
	})

	t.Run("unparseable date yields no event date", func(t *testing.T) {
		rec := Derive(RawRecord{EventType: "HAIL", BeginDateRaw: "???"})
		assert.False(t, rec.HasEventDate())
		assert.True(t, rec.EventDate.IsZero())
	})

	t.Run("stray unit codes use magnitude as-is", func(t *testing.T) {
		rec := Derive(RawRecord{
			EventType:         "FLOOD",
			PropertyDamage:    1.7,
			PropertyDamageExp: "5",
			CropDamage:        3,
			CropDamageExp:     "",
		})
		assert.Equal(t, 1.7, rec.PropertyDamageActual)
		assert.Equal(t, 3.0, rec.CropDamageActual)
	})
}

func TestMeasure(t *testing.T) {
	agg := AggregateRecord{
		EventType:            "FLOOD",
		Fatalities:           10,
		Injuries:             20,
		PropertyDamageActual: 30,
		CropDamageActual:     40,
	}

	t.Run("value accessors", func(t *testing.T) {
		assert.Equal(t, 10.0, MeasureFatalities.ValueOf(agg))
		assert.Equal(t, 20.0, MeasureInjuries.ValueOf(agg))
		assert.Equal(t, 30.0, MeasurePropertyDamage.ValueOf(agg))
		assert.Equal(t, 40.0, MeasureCropDamage.ValueOf(agg))
		assert.Equal(t, 0.0, Measure("bogus").ValueOf(agg))
	})

	t.Run("validity", func(t *testing.T) {
		for _, m := range Measures {
			assert.True(t, m.Valid(), m)
		}
		assert.False(t, Measure("wind_speed").Valid())
	})

	t.Run("dollar measures", func(t *testing.T) {
		assert.False(t, MeasureFatalities.Dollars())
		assert.False(t, MeasureInjuries.Dollars())
		assert.True(t, MeasurePropertyDamage.Dollars())
		assert.True(t, MeasureCropDamage.Dollars())
	})
}
