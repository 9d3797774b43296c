package report

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChart(t *testing.T) {
	spec := ChartSpec{
		Title:  "TORNADO fatalities per year",
		XLabel: "Year",
		YLabel: "Fatalities",
		Series: []Series{{
			Label:  "Fatalities",
			Points: []Point{{X: 1950, Y: 70}, {X: 1974, Y: 366}, {X: 2011, Y: 587}},
		}},
	}

	t.Run("renders at default size", func(t *testing.T) {
		img, err := LineChart(spec)
		require.NoError(t, err)
		assert.Equal(t, DefaultChartWidth, img.Bounds().Dx())
		assert.Equal(t, DefaultChartHeight, img.Bounds().Dy())

		// Background stays white outside the plot area.
		assert.Equal(t, chartBackground, img.RGBAAt(1, 1))
	})

	t.Run("honors explicit dimensions", func(t *testing.T) {
		sized := spec
		sized.Width = 320
		sized.Height = 240
		img, err := LineChart(sized)
		require.NoError(t, err)
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 240, img.Bounds().Dy())
	})

	t.Run("plots series pixels", func(t *testing.T) {
		colored := spec
		colored.Series = []Series{{
			Label:  "Fatalities",
			Color:  color.RGBA{200, 0, 0, 255},
			Points: spec.Series[0].Points,
		}}
		img, err := LineChart(colored)
		require.NoError(t, err)

		found := 0
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if img.RGBAAt(x, y) == (color.RGBA{200, 0, 0, 255}) {
					found++
				}
			}
		}
		assert.Greater(t, found, 100, "expected a visible polyline")
	})

	t.Run("no series is an error", func(t *testing.T) {
		_, err := LineChart(ChartSpec{Title: "empty"})
		require.Error(t, err)
	})

	t.Run("empty series is an error", func(t *testing.T) {
		_, err := LineChart(ChartSpec{Series: []Series{{Label: "hollow"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hollow")
	})

	t.Run("single point does not divide by zero", func(t *testing.T) {
		img, err := LineChart(ChartSpec{
			Series: []Series{{Label: "one", Points: []Point{{X: 2000, Y: 5}}}},
		})
		require.NoError(t, err)
		assert.NotNil(t, img)
	})
}

func TestEncodePNG(t *testing.T) {
	img, err := LineChart(ChartSpec{
		Series: []Series{{Label: "s", Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 3}}}},
	})
	require.NoError(t, err)

	data, err := EncodePNG(img)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}
