package report

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPanels(n int) []Panel {
	panels := make([]Panel, n)
	for i := range panels {
		panels[i] = Panel{Chart: ChartSpec{
			Title:  "panel",
			Series: []Series{{Label: "s", Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}}},
		}}
	}
	return panels
}

func TestCompose(t *testing.T) {
	cell := image.Pt(100, 80)

	t.Run("row-major auto fill", func(t *testing.T) {
		placements, err := Compose(testPanels(3), Layout{Cols: 2}, cell)
		require.NoError(t, err)
		require.Len(t, placements, 3)

		assert.Equal(t, image.Rect(0, 0, 100, 80), placements[0].Rect)
		assert.Equal(t, image.Rect(100, 0, 200, 80), placements[1].Rect)
		assert.Equal(t, image.Rect(0, 80, 100, 160), placements[2].Rect)
	})

	t.Run("explicit positions claim cells first", func(t *testing.T) {
		panels := testPanels(3)
		panels[0].Pos = &GridPos{Row: 1, Col: 1}

		placements, err := Compose(panels, Layout{Rows: 2, Cols: 2}, cell)
		require.NoError(t, err)

		assert.Equal(t, image.Rect(100, 80, 200, 160), placements[0].Rect)
		// The unpositioned panels fill the remaining cells in order.
		assert.Equal(t, image.Rect(0, 0, 100, 80), placements[1].Rect)
		assert.Equal(t, image.Rect(100, 0, 200, 80), placements[2].Rect)
	})

	t.Run("pure function, identical output on repeat", func(t *testing.T) {
		panels := testPanels(4)
		panels[2].Pos = &GridPos{Row: 0, Col: 1}

		a, err := Compose(panels, Layout{Cols: 2}, cell)
		require.NoError(t, err)
		b, err := Compose(panels, Layout{Cols: 2}, cell)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("cell collision is an error", func(t *testing.T) {
		panels := testPanels(2)
		panels[0].Pos = &GridPos{Row: 0, Col: 0}
		panels[1].Pos = &GridPos{Row: 0, Col: 0}

		_, err := Compose(panels, Layout{Cols: 2}, cell)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "claim cell")
	})

	t.Run("position outside grid is an error", func(t *testing.T) {
		panels := testPanels(1)
		panels[0].Pos = &GridPos{Row: 0, Col: 5}

		_, err := Compose(panels, Layout{Rows: 1, Cols: 2}, cell)
		require.Error(t, err)
	})

	t.Run("too many panels for an explicit grid", func(t *testing.T) {
		_, err := Compose(testPanels(5), Layout{Rows: 2, Cols: 2}, cell)
		require.Error(t, err)
	})

	t.Run("missing column count is an error", func(t *testing.T) {
		_, err := Compose(testPanels(1), Layout{}, cell)
		require.Error(t, err)
	})

	t.Run("no panels is an error", func(t *testing.T) {
		_, err := Compose(nil, Layout{Cols: 1}, cell)
		require.Error(t, err)
	})
}

func TestRenderGrid(t *testing.T) {
	t.Run("side-by-side panels", func(t *testing.T) {
		img, err := RenderGrid(testPanels(2), Layout{Rows: 1, Cols: 2})
		require.NoError(t, err)

		bounds := img.Bounds()
		assert.Equal(t, 2*DefaultChartWidth, bounds.Dx())
		assert.Equal(t, DefaultChartHeight, bounds.Dy())
	})

	t.Run("invalid panel chart propagates", func(t *testing.T) {
		panels := testPanels(1)
		panels[0].Chart.Series = nil

		_, err := RenderGrid(panels, Layout{Cols: 1})
		require.Error(t, err)
	})
}
