package report

import (
	"fmt"
	"image"
	"image/draw"
)

// GridPos is an explicit zero-based cell assignment for a panel.
type GridPos struct {
	Row int
	Col int
}

// Panel pairs a chart with an optional explicit grid position. Panels
// without a position fill free cells in row-major order.
type Panel struct {
	Chart ChartSpec
	Pos   *GridPos
}

// Layout describes the panel grid. Cols is required; Rows of 0 derives the
// row count from the panel count.
type Layout struct {
	Rows int
	Cols int
}

// Placement assigns panel i the pixel rectangle it renders into.
type Placement struct {
	Panel int
	Rect  image.Rectangle
}

// Compose lays out n panels on the grid and returns one placement per panel,
// in panel order. It is a pure function of its arguments: no rendering
// happens here, so layouts can be validated and tested without drawing.
// cell is the pixel size of one grid cell.
func Compose(panels []Panel, layout Layout, cell image.Point) ([]Placement, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("compose: no panels")
	}
	if layout.Cols <= 0 {
		return nil, fmt.Errorf("compose: layout needs a positive column count")
	}
	rows := layout.Rows
	if rows <= 0 {
		rows = (len(panels) + layout.Cols - 1) / layout.Cols
	}
	if len(panels) > rows*layout.Cols {
		return nil, fmt.Errorf("compose: %d panels exceed %dx%d grid", len(panels), rows, layout.Cols)
	}
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("compose: cell size must be positive")
	}

	occupied := make(map[GridPos]int)
	placements := make([]Placement, len(panels))

	// Explicitly positioned panels claim their cells first.
	for i, p := range panels {
		if p.Pos == nil {
			continue
		}
		pos := *p.Pos
		if pos.Row < 0 || pos.Row >= rows || pos.Col < 0 || pos.Col >= layout.Cols {
			return nil, fmt.Errorf("compose: panel %d position %d,%d outside %dx%d grid", i, pos.Row, pos.Col, rows, layout.Cols)
		}
		if other, taken := occupied[pos]; taken {
			return nil, fmt.Errorf("compose: panels %d and %d both claim cell %d,%d", other, i, pos.Row, pos.Col)
		}
		occupied[pos] = i
		placements[i] = Placement{Panel: i, Rect: cellRect(pos, cell)}
	}

	// Remaining panels fill free cells in row-major order.
	next := GridPos{}
	for i, p := range panels {
		if p.Pos != nil {
			continue
		}
		for {
			if _, taken := occupied[next]; !taken {
				break
			}
			next = advance(next, layout.Cols)
		}
		occupied[next] = i
		placements[i] = Placement{Panel: i, Rect: cellRect(next, cell)}
		next = advance(next, layout.Cols)
	}

	return placements, nil
}

func cellRect(pos GridPos, cell image.Point) image.Rectangle {
	return image.Rect(pos.Col*cell.X, pos.Row*cell.Y, (pos.Col+1)*cell.X, (pos.Row+1)*cell.Y)
}

func advance(pos GridPos, cols int) GridPos {
	pos.Col++
	if pos.Col == cols {
		pos.Col = 0
		pos.Row++
	}
	return pos
}

// RenderGrid renders every panel's chart and composes them into a single
// image per the layout. Each chart is rendered at the grid's cell size.
func RenderGrid(panels []Panel, layout Layout) (*image.RGBA, error) {
	cell := image.Point{X: DefaultChartWidth, Y: DefaultChartHeight}

	placements, err := Compose(panels, layout, cell)
	if err != nil {
		return nil, err
	}

	var bounds image.Rectangle
	for _, pl := range placements {
		bounds = bounds.Union(pl.Rect)
	}

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(chartBackground), image.Point{}, draw.Src)

	for _, pl := range placements {
		spec := panels[pl.Panel].Chart
		spec.Width = pl.Rect.Dx()
		spec.Height = pl.Rect.Dy()

		chart, err := LineChart(spec)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", pl.Panel, err)
		}
		draw.Draw(dst, pl.Rect, chart, image.Point{}, draw.Src)
	}

	return dst, nil
}
