package pdfcal

// Geometry holds the page dimensions and the derived grid sizing, all
// in PostScript points. Coordinates follow the PDF drawing convention
// used by the renderer: the origin is the top-left corner of the page
// and y grows downwards.
type Geometry struct {
	Width  float64
	Height float64

	// MarginX and MarginY are applied on every side of the page.
	MarginX float64
	MarginY float64

	// LineWidth is the stroke width for cell borders; the usable area
	// is inset by one line width so outer strokes stay on the page.
	LineWidth float64

	// FontSize is the base text size for day numbers and the label.
	FontSize float64

	CellWidth  float64
	CellHeight float64

	// LabelHeight is the height of the month/year band above the grid,
	// zero when no label is requested.
	LabelHeight float64
}

// Plan computes the page geometry for the given configuration and the
// number of week rows in the grid. Margins are 1/50th of the page on
// each side; stroke width and font size scale with the smaller page
// dimension so label-sized pages stay legible.
func Plan(cfg Config, weeks int) Geometry {
	width, height := cfg.Size.Points()
	if cfg.Landscape {
		width, height = height, width
	}

	scale := min(width, height)
	g := Geometry{
		Width:     width,
		Height:    height,
		MarginX:   width / 50,
		MarginY:   height / 50,
		LineWidth: scale * 0.0025,
		FontSize:  scale * 0.028,
	}

	usableWidth := width - 2*g.MarginX - 2*g.LineWidth
	usableHeight := height - 2*g.MarginY - 2*g.LineWidth

	// The label band is sized like one more grid row.
	rows := weeks
	if cfg.Label {
		rows++
	}

	g.CellWidth = usableWidth / 7
	g.CellHeight = usableHeight / float64(rows)
	if cfg.Label {
		g.LabelHeight = g.CellHeight
	}
	return g
}
