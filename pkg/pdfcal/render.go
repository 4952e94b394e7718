package pdfcal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Generate runs the full pipeline for the given configuration: compute
// the month grid, size it onto the page and write the PDF to cfg.File.
func Generate(cfg Config) error {
	grid := MonthGrid(cfg.Year, cfg.Month)
	geom := Plan(cfg, len(grid))
	return Render(cfg, grid, geom)
}

// Render draws the month grid onto a single page and writes the result
// to cfg.File, creating or overwriting it. Drawing happens in one pass
// per layer: cell borders, day numbers (with day-of-year ordinals when
// requested), and finally the month/year label band.
func Render(cfg Config, grid []Week, geom Geometry) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P", // orientation is already folded into geom
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geom.Width, Ht: geom.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", geom.FontSize)
	pdf.SetLineWidth(geom.LineWidth)

	// Top-left corner of the grid, below the label band if present.
	gridX := geom.MarginX + geom.LineWidth
	gridY := geom.MarginY + geom.LineWidth + geom.LabelHeight

	// Cell borders. Positions outside the month stay blank.
	forEachDay(grid, func(row, col int, _ Cell) {
		x := gridX + float64(col)*geom.CellWidth
		y := gridY + float64(row)*geom.CellHeight
		pdf.Rect(x, y, geom.CellWidth, geom.CellHeight, "D")
	})

	// Day numbers, inset from the cell's top-left corner.
	forEachDay(grid, func(row, col int, cell Cell) {
		day := strconv.Itoa(cell.Day)
		textX := gridX + float64(col)*geom.CellWidth + 0.5*geom.FontSize
		textY := gridY + float64(row)*geom.CellHeight + 1.3*geom.FontSize
		pdf.Text(textX, textY, day)

		if cfg.Ordinals {
			// Day-of-year count, raised and reduced next to the number.
			offset := pdf.GetStringWidth(day) + 0.1*geom.FontSize
			pdf.SetFontSize(0.6 * geom.FontSize)
			pdf.Text(textX+offset, textY-0.4*geom.FontSize, strconv.Itoa(cell.Ordinal))
			pdf.SetFontSize(geom.FontSize)
		}
	})

	if cfg.Label {
		label := fmt.Sprintf("%s %d", time.Month(cfg.Month), cfg.Year)
		labelY := geom.MarginY + geom.LineWidth + 1.3*geom.FontSize
		pdf.Text((geom.Width-pdf.GetStringWidth(label))/2, labelY, label)
	}

	if pdf.Err() {
		return fmt.Errorf("drawing calendar page: %w", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(cfg.File); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.File, err)
	}
	return nil
}

// forEachDay calls fn for every non-blank cell of the grid.
func forEachDay(grid []Week, fn func(row, col int, cell Cell)) {
	for row, week := range grid {
		for col, cell := range week {
			if cell.Day == 0 {
				continue
			}
			fn(row, col, cell)
		}
	}
}
