package pdfcal

import (
	"math"
	"testing"
)

func TestPaperSizePoints(t *testing.T) {
	tests := []struct {
		size       PaperSize
		wantWidth  float64
		wantHeight float64
	}{
		{size: Letter, wantWidth: 612, wantHeight: 792},
		{size: Legal, wantWidth: 612, wantHeight: 1008},
		{size: Label4x6, wantWidth: 288, wantHeight: 432},
		{size: Label4x8, wantWidth: 288, wantHeight: 576},
	}

	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			w, h := tt.size.Points()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Points() = %gx%g, want %gx%g", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestPlanOrientationSwapsDimensions(t *testing.T) {
	cfg := Config{Year: 2024, Month: 2, Size: Letter, Label: true}

	portrait := Plan(cfg, 5)
	cfg.Landscape = true
	landscape := Plan(cfg, 5)

	if portrait.Width != 612 || portrait.Height != 792 {
		t.Errorf("portrait = %gx%g, want 612x792", portrait.Width, portrait.Height)
	}
	if landscape.Width != portrait.Height || landscape.Height != portrait.Width {
		t.Errorf("landscape = %gx%g, want portrait dimensions swapped", landscape.Width, landscape.Height)
	}
}

func TestPlanGridFitsUsableArea(t *testing.T) {
	const eps = 1e-9

	for _, weeks := range []int{4, 5, 6} {
		cfg := Config{Year: 2024, Month: 2, Size: Legal, Landscape: true, Label: true}
		g := Plan(cfg, weeks)

		usableWidth := g.Width - 2*g.MarginX - 2*g.LineWidth
		usableHeight := g.Height - 2*g.MarginY - 2*g.LineWidth

		if got := 7 * g.CellWidth; math.Abs(got-usableWidth) > eps {
			t.Errorf("weeks=%d: 7 columns span %g, want usable width %g", weeks, got, usableWidth)
		}
		if got := float64(weeks)*g.CellHeight + g.LabelHeight; math.Abs(got-usableHeight) > eps {
			t.Errorf("weeks=%d: rows plus label span %g, want usable height %g", weeks, got, usableHeight)
		}
	}
}

func TestPlanLabelBand(t *testing.T) {
	cfg := Config{Year: 2024, Month: 2, Size: Letter}

	without := Plan(cfg, 5)
	if without.LabelHeight != 0 {
		t.Errorf("LabelHeight = %g without a label, want 0", without.LabelHeight)
	}

	cfg.Label = true
	with := Plan(cfg, 5)
	if with.LabelHeight != with.CellHeight {
		t.Errorf("LabelHeight = %g, want one cell height %g", with.LabelHeight, with.CellHeight)
	}
	if with.CellHeight >= without.CellHeight {
		t.Errorf("label band should shrink cells: %g >= %g", with.CellHeight, without.CellHeight)
	}
}

func TestPlanScaleFactors(t *testing.T) {
	cfg := Config{Year: 2024, Month: 2, Size: Letter, Landscape: true}
	g := Plan(cfg, 5)

	// Stroke and font sizes scale with the smaller page dimension.
	if want := 612 * 0.0025; g.LineWidth != want {
		t.Errorf("LineWidth = %g, want %g", g.LineWidth, want)
	}
	if want := 612 * 0.028; g.FontSize != want {
		t.Errorf("FontSize = %g, want %g", g.FontSize, want)
	}
	if g.MarginX != g.Width/50 || g.MarginY != g.Height/50 {
		t.Errorf("margins = %g,%g, want %g,%g", g.MarginX, g.MarginY, g.Width/50, g.Height/50)
	}
}
