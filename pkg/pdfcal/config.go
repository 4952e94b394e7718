// Package pdfcal renders a one-month calendar grid into a single-page
// printable PDF. The pipeline is strictly linear: a validated Config is
// expanded into a month grid, the grid is sized onto a page, and the page
// is drawn and written out.
package pdfcal

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// PaperSize names one of the supported physical page formats.
type PaperSize string

const (
	Letter   PaperSize = "letter"
	Legal    PaperSize = "legal"
	Label4x6 PaperSize = "label_4x6"
	Label4x8 PaperSize = "label_4x8"
)

// paperPoints maps each paper size to its portrait dimensions in
// PostScript points (72 per inch).
var paperPoints = map[PaperSize][2]float64{
	Letter:   {612, 792},
	Legal:    {612, 1008},
	Label4x6: {4 * 72, 6 * 72},
	Label4x8: {4 * 72, 8 * 72},
}

// ParsePaperSize converts a command-line token into a PaperSize.
func ParsePaperSize(val string) (PaperSize, error) {
	size := PaperSize(strings.ToLower(strings.TrimSpace(val)))
	if _, ok := paperPoints[size]; !ok {
		return "", fmt.Errorf("unknown paper size %q (choose one of letter, legal, label_4x6, label_4x8)", val)
	}
	return size, nil
}

// Points returns the portrait width and height of the paper in points.
func (p PaperSize) Points() (width, height float64) {
	dims := paperPoints[p]
	return dims[0], dims[1]
}

// parseMonthArg accepts "2" as well as "feb" or "February". Names must
// have at least three letters so that a bare "j" does not silently
// match January.
func parseMonthArg(val string, m *datetime.Month) error {
	val = strings.TrimSpace(val)
	if _, err := strconv.Atoi(val); err != nil && len(val) < 3 {
		return fmt.Errorf("invalid month %q: must be 1-12 or a month name with at least three letters", val)
	}
	if err := m.Parse(val); err != nil {
		return fmt.Errorf("invalid month %q: must be 1-12 or a month name", val)
	}
	return nil
}

// Config is the validated, immutable configuration for one program run.
type Config struct {
	Year      int
	Month     datetime.Month
	File      string
	Size      PaperSize
	Landscape bool
	Ordinals  bool
	Label     bool
}

// NewConfig validates the raw option values and assembles a Config.
// All validation problems are collected and reported together rather
// than one at a time.
func NewConfig(year int, month, file, size string, landscape, ordinals, label bool) (Config, error) {
	var errs []error

	cfg := Config{
		Year:      year,
		File:      file,
		Landscape: landscape,
		Ordinals:  ordinals,
		Label:     label,
	}

	if year < 1 {
		errs = append(errs, fmt.Errorf("year must be a positive integer, got %d", year))
	}

	if err := parseMonthArg(month, &cfg.Month); err != nil {
		errs = append(errs, err)
	}

	if file == "" {
		errs = append(errs, fmt.Errorf("output file path must not be empty"))
	}

	parsedSize, err := ParsePaperSize(size)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Size = parsedSize

	if agg := utilerrors.NewAggregate(errs); agg != nil {
		return Config{}, agg
	}

	return cfg, nil
}
