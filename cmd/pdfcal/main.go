// pdfcal renders a printable one-month calendar grid as a single-page
// PDF. Page size, orientation, day-of-year ordinals and the month/year
// label are controlled through flags; everything else is computed from
// the requested year and month.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ibihim/pdfcal/pkg/pdfcal"
)

// Options holds the raw command-line flag values before validation.
type Options struct {
	Year      int
	Month     string
	File      string
	Size      string
	Landscape bool
	Ordinals  bool
	Label     bool
	Help      bool
}

// ParseOptions reads the command-line flags into an Options instance.
// Each boolean switch comes as an on/off pair so that the defaults
// (landscape on, label on) can be turned off explicitly.
func ParseOptions() *Options {
	helpFlag := flag.Bool("help", false, "Print help information")
	yearPtr := flag.Int("year", 2024, "Year to render")
	monthPtr := flag.String("month", "2", "Month to render (1-12, or a name like 'feb')")
	filePtr := flag.String("file", "calendar.pdf", "Path of the PDF file to write")
	sizePtr := flag.String("size", "letter", "Page size: letter, legal, label_4x6 or label_4x8")
	landscapePtr := flag.Bool("landscape", true, "Rotate the page to landscape orientation")
	noLandscapePtr := flag.Bool("no-landscape", false, "Keep the page in portrait orientation")
	ordinalsPtr := flag.Bool("ordinals", false, "Show the day-of-year count next to each day number")
	noOrdinalsPtr := flag.Bool("no-ordinals", false, "Hide the day-of-year count (default)")
	labelPtr := flag.Bool("label", true, "Draw the month and year above the grid")
	noLabelPtr := flag.Bool("no-label", false, "Omit the month/year label")
	flag.Parse()

	return &Options{
		Year:      *yearPtr,
		Month:     *monthPtr,
		File:      *filePtr,
		Size:      *sizePtr,
		Landscape: *landscapePtr && !*noLandscapePtr,
		Ordinals:  *ordinalsPtr && !*noOrdinalsPtr,
		Label:     *labelPtr && !*noLabelPtr,
		Help:      *helpFlag,
	}
}

func main() {
	opts := ParseOptions()
	if opts.Help {
		flag.Usage()
		return
	}

	cfg, err := pdfcal.NewConfig(
		opts.Year, opts.Month, opts.File, opts.Size,
		opts.Landscape, opts.Ordinals, opts.Label,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr)
		flag.Usage()
		os.Exit(2)
	}

	if err := pdfcal.Generate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
