package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/config"
)

// Printer writes calendars and error reports to a terminal
type Printer struct {
	out       io.Writer
	errOut    io.Writer
	palette   Palette
	labels    config.LabelsConfig
	width     int
	traceback bool
}

// NewPrinter creates a new Printer. traceback enables full error traces.
func NewPrinter(out, errOut io.Writer, palette Palette, labels config.LabelsConfig, width int, traceback bool) *Printer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Printer{
		out:       out,
		errOut:    errOut,
		palette:   palette,
		labels:    labels,
		width:     width,
		traceback: traceback,
	}
}

// PrintYear prints the month blocks in rows of calendar.MonthsPerRow
func (p *Printer) PrintYear(blocks []calendar.MonthBlock) error {
	for _, row := range calendar.Rows(blocks, calendar.MonthsPerRow) {
		formatted := make([]Block, 0, len(row))
		for _, month := range row {
			formatted = append(formatted, FormatMonth(month, p.palette, p.labels))
		}

		for _, line := range Columns(formatted, p.width) {
			if _, err := fmt.Fprintln(p.out, line); err != nil {
				return fmt.Errorf("failed to write calendar: %w", err)
			}
		}
	}
	return nil
}

// Report prints a visible error message. With traceback enabled the full
// error chain and stack trace follow the message.
func (p *Printer) Report(err error) {
	var parseErr *calendar.DateParseError
	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintf(p.errOut, "%s %s\n",
			p.palette.Error.Render("Error converting date:"),
			p.palette.ErrorDetail.Render(parseErr.Error()))
	default:
		fmt.Fprintf(p.errOut, "%s %s\n",
			p.palette.Error.Render("Error:"),
			err.Error())
	}

	if p.traceback {
		fmt.Fprintf(p.errOut, "%+v\n", err)
	}
}
