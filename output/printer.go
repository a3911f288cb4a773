package output

import (
	"io"

	"github.com/tenkiya/tenki-go/weather"
)

type Printer interface {
	PrintReport(report *weather.Report) error
}

// NewPrinter picks a printer for the options: JSON when requested,
// colorized when the terminal supports it, plain otherwise.
func NewPrinter(writer io.Writer, options *Options) Printer {
	if options.JSON {
		return NewJSONPrinter(writer)
	}
	if options.EnableColor {
		return NewPrettyPrinter(writer)
	}
	return NewPlainPrinter(writer)
}
