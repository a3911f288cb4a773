package output

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/weather"
)

type JSONPrinter struct {
	writer io.Writer
}

func NewJSONPrinter(writer io.Writer) Printer {
	return &JSONPrinter{
		writer: writer,
	}
}

func (p *JSONPrinter) PrintReport(report *weather.Report) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}
