package output

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/weather"
)

type PlainPrinter struct {
	writer io.Writer
}

func NewPlainPrinter(writer io.Writer) Printer {
	return &PlainPrinter{
		writer: writer,
	}
}

func (p *PlainPrinter) PrintReport(report *weather.Report) error {
	for _, line := range reportLines(report) {
		if _, err := fmt.Fprintf(p.writer, "%-12s %s\n", line.name, line.value); err != nil {
			return errors.Wrap(err, "printing report")
		}
	}
	return nil
}

type reportLine struct {
	name  string
	value string
}

func reportLines(report *weather.Report) []reportLine {
	return []reportLine{
		{"Location", locationLabel(report.Location)},
		{"Condition", report.Current.Condition.Text},
		{"Temperature", fmt.Sprintf("%.1f°C (feels like %.1f°C)", report.Current.TempC, report.Current.FeelslikeC)},
		{"Humidity", fmt.Sprintf("%d%%", report.Current.Humidity)},
		{"UV index", fmt.Sprintf("%.1f", report.Current.UV)},
		{"Icon", report.Current.Condition.LargeIconURL()},
	}
}

func locationLabel(location weather.Location) string {
	if location.Country == "" {
		return location.Name
	}
	return location.Name + ", " + location.Country
}
