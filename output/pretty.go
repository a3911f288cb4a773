package output

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/tenkiya/tenki-go/weather"
)

type PrettyPrinter struct {
	writer  io.Writer
	aurora  aurora.Aurora
	palette *ReportPalette
}

type ReportPalette struct {
	Location  aurora.Color
	Condition aurora.Color
	FieldName aurora.Color
	Value     aurora.Color
}

var defaultReportPalette = ReportPalette{
	Location:  aurora.CyanFg | aurora.BoldFm,
	Condition: aurora.BlueFg,
	FieldName: aurora.GrayFg,
	Value:     aurora.BrownFg,
}

func NewPrettyPrinter(writer io.Writer) Printer {
	return &PrettyPrinter{
		writer:  writer,
		aurora:  aurora.NewAurora(true),
		palette: &defaultReportPalette,
	}
}

func (p *PrettyPrinter) PrintReport(report *weather.Report) error {
	_, err := fmt.Fprintf(p.writer, "%s  %s\n",
		p.aurora.Colorize(locationLabel(report.Location), p.palette.Location),
		p.aurora.Colorize(report.Current.Condition.Text, p.palette.Condition))
	if err != nil {
		return errors.Wrap(err, "printing report")
	}

	for _, line := range reportLines(report)[2:] {
		// Pad before colorizing; escape codes would defeat %-12s.
		name := fmt.Sprintf("%-12s", line.name)
		_, err := fmt.Fprintf(p.writer, "%s %s\n",
			p.aurora.Colorize(name, p.palette.FieldName),
			p.aurora.Colorize(line.value, p.palette.Value))
		if err != nil {
			return errors.Wrap(err, "printing report")
		}
	}
	return nil
}
