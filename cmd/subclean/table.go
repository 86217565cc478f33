package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subclean/internal/cleaner"
	"subclean/internal/language"
)

func renderReportTable(report cleaner.Report, colorize bool) string {
	return renderTable([2]string{"Field", "Value"}, reportRows(report), colorize)
}

// renderTable draws two left-aligned columns with the header text as given.
func renderTable(header [2]string, rows [][2]string, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	if colorize {
		tw.Style().Color.Header = text.Colors{text.FgBlue, text.Bold}
	}
	tw.AppendHeader(table.Row{header[0], header[1]})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func reportRows(report cleaner.Report) [][2]string {
	rows := [][2]string{
		{"Input", report.InputPath},
		{"Encoding", describeEncoding(report.Encoding)},
	}
	if name := language.DisplayName(report.Encoding.Guess.Language); name != "" {
		rows = append(rows, [2]string{"Language", name})
	}
	rows = append(rows, [][2]string{
		{"Trimmed", formatIndexList(report.Trimmed)},
		{"Deleted", formatIndexList(report.Deleted)},
		{"Subtitles", fmt.Sprintf("%d", report.Subtitles)},
		{"Result", describeResult(report)},
		{"Written", yesNo(report.Written)},
	}...)
	if report.Written {
		rows = append(rows,
			[2]string{"Output", report.OutputPath},
			[2]string{"Size", humanize.Bytes(uint64(report.BytesWritten))},
		)
	}
	return rows
}

func describeEncoding(enc cleaner.ResolvedEncoding) string {
	switch enc.Source {
	case cleaner.EncodingDetected:
		return fmt.Sprintf("%s (detected, %s%%)", enc.Label, formatPercent(enc.Guess.Percent()))
	case "":
		return enc.Label
	default:
		return fmt.Sprintf("%s (%s)", enc.Label, enc.Source)
	}
}

func describeResult(report cleaner.Report) string {
	switch {
	case !report.Written:
		return "Subtitle clean. No changes made."
	case report.Converted():
		return "Converted to UTF-8"
	default:
		return "Cleaned"
	}
}
