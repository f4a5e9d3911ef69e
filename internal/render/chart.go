// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"strings"
	"unicode/utf8"

	"querydash/cli/internal/analytics"
	"querydash/cli/internal/logging"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Series colours, cycled per point.
var chartColors = []pterm.Color{
	pterm.FgMagenta,
	pterm.FgLightMagenta,
	pterm.FgYellow,
	pterm.FgGreen,
	pterm.FgBlue,
	pterm.FgLightRed,
}

const (
	columnHeight = 8
	columnWidth  = 8
	minBarWidth  = 10
)

// Result prints one result card.
func (r *Renderer) Result(res analytics.QueryResult) {
	r.println(SprintResult(res, r.width()))
}

// SprintResult renders a result card: title, description and the chart
// matching its chart type.
func SprintResult(res analytics.QueryResult, width int) string {
	points := analytics.Points(res)

	var chart string
	switch res.ChartType {
	case analytics.ChartLine:
		chart = columnChart(points, false)
	case analytics.ChartArea:
		chart = columnChart(points, true)
	case analytics.ChartPie:
		chart = shareChart(points, width)
	default:
		chart = barChart(points, width)
	}

	var b strings.Builder
	b.WriteString(pterm.NewStyle(pterm.Bold).Sprint(res.Description))
	b.WriteString("\n\n")
	b.WriteString(chart)

	title := pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(res.Title + " · " + string(res.ChartType))
	return pterm.DefaultBox.WithTitle(title).Sprint(b.String())
}

// FormatValue prints a value with thousands separators and at most two decimals.
func FormatValue(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// barChart draws one horizontal bar per point, scaled to the largest value.
func barChart(points []analytics.ChartPoint, width int) string {
	labelW := maxLabelWidth(points)
	valueW := 0
	for _, p := range points {
		valueW = max(valueW, len(FormatValue(p.Value)))
	}
	barW := max(width-labelW-valueW-10, minBarWidth)
	top := analytics.MaxValue(points)

	lines := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if top > 0 {
			n = int(p.Value / top * float64(barW))
		}
		bar := pterm.NewStyle(chartColors[0]).Sprint(strings.Repeat("█", n))
		lines = append(lines, padRight(p.Label, labelW)+" "+bar+" "+FormatValue(p.Value))
	}
	return strings.Join(lines, "\n")
}

// shareChart draws each point's percentage of the total, one colour per slice.
func shareChart(points []analytics.ChartPoint, width int) string {
	labelW := maxLabelWidth(points)
	barW := max(min(width-labelW-20, 40), minBarWidth)
	shares := analytics.Percentages(points)

	lines := make([]string, 0, len(points))
	for i, p := range points {
		n := int(shares[i] / 100 * float64(barW))
		style := pterm.NewStyle(chartColors[i%len(chartColors)])
		bar := style.Sprint(strings.Repeat("█", n))
		pct := humanize.FtoaWithDigits(shares[i], 1) + "%"
		lines = append(lines, padRight(p.Label, labelW)+" "+bar+" "+pct)
	}
	return strings.Join(lines, "\n")
}

// columnChart draws one column per point. Filled columns give an area chart;
// otherwise only the top cell is marked, tracing a line.
func columnChart(points []analytics.ChartPoint, filled bool) string {
	top := analytics.MaxValue(points)
	levels := make([]int, len(points))
	for i, p := range points {
		if top > 0 {
			levels[i] = int(p.Value/top*float64(columnHeight) + 0.5)
		}
		if levels[i] < 1 && p.Value > 0 {
			levels[i] = 1
		}
	}

	style := pterm.NewStyle(chartColors[0])
	var rows []string
	for row := columnHeight; row >= 1; row-- {
		var b strings.Builder
		for _, lvl := range levels {
			cell := strings.Repeat(" ", columnWidth)
			switch {
			case filled && lvl >= row:
				cell = " " + style.Sprint(strings.Repeat("█", columnWidth-2)) + " "
			case !filled && lvl == row:
				cell = centre("●", columnWidth)
			}
			b.WriteString(cell)
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}

	var labels, values strings.Builder
	for _, p := range points {
		labels.WriteString(centre(logging.Truncate(p.Label, columnWidth-1), columnWidth))
		values.WriteString(centre(logging.Truncate(FormatValue(p.Value), columnWidth-1), columnWidth))
	}
	rows = append(rows, strings.TrimRight(labels.String(), " "), strings.TrimRight(values.String(), " "))
	return strings.Join(rows, "\n")
}

func maxLabelWidth(points []analytics.ChartPoint) int {
	w := 0
	for _, p := range points {
		w = max(w, utf8.RuneCountInString(p.Label))
	}
	return w
}

func padRight(s string, w int) string {
	if pad := w - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func centre(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
