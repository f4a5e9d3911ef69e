// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package analytics

import "math"

// Points zips a result's labels and values into chart points, preserving order.
func Points(r QueryResult) []ChartPoint {
	n := min(len(r.Data.Labels), len(r.Data.Values))
	points := make([]ChartPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, ChartPoint{Label: r.Data.Labels[i], Value: r.Data.Values[i]})
	}
	return points
}

// Total sums the point values.
func Total(points []ChartPoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum
}

// MaxValue returns the largest point value, or 0 for no points.
func MaxValue(points []ChartPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	m := points[0].Value
	for _, p := range points[1:] {
		if p.Value > m {
			m = p.Value
		}
	}
	return m
}

// Percentages returns each point's share of the total, in percent, rounded to
// two decimals. A zero total yields all zeros.
func Percentages(points []ChartPoint) []float64 {
	out := make([]float64, len(points))
	total := Total(points)
	if total == 0 {
		return out
	}
	for i, p := range points {
		out[i] = RoundTo2(p.Value / total * 100)
	}
	return out
}

// RoundTo2 rounds v to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
