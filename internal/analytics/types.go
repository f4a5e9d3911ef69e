// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package analytics turns free-text questions into chart-shaped results.
//
// There is no language understanding involved: a query is classified by
// case-insensitive keyword matching into a chart type, and a second keyword
// pass picks one of a small fixed catalogue of datasets. The Synthesizer
// combines both into a QueryResult stamped with a unique id and the time.
package analytics

import "time"

// ChartType determines which visualization renders a result.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
	ChartArea ChartType = "area"
)

// Valid reports whether c is one of the known chart types.
func (c ChartType) Valid() bool {
	switch c {
	case ChartBar, ChartLine, ChartPie, ChartArea:
		return true
	}
	return false
}

// Series is an ordered categorical series. Labels and Values are positionally
// paired and always have the same length.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Len returns the number of label/value pairs.
func (s Series) Len() int { return len(s.Labels) }

// Valid reports whether s has at least one point and one value per label.
func (s Series) Valid() bool {
	return len(s.Labels) > 0 && len(s.Labels) == len(s.Values)
}

// Clone returns a copy that shares no backing arrays with s.
func (s Series) Clone() Series {
	return Series{
		Labels: append([]string(nil), s.Labels...),
		Values: append([]float64(nil), s.Values...),
	}
}

// QueryResult is one analysed query, ready for rendering. It is never modified
// after the Synthesizer creates it.
type QueryResult struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Data        Series    `json:"data"`
	ChartType   ChartType `json:"chartType"`
	Timestamp   time.Time `json:"timestamp"`
}

// Clone returns a deep copy of r.
func (r QueryResult) Clone() QueryResult {
	r.Data = r.Data.Clone()
	return r
}

// ChartPoint is a single label/value pair for chart rendering.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
