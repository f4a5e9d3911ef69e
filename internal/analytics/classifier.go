// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package analytics

import "strings"

// chartRules are evaluated in order; the first rule with a matching keyword wins.
var chartRules = []struct {
	chart    ChartType
	keywords []string
}{
	{ChartPie, []string{"pie", "segment", "distribution"}},
	{ChartLine, []string{"trend", "time", "over"}},
	{ChartBar, []string{"compare", "comparison"}},
}

// ClassifyChartType picks a chart type from keywords in the query.
// Matching is a case-insensitive substring test; queries with no keyword
// (including empty ones) get an area chart.
func ClassifyChartType(query string) ChartType {
	q := strings.ToLower(query)
	for _, rule := range chartRules {
		if containsAny(q, rule.keywords) {
			return rule.chart
		}
	}
	return ChartArea
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
