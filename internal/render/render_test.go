// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"querydash/cli/internal/analytics"
	"querydash/cli/internal/session"

	"github.com/pterm/pterm"
)

func plain(t *testing.T) {
	t.Helper()
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
}

func result(query string) analytics.QueryResult {
	s := &analytics.Synthesizer{
		IDFunc: func() string { return "id-1" },
		Clock:  func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	return s.Synthesize(query)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12000, "12,000"},
		{3.2, "3.2"},
		{45, "45"},
		{4.75, "4.75"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSprintResultChartTypes(t *testing.T) {
	plain(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"bar", "Compare conversion rates", []string{"Conversion Rates by Channel", "bar", "Email", "5.1", "█"}},
		{"line", "Revenue trend", []string{"Revenue Trends Analysis", "line", "●", "Jan", "30,000"}},
		{"pie", "Engagement distribution", []string{"User Engagement by Device", "pie", "Desktop", "45%"}},
		{"area", "Retention numbers", []string{"Customer Retention by Segment", "area", "Annual", "█"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SprintResult(result(tt.query), 80)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestBarChartScalesToLargest(t *testing.T) {
	plain(t)

	points := []analytics.ChartPoint{{Label: "a", Value: 10}, {Label: "b", Value: 5}, {Label: "c", Value: 0}}
	lines := strings.Split(barChart(points, 40), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	full := strings.Count(lines[0], "█")
	half := strings.Count(lines[1], "█")
	if full == 0 || half != full/2 {
		t.Errorf("bars = %d and %d, want second to be half the first", full, half)
	}
	if strings.Count(lines[2], "█") != 0 {
		t.Errorf("zero value drew a bar: %q", lines[2])
	}
}

func TestShareChartZeroTotal(t *testing.T) {
	plain(t)

	out := shareChart([]analytics.ChartPoint{{Label: "x", Value: 0}}, 80)
	if strings.Contains(out, "█") || !strings.Contains(out, "0%") {
		t.Errorf("unexpected output for zero total: %q", out)
	}
}

func TestColumnChartEmpty(t *testing.T) {
	plain(t)

	out := columnChart(nil, true)
	if strings.Contains(out, "█") {
		t.Errorf("empty chart drew columns: %q", out)
	}
}

func TestSprintViewPrecedence(t *testing.T) {
	plain(t)

	withResult := session.InitialState()
	withResult.Results = []analytics.QueryResult{result("revenue")}

	tests := []struct {
		name string
		mod  func(*session.State)
		want string
	}{
		{"empty", func(s *session.State) {}, "Enter a query above"},
		{"loading", func(s *session.State) { s.IsLoading = true }, "analyzing your request"},
		{"error over loading", func(s *session.State) { s.IsLoading = true; s.Error = "boom" }, "boom"},
		{"results", func(s *session.State) { *s = withResult.Clone() }, "Revenue Trends Analysis"},
		{"loading over results", func(s *session.State) { *s = withResult.Clone(); s.IsLoading = true }, "analyzing your request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := session.InitialState()
			tt.mod(&st)
			if out := SprintView(st, 80); !strings.Contains(out, tt.want) {
				t.Errorf("SprintView() = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestSprintHistory(t *testing.T) {
	plain(t)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	if out := SprintHistory(nil, now); !strings.Contains(out, "Your query history will appear here") {
		t.Errorf("empty history = %q", out)
	}

	queries := []session.Query{
		{ID: "2", Text: "Show revenue", Timestamp: now.Add(-3 * time.Minute)},
		{ID: "1", Text: "Show\x1b[31m retention", Timestamp: now.Add(-2 * time.Hour)},
	}
	out := SprintHistory(queries, now)
	for _, w := range []string{"Show revenue", "3 minutes ago", "Show retention", "2 hours ago"} {
		if !strings.Contains(out, w) {
			t.Errorf("history missing %q:\n%s", w, out)
		}
	}
	if strings.Index(out, "Show revenue") > strings.Index(out, "Show retention") {
		t.Errorf("history not in given order:\n%s", out)
	}
}

func TestSprintSuggestions(t *testing.T) {
	plain(t)

	out := SprintSuggestions(session.DefaultSuggestions)
	for i, s := range session.DefaultSuggestions {
		if !strings.Contains(out, s) {
			t.Errorf("missing suggestion %q", s)
		}
		if !strings.Contains(out, ":"+string(rune('1'+i))) {
			t.Errorf("missing number for suggestion %d", i+1)
		}
	}
	if out := SprintSuggestions(nil); !strings.Contains(out, "No suggestions") {
		t.Errorf("empty list = %q", out)
	}
}

func TestNotifications(t *testing.T) {
	plain(t)

	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}
	r.NotifySuccess()
	r.NotifyFailure("Failed to process query. Please try again.")

	out := buf.String()
	if !strings.Contains(out, SuccessMessage) {
		t.Errorf("missing success message:\n%s", out)
	}
	if !strings.Contains(out, "Error: Failed to process query. Please try again.") {
		t.Errorf("missing failure message:\n%s", out)
	}
}

func TestRendererDefaults(t *testing.T) {
	r := &Renderer{}
	if r.width() <= 0 {
		t.Error("width() should fall back to a positive default")
	}
	if r.now().IsZero() {
		t.Error("now() should fall back to the wall clock")
	}
}
