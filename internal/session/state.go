// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the dashboard's state and the transitions that change it.
//
// State is a plain value. Every change goes through Reduce, a pure function
// from (State, Event) to State, which keeps the rules testable without a UI.
// Store wraps a State for concurrent use, notifies subscribers after each
// transition, and drives submissions through the query processor.
package session

import (
	"strings"
	"time"

	"querydash/cli/internal/analytics"
)

// DefaultSuggestions seed every new session.
var DefaultSuggestions = []string{
	"Show me revenue trends for the last 6 months",
	"Analyze user engagement by device type",
	"Compare conversion rates across marketing channels",
	"Visualize customer retention by segment",
	"What is the sentiment analysis of recent user feedback?",
}

// Query is a history entry for a successful submission. Its ID matches the
// ID of the result it produced.
type Query struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// State is a snapshot of the dashboard session. Results and Queries are
// ordered most recent first. An empty Error means no error.
type State struct {
	CurrentQuery string                  `json:"currentQuery"`
	Suggestions  []string                `json:"suggestions"`
	IsLoading    bool                    `json:"isLoading"`
	Results      []analytics.QueryResult `json:"results"`
	Queries      []Query                 `json:"queries"`
	Error        string                  `json:"error,omitempty"`
}

// InitialState returns a fresh session seeded with the default suggestions.
func InitialState() State {
	return State{
		Suggestions: append([]string(nil), DefaultSuggestions...),
		Results:     []analytics.QueryResult{},
		Queries:     []Query{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Suggestions = make([]string, len(s.Suggestions))
	copy(out.Suggestions, s.Suggestions)
	out.Queries = make([]Query, len(s.Queries))
	copy(out.Queries, s.Queries)
	out.Results = make([]analytics.QueryResult, len(s.Results))
	for i, r := range s.Results {
		out.Results[i] = r.Clone()
	}
	return out
}

// HasError reports whether the last submission failed.
func (s State) HasError() bool { return s.Error != "" }

// Latest returns the most recent result, if any.
func (s State) Latest() (analytics.QueryResult, bool) {
	if len(s.Results) == 0 {
		return analytics.QueryResult{}, false
	}
	return s.Results[0], true
}

// View is what the results pane should show for a state.
type View int

const (
	ViewEmpty View = iota
	ViewLoading
	ViewError
	ViewResults
)

// View picks the results pane content. An error takes precedence over
// loading, and loading over the result list.
func (s State) View() View {
	switch {
	case s.HasError():
		return ViewError
	case s.IsLoading:
		return ViewLoading
	case len(s.Results) == 0:
		return ViewEmpty
	default:
		return ViewResults
	}
}

// FilterSuggestions returns the suggestions containing text, ignoring case.
// Empty text matches every suggestion.
func FilterSuggestions(s State, text string) []string {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]string, 0, len(s.Suggestions))
	for _, sug := range s.Suggestions {
		if strings.Contains(strings.ToLower(sug), needle) {
			out = append(out, sug)
		}
	}
	return out
}
