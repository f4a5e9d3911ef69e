// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"querydash/cli/internal/analytics"
)

// Reduce applies ev to s and returns the new state. s is not modified.
// Unknown events, and fulfilled events without a result or with an empty or
// ragged series, leave the state unchanged.
func Reduce(s State, ev Event) State {
	next := s.Clone()

	switch ev.Type {
	case EventPending:
		next.IsLoading = true
		next.Error = ""

	case EventFulfilled:
		if ev.Result == nil || !ev.Result.Data.Valid() {
			return next
		}
		text := next.CurrentQuery
		if text == "" {
			text = ev.Text
		}
		result := ev.Result.Clone()
		next.IsLoading = false
		next.Results = append([]analytics.QueryResult{result}, next.Results...)
		next.Queries = append([]Query{{ID: result.ID, Text: text, Timestamp: ev.At}}, next.Queries...)
		next.CurrentQuery = ""

	case EventRejected:
		next.IsLoading = false
		next.Error = ev.Message
		if next.Error == "" {
			next.Error = UnknownErrorMessage
		}

	case EventSetQuery:
		next.CurrentQuery = ev.Text

	case EventSelectSuggestion:
		if ev.Index >= 0 && ev.Index < len(next.Suggestions) {
			next.CurrentQuery = next.Suggestions[ev.Index]
		}

	case EventClearError:
		next.Error = ""

	case EventClearResults:
		next.Results = []analytics.QueryResult{}

	case EventClearHistory:
		next.Queries = []Query{}

	case EventReset:
		fresh := InitialState()
		fresh.Suggestions = next.Suggestions
		next = fresh
	}

	return next
}
