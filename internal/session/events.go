// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"time"

	"querydash/cli/internal/analytics"
)

// EventType enumerates the session transitions.
type EventType string

const (
	// EventPending marks the start of a submission.
	EventPending EventType = "pending"
	// EventFulfilled records a successful submission.
	EventFulfilled EventType = "fulfilled"
	// EventRejected records a failed submission.
	EventRejected EventType = "rejected"
	// EventSetQuery replaces the text in the query box.
	EventSetQuery EventType = "set_query"
	// EventSelectSuggestion copies a suggestion into the query box.
	EventSelectSuggestion EventType = "select_suggestion"
	// EventClearError dismisses the current error.
	EventClearError EventType = "clear_error"
	// EventClearResults empties the result list.
	EventClearResults EventType = "clear_results"
	// EventClearHistory empties the query history.
	EventClearHistory EventType = "clear_history"
	// EventReset returns the session to its initial state.
	EventReset EventType = "reset"
)

// lifecycle reports whether t is driven by a submission rather than by the user.
func (t EventType) lifecycle() bool {
	switch t {
	case EventPending, EventFulfilled, EventRejected:
		return true
	}
	return false
}

// UnknownErrorMessage replaces an empty rejection message so a failed
// submission always leaves a visible error.
const UnknownErrorMessage = "An unknown error occurred"

// Event is a single transition request. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// Fulfilled
	Result *analytics.QueryResult
	At     time.Time

	// Rejected
	Message string

	// SetQuery; for Fulfilled, the submitted text used when the query box is empty
	Text string

	// SelectSuggestion
	Index int
}

func Pending() Event { return Event{Type: EventPending} }

func Fulfilled(r analytics.QueryResult, submitted string, at time.Time) Event {
	return Event{Type: EventFulfilled, Result: &r, Text: submitted, At: at}
}

func Rejected(message string) Event { return Event{Type: EventRejected, Message: message} }

func SetQuery(text string) Event { return Event{Type: EventSetQuery, Text: text} }

func SelectSuggestion(index int) Event { return Event{Type: EventSelectSuggestion, Index: index} }

func ClearError() Event { return Event{Type: EventClearError} }

func ClearResults() Event { return Event{Type: EventClearResults} }

func ClearHistory() Event { return Event{Type: EventClearHistory} }

func Reset() Event { return Event{Type: EventReset} }
