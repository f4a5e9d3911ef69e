// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package processor

import "querydash/cli/internal/analytics"

// Status is the lifecycle state of a single submission.
type Status int

const (
	StatusPending Status = iota
	StatusFulfilled
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFulfilled:
		return "fulfilled"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// Outcome is the tagged result of a submission. Result is set only when
// Status is StatusFulfilled; Message only when it is StatusRejected.
type Outcome struct {
	Status  Status
	Result  *analytics.QueryResult
	Message string
}

// Fulfilled wraps a successful result.
func Fulfilled(r analytics.QueryResult) Outcome {
	return Outcome{Status: StatusFulfilled, Result: &r}
}

// Rejected wraps a failure message.
func Rejected(msg string) Outcome {
	return Outcome{Status: StatusRejected, Message: msg}
}

// Resolved reports whether the outcome is final.
func (o Outcome) Resolved() bool { return o.Status != StatusPending }
