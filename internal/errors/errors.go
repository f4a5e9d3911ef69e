// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind and a human-friendly message, and may
// wrap an underlying cause. Callers match on kind with the standard errors.Is:
//
//	if errors.Is(err, qerrors.New(qerrors.EmptyQuery, "")) { ... }
//
// or, more conveniently, with IsKind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// EmptyQuery indicates a submission with no non-whitespace text.
	EmptyQuery Kind = "empty_query"
	// ProcessingFailed indicates the query processor rejected a submission.
	ProcessingFailed Kind = "processing_failed"
	// SubmissionInFlight indicates a submission was attempted while another is pending.
	SubmissionInFlight Kind = "submission_in_flight"
	// SessionReset indicates a submission was discarded because the session was reset.
	SessionReset Kind = "session_reset"
	// InvalidConfig indicates a configuration value failed validation.
	InvalidConfig Kind = "invalid_config"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// IsKind reports whether any error in err's chain is an *E with the given kind.
func IsKind(err error, kind Kind) bool {
	var e *E
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Message returns the human-friendly message of the first *E in err's chain,
// falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
