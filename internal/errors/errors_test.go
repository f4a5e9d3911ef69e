// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsKind(t *testing.T) {
	base := stderrors.New("boom")
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{name: "direct", err: New(EmptyQuery, "empty"), kind: EmptyQuery, want: true},
		{name: "other kind", err: New(EmptyQuery, "empty"), kind: ProcessingFailed, want: false},
		{name: "wrapped with fmt", err: fmt.Errorf("submit: %w", New(SubmissionInFlight, "busy")), kind: SubmissionInFlight, want: true},
		{name: "plain error", err: base, kind: ProcessingFailed, want: false},
		{name: "nil", err: nil, kind: ProcessingFailed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsIsByKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Wrap(ProcessingFailed, "failed", stderrors.New("cause")))
	if !stderrors.Is(err, New(ProcessingFailed, "")) {
		t.Fatalf("errors.Is should match on kind")
	}
	if stderrors.Is(err, New(EmptyQuery, "")) {
		t.Fatalf("errors.Is should not match a different kind")
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *E
		want string
	}{
		{name: "without cause", err: New(EmptyQuery, "query is empty"), want: "empty_query: query is empty"},
		{name: "with cause", err: Wrap(InvalidConfig, "bad latency", stderrors.New("negative")), want: "invalid_config: bad latency: negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(fmt.Errorf("x: %w", New(ProcessingFailed, "Failed to process query. Please try again."))); got != "Failed to process query. Please try again." {
		t.Errorf("Message() = %q", got)
	}
	if got := Message(stderrors.New("plain")); got != "plain" {
		t.Errorf("Message() = %q, want plain", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}
