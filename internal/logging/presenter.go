// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	qerrors "querydash/cli/internal/errors"

	"github.com/pterm/pterm"
)

// PresentError formats an error for user display with sanitising.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := Sanitize(qerrors.Message(err))
	if context == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}

// FormatFailure formats a rejected submission in a user-friendly way.
func FormatFailure(errMsg string) string {
	var builder strings.Builder

	detail := Sanitize(errMsg)
	if detail == "" {
		detail = "unknown failure"
	}
	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Error: "))
	builder.WriteString(detail)
	builder.WriteString("\n\n")
	builder.WriteString("Nothing was added to your results or history.\n")
	builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please submit the query again"))

	return builder.String()
}
