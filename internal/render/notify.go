// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"querydash/cli/internal/logging"

	"github.com/pterm/pterm"
)

// SuccessMessage is shown after a query resolves with a result.
const SuccessMessage = "Query processed successfully"

// NotifySuccess prints the success notification.
func (r *Renderer) NotifySuccess() {
	r.println(SprintSuccess())
}

// NotifyFailure prints the failure notification for msg.
func (r *Renderer) NotifyFailure(msg string) {
	r.println(SprintFailure(msg))
}

// SprintSuccess renders the success notification box.
func SprintSuccess() string {
	title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Success")
	return pterm.DefaultBox.WithTitle(title).Sprint(pterm.Green("✓ ") + SuccessMessage)
}

// SprintFailure renders the failure notification box.
func SprintFailure(msg string) string {
	title := pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Error")
	return pterm.DefaultBox.WithTitle(title).Sprint(logging.FormatFailure(msg))
}
