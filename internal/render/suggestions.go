// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suggestions prints the numbered suggestion list.
func (r *Renderer) Suggestions(list []string) {
	r.println(SprintSuggestions(list))
}

// SprintSuggestions renders suggestions as ":N text" lines. Numbers are
// 1-based and match the dashboard's selection commands.
func SprintSuggestions(list []string) string {
	if len(list) == 0 {
		return pterm.NewStyle(pterm.FgGray).Sprint("No suggestions match.")
	}
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, pterm.NewStyle(pterm.Bold).Sprint("Suggested Queries"))
	for i, s := range list {
		num := pterm.NewStyle(pterm.FgMagenta).Sprint(fmt.Sprintf(":%d", i+1))
		lines = append(lines, "  "+num+" "+s)
	}
	return strings.Join(lines, "\n")
}
