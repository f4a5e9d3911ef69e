// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render draws session state to the terminal. It only reads
// snapshots; nothing here changes the session.
package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"querydash/cli/internal/session"
	"querydash/cli/internal/terminal"

	"github.com/pterm/pterm"
)

// Renderer writes dashboard output to Out.
type Renderer struct {
	Out   io.Writer
	Width int
	Now   func() time.Time
}

// New creates a renderer for stdout sized to the terminal.
func New() *Renderer {
	return &Renderer{Out: os.Stdout, Width: terminal.Width(), Now: time.Now}
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return terminal.DefaultWidth
	}
	return r.Width
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.Out, s)
}

// Header prints the dashboard banner.
func (r *Renderer) Header() {
	badge := pterm.NewStyle(pterm.BgMagenta, pterm.FgWhite, pterm.Bold).Sprint(" AI ")
	title := pterm.NewStyle(pterm.Bold).Sprint("Gen AI Analytics")
	r.println(badge + " " + title)
	r.println("")
}

// View prints the results pane for st: the error, a loading notice, an
// empty-state hint, or every result, in that order of precedence.
func (r *Renderer) View(st session.State) {
	r.println(SprintView(st, r.width()))
}

// SprintView renders the results pane as a string.
func SprintView(st session.State, width int) string {
	switch st.View() {
	case session.ViewError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Error") + "\n" + st.Error
	case session.ViewLoading:
		return pterm.NewStyle(pterm.FgGray).Sprint("Our AI is analyzing your request and generating insights...")
	case session.ViewEmpty:
		return pterm.NewStyle(pterm.FgGray).Sprint("Enter a query above to generate AI-powered analysis and visualizations of your data.")
	}
	out := ""
	for i, res := range st.Results {
		if i > 0 {
			out += "\n"
		}
		out += SprintResult(res, width)
	}
	return out
}
