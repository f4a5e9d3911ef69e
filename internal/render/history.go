// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"fmt"
	"strings"
	"time"

	"querydash/cli/internal/logging"
	"querydash/cli/internal/session"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

const historyTextWidth = 60

// History prints the query history, newest first.
func (r *Renderer) History(queries []session.Query) {
	r.println(SprintHistory(queries, r.now()))
}

// SprintHistory renders the history list with times relative to now.
func SprintHistory(queries []session.Query, now time.Time) string {
	title := pterm.NewStyle(pterm.Bold).Sprint("Recent Queries")
	if len(queries) == 0 {
		return title + "\n" + pterm.NewStyle(pterm.FgGray).Sprint("Your query history will appear here")
	}

	items := make([]pterm.BulletListItem, 0, len(queries))
	for _, q := range queries {
		when := humanize.RelTime(q.Timestamp, now, "ago", "from now")
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("%s %s", logging.Truncate(logging.Sanitize(q.Text), historyTextWidth), pterm.Gray("("+when+")")),
		})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return title
	}
	return title + "\n" + strings.TrimRight(list, "\n")
}
