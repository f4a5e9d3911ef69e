// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"querydash/cli/internal/render"
	"querydash/cli/internal/session"

	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions [filter]",
	Short: "List suggested queries",
	Long:  `Lists the built-in suggested queries. With a filter, only suggestions containing it (case-insensitive) are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := session.FilterSuggestions(session.InitialState(), strings.Join(args, " "))
		fmt.Fprintln(cmd.OutOrStdout(), render.SprintSuggestions(list))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
}
