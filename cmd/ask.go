// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"

	qerrors "querydash/cli/internal/errors"

	"github.com/spf13/cobra"
)

const pendingText = "Our AI is analyzing your request..."

var askJSON bool

// askCmd answers a single query and exits.
var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Answer one analytics query",
	Long: `Submits a natural-language query, waits for the simulated processing
to finish and prints the charted result. Exits non-zero if processing fails.`,
	Example: `  querydash ask "Show me revenue trends for the last 6 months"
  querydash ask --json "Compare conversion rates across marketing channels"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runAsk(ctx, a, strings.Join(args, " "), askJSON)
	},
}

// askResponse is the --json output shape.
type askResponse struct {
	Query  string `json:"query"`
	Status string `json:"status"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runAsk(ctx context.Context, a *app, query string, asJSON bool) error {
	a.store.SetCurrentQuery(query)
	sub, err := a.store.SubmitCurrent(ctx)
	if err != nil {
		return err
	}

	var stopPending func()
	if !asJSON {
		stopPending = startPending(a.view.Out, pendingText)
	}
	outcome, waitErr := sub.Wait(ctx)
	if stopPending != nil {
		stopPending()
	}

	if asJSON {
		resp := askResponse{Query: sub.Query(), Status: outcome.Status.String()}
		if outcome.Result != nil {
			resp.Result = outcome.Result
		}
		if waitErr != nil {
			resp.Error = qerrors.Message(waitErr)
		}
		enc := json.NewEncoder(a.view.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
		if waitErr != nil {
			return silent(waitErr)
		}
		return nil
	}

	if waitErr != nil {
		a.view.NotifyFailure(qerrors.Message(waitErr))
		return silent(waitErr)
	}
	a.view.NotifySuccess()
	a.view.View(a.store.Snapshot())
	return nil
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the outcome as JSON")
	rootCmd.AddCommand(askCmd)
}
