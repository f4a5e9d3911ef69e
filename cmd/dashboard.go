// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	qerrors "querydash/cli/internal/errors"
	"querydash/cli/internal/session"
	"querydash/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const promptText = "Ask › "

// dashboardCmd runs the interactive session.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Start an interactive analytics session",
	Long: `Starts an interactive session. Type a question and press Enter to analyze it.
Lines starting with ':' are commands; type :help to list them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runDashboard(ctx, a, cmd.InOrStdin())
	},
}

var errQuit = errors.New("quit")

// dashboard is one interactive session bound to a store.
type dashboard struct {
	a           *app
	updates     chan session.State
	interactive bool
}

func runDashboard(ctx context.Context, a *app, in io.Reader) error {
	d := &dashboard{
		a:           a,
		updates:     make(chan session.State, 32),
		interactive: terminal.IsInteractive(),
	}
	unsubscribe := a.store.Subscribe(func(st session.State) {
		select {
		case d.updates <- st:
		default:
		}
	})
	defer unsubscribe()

	a.view.Header()
	a.view.Suggestions(a.store.Snapshot().Suggestions)
	d.println("")
	d.println(pterm.Gray("Type a question, :N to pick a suggestion, or :help for commands."))

	reader := bufio.NewReader(in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		d.prompt()
		line, readErr := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if d.interactive {
			terminal.ClearPreviousLines(a.view.Out, promptWidth(line))
		}

		if strings.TrimSpace(line) != "" || readErr == nil {
			if err := d.handle(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

// promptWidth is the display width of the prompt line after line was typed.
func promptWidth(line string) int {
	return terminal.DisplayWidth(promptText + line)
}

func (d *dashboard) println(s string) {
	fmt.Fprintln(d.a.view.Out, s)
}

func (d *dashboard) prompt() {
	if q := d.a.store.Snapshot().CurrentQuery; q != "" {
		d.println(pterm.Gray("Press Enter to analyze: " + q))
	}
	fmt.Fprint(d.a.view.Out, pterm.NewStyle(pterm.FgMagenta, pterm.Bold).Sprint(promptText))
}

// handle runs one line of input.
func (d *dashboard) handle(ctx context.Context, line string) error {
	text := strings.TrimSpace(line)
	if !strings.HasPrefix(text, ":") {
		if text != "" {
			d.a.store.SetCurrentQuery(text)
		}
		return d.submit(ctx)
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(text, ":"), " ")
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(name); err == nil {
		return d.pick(n)
	}

	st := d.a.store.Snapshot()
	switch name {
	case "q", "quit", "exit":
		return errQuit
	case "help", "h":
		d.help()
	case "history":
		d.a.view.History(st.Queries)
	case "suggest", "suggestions":
		d.a.view.Suggestions(session.FilterSuggestions(st, arg))
	case "results":
		d.a.view.View(st)
	case "clear":
		d.a.store.ClearResults()
		pterm.Fprintln(d.a.view.Out, pterm.Info.Sprint("Results cleared"))
	case "clear-history":
		d.a.store.ClearHistory()
		pterm.Fprintln(d.a.view.Out, pterm.Info.Sprint("History cleared"))
	case "dismiss":
		d.a.store.ClearError()
		d.a.view.View(d.a.store.Snapshot())
	case "reset":
		d.a.store.Reset()
		pterm.Fprintln(d.a.view.Out, pterm.Info.Sprint("Session reset"))
	default:
		pterm.Fprintln(d.a.view.Out, pterm.Warning.Sprint("Unknown command :"+name+" (try :help)"))
	}
	return nil
}

// pick copies suggestion n (1-based) into the query box.
func (d *dashboard) pick(n int) error {
	st := d.a.store.Snapshot()
	if n < 1 || n > len(st.Suggestions) {
		pterm.Fprintln(d.a.view.Out, pterm.Warning.Sprintf("No suggestion :%d", n))
		return nil
	}
	d.a.store.SelectSuggestion(n - 1)
	return nil
}

// submit sends the current query and blocks until it settles.
func (d *dashboard) submit(ctx context.Context) error {
	d.drain()
	if _, err := d.a.store.SubmitCurrent(ctx); err != nil {
		if qerrors.IsKind(err, qerrors.EmptyQuery) {
			pterm.Fprintln(d.a.view.Out, pterm.Warning.Sprint("Enter a query or pick a suggestion first"))
			return nil
		}
		return err
	}

	stopPending := startPending(d.a.view.Out, pendingText)
	st, ok := d.settled(ctx)
	stopPending()
	if !ok {
		return nil
	}

	if st.HasError() {
		d.a.view.NotifyFailure(st.Error)
	} else {
		d.a.view.NotifySuccess()
	}
	d.a.view.View(st)
	return nil
}

// settled returns the first published state that is no longer loading.
func (d *dashboard) settled(ctx context.Context) (session.State, bool) {
	for {
		select {
		case st := <-d.updates:
			if !st.IsLoading {
				return st, true
			}
		case <-ctx.Done():
			return session.State{}, false
		}
	}
}

func (d *dashboard) drain() {
	for {
		select {
		case <-d.updates:
		default:
			return
		}
	}
}

func (d *dashboard) help() {
	rows := [][]string{
		{"Command", "Action"},
		{"<question>", "Analyze the question"},
		{"Enter", "Analyze the query in the box"},
		{":N", "Put suggestion N in the query box"},
		{":suggest [text]", "List suggestions, optionally filtered"},
		{":results", "Show the results pane"},
		{":history", "Show recent queries"},
		{":clear", "Remove all results"},
		{":clear-history", "Remove all history entries"},
		{":dismiss", "Dismiss the current error"},
		{":reset", "Start a fresh session"},
		{":quit", "Leave the dashboard"},
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return
	}
	d.println(out)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
