// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"querydash/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

const spinnerInterval = 100 * time.Millisecond

// startInlineSpinner animates frames followed by text on a single line of w
// until the returned stop function is called. Stopping clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	if len(frames) == 0 {
		frames = []string{"|", "/", "-", "\\"}
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		widest := 0
		for i := 0; ; i++ {
			line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
			widest = max(widest, utf8.RuneCountInString(line))
			fmt.Fprintf(w, "\r%s", line)
			select {
			case <-stop:
				fmt.Fprintf(w, "\r%*s\r", widest, "")
				return
			case <-ticker.C:
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}

// startPending shows the loading indicator while a query is processed.
// On a terminal the cursor is hidden and an inline spinner runs; otherwise
// a single status line is written.
func startPending(w io.Writer, text string) func() {
	if !terminal.IsInteractive() {
		fmt.Fprintln(w, pterm.Gray(text))
		return func() {}
	}
	cursor.Hide()
	stopSpin := startInlineSpinner(w, text, pterm.DefaultSpinner.Sequence, spinnerInterval)
	return func() {
		stopSpin()
		cursor.Show()
	}
}
