// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides utilities for terminal operations such as measuring
// the width and clearing previously printed text.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultWidth is used when stdout is not a terminal.
const DefaultWidth = 80

// Width returns the current terminal width, or DefaultWidth when unavailable.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

// IsInteractive reports whether stdin and stdout are both attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// LinesUsed returns how many terminal rows textLength characters occupy at the
// given width, plus the row the cursor moves to after Enter.
func LinesUsed(textLength, width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	return lines + 1
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ClearPreviousLines clears a prompt and the user's answer from the terminal.
// It moves up and clears each row the text occupied at the current width.
func ClearPreviousLines(w io.Writer, textLength int) {
	clearLines(w, LinesUsed(textLength, Width()))
}

func clearLines(w io.Writer, linesToClear int) {
	for i := 0; i < linesToClear; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Fprint(w, "\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
