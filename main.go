// Package main is the entry point for the querydash CLI.
package main

import (
	"querydash/cli/cmd"
)

func main() {
	cmd.Execute()
}
