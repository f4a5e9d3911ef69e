// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"querydash/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long:  `Settings live in a JSON file in the user config directory. Environment variables and flags override them per run.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		rows := [][]string{{"Key", "Value"}}
		for _, k := range config.Keys {
			v, _ := cfg.Get(k)
			rows = append(rows, []string{k, v})
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change a setting",
	Long:      "Changes a setting and saves it. Keys: " + strings.Join(config.Keys, ", "),
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		v, _ := cfg.Get(args[0])
		pterm.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("%s = %s", args[0], v))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
