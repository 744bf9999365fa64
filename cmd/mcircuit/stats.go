//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/markkurossi/mcircuit"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats netlist...",
	Short: "Print a gate census of the flattened circuit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetString("top")
		ascending, _ := cmd.Flags().GetBool("ascending")
		arith, _ := cmd.Flags().GetBool("arith")

		_, program, err := loadProgram(args, top, ascending, arith)
		if err != nil {
			return err
		}

		stats := mcircuit.Analyze[*mcircuit.Stats](mcircuit.NewStats(),
			program)
		stats.Print(os.Stdout)
		return nil
	},
}

func init() {
	addNetlistFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

// addNetlistFlags registers the flags shared by every netlist-consuming
// subcommand.
func addNetlistFlags(cmd *cobra.Command) {
	cmd.Flags().String("top", "", "top-level module (default: last)")
	cmd.Flags().Bool("ascending", false,
		"register I/O buses in ascending bit order")
	cmd.Flags().Bool("arith", false,
		"parse gates on the 64-bit integer ring instead of GF(2)")
}
