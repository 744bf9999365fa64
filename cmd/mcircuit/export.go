//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/mcircuit/exporters"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export netlist...",
	Short: "Export the flattened circuit in a textual gate format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetString("top")
		ascending, _ := cmd.Flags().GetBool("ascending")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		witnessArg, _ := cmd.Flags().GetString("witness")

		var exporter exporters.Exporter
		switch format {
		case "bristol":
			exporter = exporters.Bristol{}
		case "ir1":
			exporter = exporters.IR1{}
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		_, flat, err := loadNetlists[bool](args, top, ascending)
		if err != nil {
			return err
		}

		if len(witnessArg) > 0 {
			witness, err := parseBoolInputs(witnessArg)
			if err != nil {
				return err
			}
			flat, err = exporters.BindWitness(flat, witness)
			if err != nil {
				return err
			}
		}

		out := os.Stdout
		if len(output) > 0 {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return exporters.Export(exporter, flat, out)
	},
}

func init() {
	exportCmd.Flags().String("top", "", "top-level module (default: last)")
	exportCmd.Flags().Bool("ascending", false,
		"register I/O buses in ascending bit order")
	exportCmd.Flags().String("format", "bristol",
		"output format: bristol or ir1")
	exportCmd.Flags().StringP("output", "o", "", "output file")
	exportCmd.Flags().String("witness", "",
		"comma-separated witness values bound over input gates")
	rootCmd.AddCommand(exportCmd)
}
