//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/markkurossi/mcircuit/eval"
	"github.com/spf13/cobra"
)

var vcdCmd = &cobra.Command{
	Use:   "vcd netlist...",
	Short: "Evaluate the circuit and write a VCD waveform trace",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetString("top")
		ascending, _ := cmd.Flags().GetBool("ascending")
		arith, _ := cmd.Flags().GetBool("arith")
		inputArg, _ := cmd.Flags().GetString("inputs")
		arithArg, _ := cmd.Flags().GetString("arith-inputs")
		output, _ := cmd.Flags().GetString("output")

		boolInputs, err := parseBoolInputs(inputArg)
		if err != nil {
			return err
		}
		arithInputs, err := parseArithInputs(arithArg)
		if err != nil {
			return err
		}

		namer, program, err := loadProgram(args, top, ascending, arith)
		if err != nil {
			return err
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

		dumper := eval.NewVCD(out, program, namer, namer)

		if err := eval.Trace(program, boolInputs, arithInputs,
			dumper); err != nil {
			return err
		}
		return dumper.Finish()
	},
}

func init() {
	addNetlistFlags(vcdCmd)
	vcdCmd.Flags().String("inputs", "",
		"comma-separated boolean input values")
	vcdCmd.Flags().String("arith-inputs", "",
		"comma-separated 64-bit input values")
	vcdCmd.Flags().StringP("output", "o", "", "output file")
	rootCmd.AddCommand(vcdCmd)
}
