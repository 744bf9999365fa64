//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/mcircuit/eval"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval netlist...",
	Short: "Evaluate the flattened circuit in the clear",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetString("top")
		ascending, _ := cmd.Flags().GetBool("ascending")
		arith, _ := cmd.Flags().GetBool("arith")
		inputArg, _ := cmd.Flags().GetString("inputs")
		arithArg, _ := cmd.Flags().GetString("arith-inputs")

		boolInputs, err := parseBoolInputs(inputArg)
		if err != nil {
			return err
		}
		arithInputs, err := parseArithInputs(arithArg)
		if err != nil {
			return err
		}

		_, program, err := loadProgram(args, top, ascending, arith)
		if err != nil {
			return err
		}

		if err := eval.Evaluate(program, boolInputs, arithInputs); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	addNetlistFlags(evalCmd)
	evalCmd.Flags().String("inputs", "",
		"comma-separated boolean input values")
	evalCmd.Flags().String("arith-inputs", "",
		"comma-separated 64-bit input values")
	rootCmd.AddCommand(evalCmd)
}
