//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Command mcircuit is a toolchain front-end for gate-level circuit
// programs: it parses BLIF netlists, flattens their module
// hierarchy, and evaluates, analyzes, or exports the resulting flat
// gate list.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mcircuit",
	Short: "Gate-level circuit toolchain front-end",
	Long: `Parses BLIF netlists into flat gate-list programs and evaluates,
analyzes, or exports them for secure-computation back ends.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
