package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocable/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "Two-cable static equilibrium solver",
	Long: `gocable - Suspended Body Equilibrium Solver

A CLI tool for a body hanging from two cables attached to fixed anchors.

Given the weight of the body and the angle each cable makes with the
horizontal, it resolves:
  - The tension in each cable
  - The position where the body hangs between the anchors
  - Unit conversions between kilograms and newtons

Solved configurations can be stored in and recalled from the record API.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocable v%-47s║\n", version.Version)
		fmt.Println("  ║   Suspended Body Equilibrium Solver                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cable tensions from weight and angles (ΣFx = 0, ΣFy = 0)")
		fmt.Println("    • Body position between the anchors")
		fmt.Println("    • Angle sweeps with plot export")
		fmt.Println("    • Interactive session with save and load")
		fmt.Println("    • Simulation record API (memory or PostgreSQL)")
		fmt.Println()
		fmt.Println("  Use 'gocable --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
