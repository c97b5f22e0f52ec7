// Package main provides the entry point for the talentgraph scoring service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentgraph",
	Short: "Candidate ranking and team placement scoring service",
	Long:  "talentgraph ranks candidates against a role's skill requirements and recommends team placements, blending text similarity, skill coverage, graph relatedness, and personality fit into comparable scores.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
