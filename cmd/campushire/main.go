// Package main provides the CampusHireAI command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campushire",
	Short: "Campus hiring platform",
	Long:  "CampusHireAI matches student candidates to placement drives by extracting skills and projects from resume text and ranking candidates with a weighted eligibility score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
