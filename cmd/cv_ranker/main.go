// Package main provides the cv_ranker CLI: parse job descriptions and
// resumes into structured records, then rank candidates against a job.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_ranker",
	Short: "CV search and ranking engine",
	Long:  "cv_ranker parses job descriptions and resumes into structured records and ranks candidates against a job using weighted rule-based scoring, optionally blended with semantic similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
