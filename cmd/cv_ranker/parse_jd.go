package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-ranker/internal/extract"
	"github.com/jonathan/cv-ranker/internal/ingestion"
	"github.com/jonathan/cv-ranker/internal/llm"
	"github.com/jonathan/cv-ranker/internal/observability"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd",
	Short: "Parse a job description into a structured job requirement",
	Long:  "Parse a job description document (txt, md, pdf, or html) into structured JSON with normalized skills, experience, and education requirements.",
	RunE:  runParseJD,
}

var (
	parseJDInput   string
	parseJDOutput  string
	parseJDConfig  string
	parseJDAPIKey  string
	parseJDVerbose bool
)

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDInput, "in", "i", "", "Path to job description document (required)")
	parseJDCmd.Flags().StringVarP(&parseJDOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJDCmd.Flags().StringVar(&parseJDConfig, "config", "", "Path to config JSON file")
	parseJDCmd.Flags().StringVar(&parseJDAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseJDCmd.Flags().BoolVarP(&parseJDVerbose, "verbose", "v", false, "Print a summary of the parsed job")
	_ = parseJDCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(parseJDConfig)
	if err != nil {
		return err
	}
	if parseJDAPIKey != "" {
		cfg.APIKey = parseJDAPIKey
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	text, meta, err := ingestion.ReadDocument(parseJDInput)
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}
	if cfg.Verbose || parseJDVerbose {
		fmt.Fprintf(os.Stderr, "Ingested %s (%s, %d chars)\n", meta.SourcePath, meta.Format, meta.CharCount)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := extract.NewJDExtractor(client, nil)
	job, err := extractor.ExtractJobRequirement(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to extract job requirement: %w", err)
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if cfg.DatabaseURL != "" {
		if err := s.SaveJob(ctx, job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved job %s\n", job.ID)
	}

	if cfg.Verbose || parseJDVerbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirement(job)
	}

	return writeJSON(parseJDOutput, job)
}
