package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-ranker/internal/extract"
	"github.com/jonathan/cv-ranker/internal/ingestion"
	"github.com/jonathan/cv-ranker/internal/llm"
	"github.com/jonathan/cv-ranker/internal/observability"
)

var parseCVCmd = &cobra.Command{
	Use:   "parse-cv",
	Short: "Parse one or more resumes into structured candidate records",
	Long:  "Parse a resume document or a directory of resumes (txt, md, pdf, or html) into structured candidate JSON. Candidate IDs are derived from filenames.",
	RunE:  runParseCV,
}

var (
	parseCVInput   string
	parseCVOutDir  string
	parseCVConfig  string
	parseCVAPIKey  string
	parseCVVerbose bool
)

func init() {
	parseCVCmd.Flags().StringVarP(&parseCVInput, "in", "i", "", "Path to a resume document or directory of resumes (required)")
	parseCVCmd.Flags().StringVar(&parseCVOutDir, "out-dir", "", "Directory for output JSON files (default: stdout)")
	parseCVCmd.Flags().StringVar(&parseCVConfig, "config", "", "Path to config JSON file")
	parseCVCmd.Flags().StringVar(&parseCVAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCVCmd.Flags().BoolVarP(&parseCVVerbose, "verbose", "v", false, "Print a summary of each parsed candidate")
	_ = parseCVCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCVCmd)
}

func runParseCV(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(parseCVConfig)
	if err != nil {
		return err
	}
	if parseCVAPIKey != "" {
		cfg.APIKey = parseCVAPIKey
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	paths, err := collectDocuments(parseCVInput)
	if err != nil {
		return err
	}

	if parseCVOutDir != "" {
		if err := os.MkdirAll(parseCVOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	extractor := extract.NewCVExtractor(client, nil)
	printer := observability.NewPrinter(os.Stderr)

	for _, path := range paths {
		text, _, err := ingestion.ReadDocument(path)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}

		candidate, err := extractor.ExtractCandidate(ctx, text, candidateIDFromPath(path))
		if err != nil {
			return fmt.Errorf("failed to extract candidate from %s: %w", path, err)
		}

		if cfg.DatabaseURL != "" {
			if err := s.SaveCandidate(ctx, candidate); err != nil {
				return fmt.Errorf("failed to save candidate %s: %w", candidate.ID, err)
			}
		}

		if cfg.Verbose || parseCVVerbose {
			printer.PrintCandidate(candidate)
		}

		outPath := ""
		if parseCVOutDir != "" {
			outPath = filepath.Join(parseCVOutDir, candidate.ID+".json")
		}
		if err := writeJSON(outPath, candidate); err != nil {
			return err
		}
		if outPath != "" {
			fmt.Fprintf(os.Stderr, "Parsed %s -> %s\n", path, outPath)
		}
	}

	return nil
}
