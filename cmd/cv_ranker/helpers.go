package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/cv-ranker/internal/config"
	"github.com/jonathan/cv-ranker/internal/ingestion"
	"github.com/jonathan/cv-ranker/internal/store"
	"github.com/jonathan/cv-ranker/internal/types"
)

// loadCLIConfig loads the optional config file, fills gaps from the
// environment, and validates the result.
func loadCLIConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the PostgreSQL store when a database URL is configured and
// falls back to the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemoryStore(), nil
	}
	return store.Connect(ctx, cfg.DatabaseURL)
}

// writeJSON marshals v with indentation and writes it to path, or to stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return err
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// collectDocuments returns the document paths under in. A single file is
// returned as-is; a directory yields its supported documents sorted by name.
func collectDocuments(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", in, err)
	}

	if !info.IsDir() {
		return []string{in}, nil
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", in, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, supported := range ingestion.SupportedExtensions {
			if ext == supported {
				paths = append(paths, filepath.Join(in, entry.Name()))
				break
			}
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s", in)
	}
	return paths, nil
}

// candidateIDFromPath derives a stable candidate ID from the source filename.
func candidateIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readJobFile loads a JobRequirement previously written by parse-jd.
func readJobFile(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &job, nil
}

// readCandidateFiles loads CandidateRecord JSON files previously written by
// parse-cv from a directory.
func readCandidateFiles(dir string) ([]*types.CandidateRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []*types.CandidateRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
		}
		var candidate types.CandidateRecord
		if err := json.Unmarshal(data, &candidate); err != nil {
			return nil, fmt.Errorf("failed to parse candidate file %s: %w", path, err)
		}
		candidates = append(candidates, &candidate)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate JSON files found in %s", dir)
	}
	return candidates, nil
}
