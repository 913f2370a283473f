package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-ranker/internal/config"
	"github.com/jonathan/cv-ranker/internal/observability"
	"github.com/jonathan/cv-ranker/internal/ranking"
	"github.com/jonathan/cv-ranker/internal/scoring"
	"github.com/jonathan/cv-ranker/internal/semantic"
	"github.com/jonathan/cv-ranker/internal/skills"
	"github.com/jonathan/cv-ranker/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job requirement",
	Long:  "Score every candidate against a job requirement and print the full ranking. Candidates come from a directory of parsed JSON files or from the configured database; semantic blending is enabled when a semantic service is configured and the weight is positive.",
	RunE:  runRank,
}

var (
	rankJobFile        string
	rankJobID          string
	rankCandidatesDir  string
	rankTop            int
	rankSemanticWeight float64
	rankOutput         string
	rankConfig         string
	rankVerbose        bool
)

func init() {
	rankCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to a parsed job requirement JSON file")
	rankCmd.Flags().StringVar(&rankJobID, "job-id", "", "Job ID to load from the database (requires database_url)")
	rankCmd.Flags().StringVar(&rankCandidatesDir, "candidates", "", "Directory of parsed candidate JSON files (default: load all from the database)")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Limit output to the top N candidates (0 = all)")
	rankCmd.Flags().Float64Var(&rankSemanticWeight, "semantic-weight", -1, "Semantic blend weight in [0,1] (overrides config)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().StringVar(&rankConfig, "config", "", "Path to config JSON file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a summary of the ranking")
	rankCmd.MarkFlagsMutuallyExclusive("job", "job-id")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(rankConfig)
	if err != nil {
		return err
	}

	if rankJobFile == "" && rankJobID == "" {
		return fmt.Errorf("must provide either --job or --job-id")
	}

	semanticWeight := cfg.SemanticWeight
	if rankSemanticWeight >= 0 {
		semanticWeight = rankSemanticWeight
	}

	ctx := context.Background()

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	// Load the job
	var job *types.JobRequirement
	if rankJobFile != "" {
		job, err = readJobFile(rankJobFile)
	} else {
		job, err = s.GetJob(ctx, rankJobID)
	}
	if err != nil {
		return err
	}

	// Load candidates
	var candidates []*types.CandidateRecord
	if rankCandidatesDir != "" {
		candidates, err = readCandidateFiles(rankCandidatesDir)
	} else {
		candidates, err = s.ListCandidates(ctx)
	}
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates to rank")
	}

	rubric := types.DefaultRubric()
	if cfg.Weights != nil {
		rubric = cfg.Weights.Rubric()
	}

	source, err := buildSemanticSource(cfg, semanticWeight)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(skills.NewNormalizer())
	engine := ranking.NewEngineWithTimeout(scorer, time.Duration(cfg.SemanticTimeoutSeconds)*time.Second)

	results, err := engine.Rank(ctx, job, candidates, rubric, semanticWeight, source)
	if err != nil {
		return err
	}

	if rankTop > 0 && rankTop < len(results) {
		results = results[:rankTop]
	}

	if cfg.Verbose || rankVerbose {
		observability.NewPrinter(os.Stderr).PrintRanking(results)
	}

	return writeJSON(rankOutput, results)
}

// buildSemanticSource wires the semantic service client, with Redis caching
// when configured. Returns nil when semantic blending is disabled.
func buildSemanticSource(cfg *config.Config, semanticWeight float64) (ranking.SemanticSearch, error) {
	if semanticWeight == 0 || cfg.SemanticURL == "" {
		return nil, nil
	}

	client, err := semantic.NewHTTPClient(cfg.SemanticURL, nil)
	if err != nil {
		return nil, err
	}

	if cfg.RedisAddr == "" {
		return client, nil
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return semantic.NewCachedSearch(client, redisClient, 0), nil
}
