// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-ranker/internal/types"
)

// Config represents the CLI configuration. Values can come from a JSON file,
// environment variables, or CLI flags; flags win, then the file, then env.
type Config struct {
	// APIKey is the Gemini API key used for extraction.
	APIKey string `json:"api_key,omitempty"`

	// DatabaseURL enables the PostgreSQL store when set; otherwise records
	// live in memory for the duration of the process.
	DatabaseURL string `json:"database_url,omitempty"`

	// SemanticURL is the base URL of the semantic scoring service.
	SemanticURL string `json:"semantic_url,omitempty" validate:"omitempty,url"`

	// RedisAddr enables semantic score caching when set (host:port).
	RedisAddr string `json:"redis_addr,omitempty"`

	// SemanticWeight is the blend weight for semantic scores.
	SemanticWeight float64 `json:"semantic_weight,omitempty" validate:"gte=0,lte=1"`

	// SemanticTimeoutSeconds bounds how long a ranking run waits for the
	// semantic service before degrading to rule-based scores.
	SemanticTimeoutSeconds int `json:"semantic_timeout_seconds,omitempty" validate:"gte=0"`

	// Weights overrides the default scoring rubric when present.
	Weights *Weights `json:"weights,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// Weights mirrors the scoring rubric in config form.
type Weights struct {
	MustHave   float64 `json:"must_have" validate:"gte=0"`
	NiceToHave float64 `json:"nice_to_have" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Education  float64 `json:"education" validate:"gte=0"`
}

// Rubric converts the weights to a scoring rubric.
func (w *Weights) Rubric() types.ScoringRubric {
	return types.ScoringRubric{
		MustHaveWeight:   w.MustHave,
		NiceToHaveWeight: w.NiceToHave,
		ExperienceWeight: w.Experience,
		EducationWeight:  w.Education,
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %s failed %s validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ApplyEnv fills empty fields from environment variables.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.SemanticURL == "" {
		c.SemanticURL = os.Getenv("SEMANTIC_URL")
	}
	if c.RedisAddr == "" {
		c.RedisAddr = os.Getenv("REDIS_ADDR")
	}
}
