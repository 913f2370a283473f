// Package semantic provides clients for the external semantic similarity
// service used to blend embedding-based scores into ranking.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// Error represents an error talking to the semantic service.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("semantic service error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("semantic service error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the HTTP client.
type Options struct {
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// HTTPClient calls a semantic scoring service over HTTP. It implements the
// ranking engine's SemanticSearch interface.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the service at baseURL.
func NewHTTPClient(baseURL string, opts *Options) (*HTTPClient, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{
			URL:     baseURL,
			Message: "invalid base URL",
			Cause:   err,
		}
	}

	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: opts.Timeout},
	}, nil
}

// scoreRequest is the wire format of the /score endpoint.
type scoreRequest struct {
	Query        string   `json:"query"`
	CandidateIDs []string `json:"candidate_ids"`
}

type scoreResponse struct {
	Scores map[string]float64 `json:"scores"`
}

// ScoreCandidates asks the service to score candidates against the query
// text. The returned map may cover only a subset of the requested IDs.
func (c *HTTPClient) ScoreCandidates(ctx context.Context, queryText string, candidateIDs []string) (map[string]float64, error) {
	endpoint := c.baseURL + "/score"

	body, err := json.Marshal(scoreRequest{
		Query:        queryText,
		CandidateIDs: candidateIDs,
	})
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to marshal request",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to create request",
			Cause:   err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			URL:     endpoint,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var parsed scoreResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &Error{
			URL:     endpoint,
			Message: "failed to parse response",
			Cause:   err,
		}
	}

	if parsed.Scores == nil {
		parsed.Scores = map[string]float64{}
	}
	return parsed.Scores, nil
}
