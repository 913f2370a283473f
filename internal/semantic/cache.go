package semantic

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/cv-ranker/internal/ranking"
)

// DefaultCacheTTL bounds how long a semantic score stays valid. Candidate
// documents rarely change, but the service's model can be redeployed.
const DefaultCacheTTL = 24 * time.Hour

// CachedSearch decorates a SemanticSearch with a Redis score cache keyed by
// (query, candidate). Cache failures degrade to the wrapped implementation;
// they never fail a ranking run.
type CachedSearch struct {
	inner ranking.SemanticSearch
	redis *redis.Client
	ttl   time.Duration
}

// NewCachedSearch wraps inner with a Redis cache. A zero ttl uses
// DefaultCacheTTL.
func NewCachedSearch(inner ranking.SemanticSearch, client *redis.Client, ttl time.Duration) *CachedSearch {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSearch{inner: inner, redis: client, ttl: ttl}
}

// ScoreCandidates returns cached scores where available and delegates the
// remainder to the wrapped implementation.
func (c *CachedSearch) ScoreCandidates(ctx context.Context, queryText string, candidateIDs []string) (map[string]float64, error) {
	if len(candidateIDs) == 0 {
		return map[string]float64{}, nil
	}

	keys := make([]string, len(candidateIDs))
	for i, id := range candidateIDs {
		keys[i] = cacheKey(queryText, id)
	}

	scores := make(map[string]float64, len(candidateIDs))
	missing := candidateIDs

	values, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		fmt.Printf("Warning: semantic cache read failed: %v\n", err)
	} else {
		missing = missing[:0:0]
		for i, value := range values {
			raw, ok := value.(string)
			if !ok {
				missing = append(missing, candidateIDs[i])
				continue
			}
			score, parseErr := strconv.ParseFloat(raw, 64)
			if parseErr != nil {
				missing = append(missing, candidateIDs[i])
				continue
			}
			scores[candidateIDs[i]] = score
		}
	}

	if len(missing) == 0 {
		return scores, nil
	}

	fresh, err := c.inner.ScoreCandidates(ctx, queryText, missing)
	if err != nil {
		// Partial cache hits are not enough to claim success
		return nil, err
	}

	pipe := c.redis.Pipeline()
	for id, score := range fresh {
		scores[id] = score
		pipe.Set(ctx, cacheKey(queryText, id), strconv.FormatFloat(score, 'f', -1, 64), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		fmt.Printf("Warning: semantic cache write failed: %v\n", err)
	}

	return scores, nil
}

func cacheKey(queryText, candidateID string) string {
	digest := sha256.Sum256([]byte(queryText))
	return fmt.Sprintf("semantic:%s:%s", hex.EncodeToString(digest[:8]), candidateID)
}
