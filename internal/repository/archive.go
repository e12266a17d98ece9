package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrResultNotFound = errors.New("match result not found")

// archiveTTL bounds how long terminal results are kept. Active games are
// never stored here; losing archived results on expiry is acceptable.
const archiveTTL = 24 * time.Hour

// MatchResult is the write-once record of a completed match.
type MatchResult struct {
	AccessCode  string    `json:"access_code"`
	SessionCode string    `json:"session_code"`
	Winner      string    `json:"winner"`
	Moves       int       `json:"moves"`
	FinishedAt  time.Time `json:"finished_at"`
}

type ArchiveRepository interface {
	Record(ctx context.Context, result *MatchResult) error
	GetBySessionCode(ctx context.Context, sessionCode string) (*MatchResult, error)
}

type redisArchive struct {
	client *redis.Client
}

func NewRedisArchive(client *redis.Client) ArchiveRepository {
	return &redisArchive{
		client: client,
	}
}

func (that *redisArchive) Record(ctx context.Context, result *MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal match result: %w", err)
	}

	resultKey := "match:" + result.SessionCode
	if err = that.client.Set(ctx, resultKey, resultJSON, archiveTTL).Err(); err != nil {
		return fmt.Errorf("failed to set match result: %w", err)
	}

	return nil
}

func (that *redisArchive) GetBySessionCode(ctx context.Context, sessionCode string) (*MatchResult, error) {
	resultKey := "match:" + sessionCode

	response, err := that.client.Get(ctx, resultKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	var result MatchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}

	return &result, nil
}
