package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-saga/internal/redis"
)

const (
	// Error messages
	errSessionIDEmpty = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis history repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func recordsKey(sessionID string) string {
	return fmt.Sprintf("history:%s:records", sessionID)
}

func completedKey(sessionID string) string {
	return fmt.Sprintf("history:%s:completed", sessionID)
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	rec := input.Record

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", rec.ID, vb)
	errors.ValidateRequired("session_id", rec.SessionID, vb)
	errors.ValidateRequired("event_id", rec.EventID, vb)
	errors.ValidateRequired("decision_id", rec.DecisionID, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid decision record")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal decision record")
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, recordsKey(rec.SessionID), data)
	pipe.SAdd(ctx, completedKey(rec.SessionID), rec.EventID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append decision record")
	}

	slog.DebugContext(ctx, "appended decision record",
		"record_id", rec.ID,
		"session_id", rec.SessionID,
		"event_id", rec.EventID)

	return &AppendOutput{Record: rec}, nil
}

func (r *redisRepository) ListBySession(ctx context.Context, input ListBySessionInput) (*ListBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.LRange(ctx, recordsKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decision records")
	}

	records := make([]entities.UserDecisionRecord, 0, len(raw))
	for _, item := range raw {
		var rec entities.UserDecisionRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal decision record")
		}
		records = append(records, rec)
	}

	return &ListBySessionOutput{Records: records}, nil
}

func (r *redisRepository) CompletedEventIDs(
	ctx context.Context,
	input CompletedEventIDsInput,
) (*CompletedEventIDsOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, completedKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read completed events")
	}
	sort.Strings(ids)

	return &CompletedEventIDsOutput{EventIDs: ids}, nil
}

var _ Repository = (*redisRepository)(nil)
