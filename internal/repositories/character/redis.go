package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-saga/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	sessionIndexPrefix = "character:session:"

	// Error messages
	errCharacterIDEmpty = "character ID cannot be empty"
	errSessionIDEmpty   = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	char := input.Character
	if err := char.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character")
	}

	key := characterKeyPrefix + char.ID
	sessionKey := sessionIndexPrefix + char.SessionID

	char.Version = 1
	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Both keys are watched so two creates for one session cannot both pass the check
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key, sessionKey).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("character %s or session %s already exists", char.ID, char.SessionID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.Set(ctx, sessionKey, char.ID, 0)
			return nil
		})
		return err
	}, key, sessionKey)

	switch {
	case err == nil:
	case err == redis.TxFailedErr:
		return nil, errors.AlreadyExistsf("session %s created concurrently", char.SessionID)
	case errors.IsAlreadyExists(err):
		return nil, err
	default:
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "created character",
		"character_id", char.ID,
		"session_id", char.SessionID)

	return &CreateOutput{Character: char}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	char, err := r.get(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) GetBySession(ctx context.Context, input GetBySessionInput) (*GetBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	id, err := r.client.Get(ctx, sessionIndexPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get session index")
	}

	char, err := r.get(ctx, r.client, id)
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "session index points at missing character",
				"session_id", input.SessionID,
				"character_id", id)
		}
		return nil, err
	}

	return &GetBySessionOutput{Character: char}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	char := input.Character
	if err := char.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character")
	}

	key := characterKeyPrefix + char.ID
	expected := char.Version
	char.Version = expected + 1

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// WATCH fails the EXEC if another writer touches the key after the version read
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := r.get(ctx, tx, char.ID)
		if err != nil {
			return err
		}
		if stored.Version != expected {
			return errors.Abortedf("character %s is at version %d, expected %d",
				char.ID, stored.Version, expected)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
	case err == redis.TxFailedErr:
		return nil, errors.Abortedf("character %s modified concurrently", char.ID)
	default:
		return nil, errors.Wrapf(err, "failed to save character %s", char.ID)
	}

	slog.DebugContext(ctx, "saved character",
		"character_id", char.ID,
		"version", char.Version)

	return &SaveOutput{Character: char}, nil
}

// getter is satisfied by both the client and a WATCH transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) get(ctx context.Context, g getter, id string) (entities.Character, error) {
	result, err := g.Get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return entities.Character{}, errors.NotFoundf("character with ID %s not found", id)
		}
		return entities.Character{}, errors.Wrapf(err, "failed to get character")
	}

	var char entities.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return entities.Character{}, errors.Wrapf(err, "failed to unmarshal character")
	}
	if err := char.Validate(); err != nil {
		return entities.Character{}, errors.WrapWithCode(err, errors.CodeInternal, "stored character is corrupt")
	}

	return char, nil
}

var _ Repository = (*redisRepository)(nil)
