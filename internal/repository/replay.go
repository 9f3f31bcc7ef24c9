package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const replayKeyPrefix = "replay:"

type ReplayRepository interface {
	Save(ctx context.Context, replay *entity.Replay) error
	GetByID(ctx context.Context, id string) (*entity.Replay, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbReplay struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReplayRepository stores replays in redis. A zero ttl keeps them forever.
func NewReplayRepository(client *redis.Client, ttl time.Duration) ReplayRepository {
	return &dbReplay{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbReplay) Save(ctx context.Context, replay *entity.Replay) error {
	replayJSON, err := json.Marshal(replay)
	if err != nil {
		return fmt.Errorf("could not marshal replay: %w", err)
	}

	err = that.client.Set(ctx, replayKeyPrefix+replay.ID, replayJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set replay: %w", err)
	}

	return nil
}

func (that *dbReplay) GetByID(ctx context.Context, id string) (*entity.Replay, error) {
	response, err := that.client.Get(ctx, replayKeyPrefix+id).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("replay %s: %w", id, apperror.ErrReplayNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get replay by id: %w", err)
	}

	var replay entity.Replay
	if err = json.Unmarshal(response, &replay); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replay: %w", err)
	}

	return &replay, nil
}

func (that *dbReplay) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, replayKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete replay by ID: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("replay %s: %w", id, apperror.ErrReplayNotFound)
	}

	return nil
}
