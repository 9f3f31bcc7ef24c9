package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/replay"
)

type ReplayService interface {
	// Upload decodes replay text, validates it and archives it.
	Upload(ctx context.Context, text []byte) (*entity.Replay, error)
	Store(ctx context.Context, payload entity.ReplayPayload) (*entity.Replay, error)

	GetReplayByID(ctx context.Context, id string) (*entity.Replay, error)
	DeleteReplay(ctx context.Context, id string) error
}

type replayRepo interface {
	Save(ctx context.Context, replay *entity.Replay) error
	GetByID(ctx context.Context, id string) (*entity.Replay, error)
	DeleteByID(ctx context.Context, id string) error
}

type replayService struct {
	logger     *slog.Logger
	replayRepo replayRepo
	now        func() time.Time
}

func NewReplayService(logger *slog.Logger, replayRepo replayRepo) ReplayService {
	return &replayService{
		logger:     logger.With("component", "replay_archive"),
		replayRepo: replayRepo,
		now:        time.Now,
	}
}

func (that *replayService) Upload(ctx context.Context, text []byte) (*entity.Replay, error) {
	payload, err := replay.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("could not read uploaded replay: %w", err)
	}

	return that.Store(ctx, *payload)
}

func (that *replayService) Store(ctx context.Context, payload entity.ReplayPayload) (*entity.Replay, error) {
	payload = payload.Clone()
	if err := replay.Validate(&payload); err != nil {
		return nil, fmt.Errorf("replay rejected: %w", err)
	}

	stored := &entity.Replay{
		ID:        uuid.NewString(),
		CreatedAt: that.now().UTC(),
		Payload:   payload,
	}

	if err := that.replayRepo.Save(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save replay to storage: %w", err)
	}

	that.logger.Info("replay archived", "replay_id", stored.ID, "moves", len(payload.Moves))

	return stored, nil
}

func (that *replayService) GetReplayByID(ctx context.Context, id string) (*entity.Replay, error) {
	stored, err := that.replayRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve replay from storage: %w", err)
	}

	return stored, nil
}

func (that *replayService) DeleteReplay(ctx context.Context, id string) error {
	if err := that.replayRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete replay: %w", err)
	}

	return nil
}
