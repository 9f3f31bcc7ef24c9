package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/replay"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

type GameUseCase interface {
	CreateSession(ctx context.Context, size int, mode entity.Mode) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// MakeMove plays for the current player and lets automated players answer.
	MakeMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	MakeComputerMove(ctx context.Context, id string) (*entity.Session, error)

	Configure(ctx context.Context, id string, settings Settings) (*entity.Session, error)
	ResetSession(ctx context.Context, id string, size int) (*entity.Session, error)

	// DownloadSession renders the session as replay JSON without archiving it.
	DownloadSession(ctx context.Context, id string) ([]byte, error)
	ExportReplay(ctx context.Context, sessionID string) (*entity.Replay, error)
	UploadReplay(ctx context.Context, text []byte) (*entity.Replay, error)
	DownloadReplay(ctx context.Context, replayID string) ([]byte, error)
	DeleteReplay(ctx context.Context, replayID string) error

	// ImportReplay plays an archived replay into a new session without waiting between moves.
	ImportReplay(ctx context.Context, replayID string) (*ReplayImport, error)
	// WatchReplay plays an archived replay on the configured interval, reporting each step to observe.
	WatchReplay(ctx context.Context, replayID string, observe replay.Observer) (*replay.Result, error)
}

// Settings holds optional configuration changes. Nil fields are left alone.
type Settings struct {
	Mode    *entity.Mode                       `json:"mode,omitempty"`
	Players map[entity.PlayerID]PlayerSettings `json:"players,omitempty"`
}

type PlayerSettings struct {
	Mark       *entity.Mark `json:"mark,omitempty"`
	IsComputer *bool        `json:"isComputer,omitempty"`
}

type ReplayImport struct {
	Session *entity.Session `json:"session"`
	Status  string          `json:"status"`
	Applied int             `json:"applied"`
}

type sessionServiceDep interface {
	Create(ctx context.Context, size int, mode entity.Mode) (*entity.Session, error)
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	MakeMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	MakeComputerMove(ctx context.Context, id string) (*entity.Session, bool, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	SetPlayerMark(ctx context.Context, id string, player entity.PlayerID, mark entity.Mark) (*entity.Session, error)
	SetPlayerComputer(ctx context.Context, id string, player entity.PlayerID, isComputer bool) (*entity.Session, error)
	Reset(ctx context.Context, id string, size int) (*entity.Session, error)
	Replace(ctx context.Context, id string, controller *sos.Controller) (*entity.Session, error)
}

type replayServiceDep interface {
	Upload(ctx context.Context, text []byte) (*entity.Replay, error)
	Store(ctx context.Context, payload entity.ReplayPayload) (*entity.Replay, error)
	GetReplayByID(ctx context.Context, id string) (*entity.Replay, error)
	DeleteReplay(ctx context.Context, id string) error
}

type playbackDep interface {
	Play(ctx context.Context, payload *entity.ReplayPayload, observe replay.Observer) (*replay.Result, error)
}

type gameUseCase struct {
	logger *slog.Logger

	sessions sessionServiceDep
	replays  replayServiceDep

	instant playbackDep
	timed   playbackDep
}

func NewGameUseCase(logger *slog.Logger, sessions sessionServiceDep, replays replayServiceDep, instant, timed playbackDep) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "usecase"),

		sessions: sessions,
		replays:  replays,

		instant: instant,
		timed:   timed,
	}
}

func (that *gameUseCase) CreateSession(ctx context.Context, size int, mode entity.Mode) (*entity.Session, error) {
	session, err := that.sessions.Create(ctx, size, mode)
	if err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	return session, nil
}

func (that *gameUseCase) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	return session, nil
}

func (that *gameUseCase) DeleteSession(ctx context.Context, id string) error {
	if err := that.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed delete session: %w", err)
	}

	return nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, id string, row, col int) (*entity.Session, error) {
	if _, err := that.sessions.MakeMove(ctx, id, row, col); err != nil {
		return nil, fmt.Errorf("failed make move: %w", err)
	}

	return that.MakeComputerMove(ctx, id)
}

func (that *gameUseCase) MakeComputerMove(ctx context.Context, id string) (*entity.Session, error) {
	session, moved, err := that.sessions.MakeComputerMove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed make computer move: %w", err)
	}

	if moved {
		that.logger.Debug("computer moved", "method", "MakeComputerMove", "session_id", id)
	}

	return session, nil
}

func (that *gameUseCase) Configure(ctx context.Context, id string, settings Settings) (*entity.Session, error) {
	session, err := that.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	if settings.Mode != nil {
		if session, err = that.sessions.SetMode(ctx, id, *settings.Mode); err != nil {
			return nil, fmt.Errorf("failed set mode: %w", err)
		}
	}

	for _, player := range entity.Players {
		conf, ok := settings.Players[player]
		if !ok {
			continue
		}

		if conf.Mark != nil {
			if session, err = that.sessions.SetPlayerMark(ctx, id, player, *conf.Mark); err != nil {
				return nil, fmt.Errorf("failed set mark of %s: %w", player, err)
			}
		}

		if conf.IsComputer != nil {
			if session, err = that.sessions.SetPlayerComputer(ctx, id, player, *conf.IsComputer); err != nil {
				return nil, fmt.Errorf("failed set computer flag of %s: %w", player, err)
			}
		}
	}

	return session, nil
}

func (that *gameUseCase) ResetSession(ctx context.Context, id string, size int) (*entity.Session, error) {
	session, err := that.sessions.Reset(ctx, id, size)
	if err != nil {
		return nil, fmt.Errorf("failed reset session: %w", err)
	}

	return session, nil
}

func (that *gameUseCase) DownloadSession(ctx context.Context, id string) ([]byte, error) {
	session, err := that.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	return replay.Encode(replay.Serialize(session.State))
}

func (that *gameUseCase) ExportReplay(ctx context.Context, sessionID string) (*entity.Replay, error) {
	session, err := that.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	stored, err := that.replays.Store(ctx, replay.Serialize(session.State))
	if err != nil {
		return nil, fmt.Errorf("failed export replay: %w", err)
	}

	that.logger.Info("session exported", "method", "ExportReplay", "session_id", sessionID, "replay_id", stored.ID)

	return stored, nil
}

func (that *gameUseCase) UploadReplay(ctx context.Context, text []byte) (*entity.Replay, error) {
	stored, err := that.replays.Upload(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed upload replay: %w", err)
	}

	return stored, nil
}

func (that *gameUseCase) DownloadReplay(ctx context.Context, replayID string) ([]byte, error) {
	stored, err := that.replays.GetReplayByID(ctx, replayID)
	if err != nil {
		return nil, fmt.Errorf("failed get replay by id: %w", err)
	}

	return replay.Encode(stored.Payload)
}

func (that *gameUseCase) DeleteReplay(ctx context.Context, replayID string) error {
	if err := that.replays.DeleteReplay(ctx, replayID); err != nil {
		return fmt.Errorf("failed delete replay: %w", err)
	}

	return nil
}

func (that *gameUseCase) ImportReplay(ctx context.Context, replayID string) (*ReplayImport, error) {
	log := that.logger.With("method", "ImportReplay", "replay_id", replayID)

	stored, err := that.replays.GetReplayByID(ctx, replayID)
	if err != nil {
		return nil, fmt.Errorf("failed get replay by id: %w", err)
	}

	result, err := that.instant.Play(ctx, &stored.Payload, nil)
	if err != nil && !errors.Is(err, apperror.ErrInvalidMove) {
		return nil, fmt.Errorf("failed play replay: %w", err)
	}

	if result.Controller == nil {
		return &ReplayImport{Status: result.Status}, nil
	}

	header := stored.Payload.Header
	session, err := that.sessions.Create(ctx, header.Size, header.Mode)
	if err != nil {
		return nil, fmt.Errorf("could not create session: %w", err)
	}

	if session, err = that.sessions.Replace(ctx, session.ID, result.Controller); err != nil {
		return nil, fmt.Errorf("failed replace session: %w", err)
	}

	log.Info("replay imported", "session_id", session.ID, "applied", result.Applied, "status", result.Status)

	return &ReplayImport{
		Session: session,
		Status:  result.Status,
		Applied: result.Applied,
	}, nil
}

func (that *gameUseCase) WatchReplay(ctx context.Context, replayID string, observe replay.Observer) (*replay.Result, error) {
	stored, err := that.replays.GetReplayByID(ctx, replayID)
	if err != nil {
		return nil, fmt.Errorf("failed get replay by id: %w", err)
	}

	result, err := that.timed.Play(ctx, &stored.Payload, observe)
	if err != nil {
		return result, fmt.Errorf("failed play replay: %w", err)
	}

	return result, nil
}
