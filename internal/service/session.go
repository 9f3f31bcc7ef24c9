package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

type SessionService interface {
	Create(ctx context.Context, size int, mode entity.Mode) (*entity.Session, error)
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error

	MakeMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	MakeComputerMove(ctx context.Context, id string) (*entity.Session, bool, error)

	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	SetPlayerMark(ctx context.Context, id string, player entity.PlayerID, mark entity.Mark) (*entity.Session, error)
	SetPlayerComputer(ctx context.Context, id string, player entity.PlayerID, isComputer bool) (*entity.Session, error)
	Reset(ctx context.Context, id string, size int) (*entity.Session, error)

	// Replace swaps the session's match for controller, e.g. one rebuilt from a replay.
	Replace(ctx context.Context, id string, controller *sos.Controller) (*entity.Session, error)
}

type session struct {
	mu         sync.Mutex
	id         string
	createdAt  time.Time
	updatedAt  time.Time
	controller *sos.Controller
}

// snapshot must be called with mu held.
func (that *session) snapshot() *entity.Session {
	return &entity.Session{
		ID:        that.id,
		CreatedAt: that.createdAt,
		UpdatedAt: that.updatedAt,
		State:     that.controller.State(),
	}
}

type sessionService struct {
	logger *slog.Logger
	opts   []sos.Option
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionService keeps matches in memory. opts are passed to every new controller.
func NewSessionService(logger *slog.Logger, opts ...sos.Option) SessionService {
	return &sessionService{
		logger:   logger.With("component", "session"),
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func (that *sessionService) Create(_ context.Context, size int, mode entity.Mode) (*entity.Session, error) {
	now := that.now()
	s := &session{
		id:         uuid.NewString(),
		createdAt:  now,
		updatedAt:  now,
		controller: sos.NewController(size, mode, that.opts...),
	}

	that.mu.Lock()
	that.sessions[s.id] = s
	that.mu.Unlock()

	that.logger.Debug("session created", "session_id", s.id, "mode", mode, "size", size)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

func (that *sessionService) Get(_ context.Context, id string) (*entity.Session, error) {
	s, err := that.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

func (that *sessionService) Delete(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, apperror.ErrSessionNotFound)
	}

	delete(that.sessions, id)
	that.logger.Debug("session deleted", "session_id", id)

	return nil
}

func (that *sessionService) MakeMove(_ context.Context, id string, row, col int) (*entity.Session, error) {
	return that.update(id, func(controller *sos.Controller) error {
		if err := controller.MakeMove(row, col); err != nil {
			return fmt.Errorf("failed to make move at (%d, %d): %w", row, col, err)
		}
		return nil
	})
}

func (that *sessionService) MakeComputerMove(_ context.Context, id string) (*entity.Session, bool, error) {
	var moved bool

	snapshot, err := that.update(id, func(controller *sos.Controller) error {
		var err error
		moved, err = controller.MakeComputerMove()
		return err
	})

	return snapshot, moved, err
}

func (that *sessionService) SetMode(_ context.Context, id string, mode entity.Mode) (*entity.Session, error) {
	return that.update(id, func(controller *sos.Controller) error {
		controller.SetMode(mode)
		return nil
	})
}

func (that *sessionService) SetPlayerMark(_ context.Context, id string, player entity.PlayerID, mark entity.Mark) (*entity.Session, error) {
	return that.update(id, func(controller *sos.Controller) error {
		controller.SetPlayerMark(player, mark)
		return nil
	})
}

func (that *sessionService) SetPlayerComputer(_ context.Context, id string, player entity.PlayerID, isComputer bool) (*entity.Session, error) {
	return that.update(id, func(controller *sos.Controller) error {
		controller.SetPlayerComputer(player, isComputer)
		return nil
	})
}

func (that *sessionService) Reset(_ context.Context, id string, size int) (*entity.Session, error) {
	return that.update(id, func(controller *sos.Controller) error {
		controller.Reset(size)
		return nil
	})
}

func (that *sessionService) Replace(_ context.Context, id string, controller *sos.Controller) (*entity.Session, error) {
	s, err := that.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.controller = controller
	s.updatedAt = that.now()

	return s.snapshot(), nil
}

func (that *sessionService) lookup(id string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	s, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, apperror.ErrSessionNotFound)
	}

	return s, nil
}

// update runs fn under the session lock. The returned snapshot reflects the
// state after fn even when fn fails.
func (that *sessionService) update(id string, fn func(controller *sos.Controller) error) (*entity.Session, error) {
	s, err := that.lookup(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = fn(s.controller); err != nil {
		return s.snapshot(), err
	}

	s.updatedAt = that.now()

	return s.snapshot(), nil
}
