package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

type memoryEntry struct {
	replay    entity.Replay
	expiresAt time.Time
}

type memoryReplay struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	replays map[string]memoryEntry
}

// NewMemoryReplayRepository keeps replays in process memory. Expired entries
// are dropped lazily on access.
func NewMemoryReplayRepository(ttl time.Duration) ReplayRepository {
	return newMemoryReplayRepository(ttl, time.Now)
}

func newMemoryReplayRepository(ttl time.Duration, now func() time.Time) *memoryReplay {
	return &memoryReplay{
		ttl:     ttl,
		now:     now,
		replays: make(map[string]memoryEntry),
	}
}

func (that *memoryReplay) Save(_ context.Context, replay *entity.Replay) error {
	entry := memoryEntry{replay: copyReplay(replay)}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.replays[replay.ID] = entry

	return nil
}

func (that *memoryReplay) GetByID(_ context.Context, id string) (*entity.Replay, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, fmt.Errorf("replay %s: %w", id, apperror.ErrReplayNotFound)
	}

	replay := copyReplay(&entry.replay)
	return &replay, nil
}

func (that *memoryReplay) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return fmt.Errorf("replay %s: %w", id, apperror.ErrReplayNotFound)
	}

	delete(that.replays, id)

	return nil
}

// lookup must be called with mu held.
func (that *memoryReplay) lookup(id string) (memoryEntry, bool) {
	entry, ok := that.replays[id]
	if !ok {
		return memoryEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.replays, id)
		return memoryEntry{}, false
	}

	return entry, true
}

func copyReplay(replay *entity.Replay) entity.Replay {
	return entity.Replay{
		ID:        replay.ID,
		CreatedAt: replay.CreatedAt,
		Payload:   replay.Payload.Clone(),
	}
}
