package replay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

const (
	StatusNoMoves   = "No moves to replay"
	StatusFailed    = "Replay failed: invalid move encountered"
	StatusCancelled = "Replay cancelled"
)

func StatusReplayed(applied int) string {
	return fmt.Sprintf("Replayed %d move(s)", applied)
}

type Result struct {
	Status  string
	Applied int

	// Controller holds the reconstructed match. Nil when playback never started.
	Controller *sos.Controller
}

// Observer receives a snapshot after the controller is built and after every applied move.
type Observer func(state entity.MatchState)

// Player drives playback one move per tick.
type Player struct {
	logger   *slog.Logger
	interval time.Duration
	opts     []sos.Option
}

// NewPlayer creates a playback driver. A zero interval applies moves back to back.
func NewPlayer(logger *slog.Logger, interval time.Duration, opts ...sos.Option) *Player {
	return &Player{
		logger:   logger.With("component", "replay"),
		interval: interval,
		opts:     opts,
	}
}

// PlayText decodes text and plays it.
func (that *Player) PlayText(ctx context.Context, text []byte, observe Observer) (*Result, error) {
	payload, err := Decode(text)
	if err != nil {
		that.logger.Warn("replay rejected", "error", err)
		return &Result{Status: err.Error()}, err
	}

	return that.Play(ctx, payload, observe)
}

// Play validates the move log, reconstructs the match from the header and
// applies moves until they run out, one is rejected, the match ends or ctx is done.
func (that *Player) Play(ctx context.Context, payload *entity.ReplayPayload, observe Observer) (*Result, error) {
	log := that.logger.With("method", "Play")

	moves, err := ValidateAndOrder(payload.Moves)
	if err != nil {
		log.Warn("replay rejected", "error", err)
		return &Result{Status: err.Error()}, err
	}

	if len(moves) == 0 {
		return &Result{Status: StatusNoMoves}, nil
	}

	controller := Reconstruct(payload.Header, that.opts...)
	result := &Result{Controller: controller}
	notify(observe, controller)

	var tick <-chan time.Time
	if that.interval > 0 {
		ticker := time.NewTicker(that.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for _, move := range moves {
		if err := wait(ctx, tick); err != nil {
			log.Info("replay cancelled", "applied", result.Applied)
			result.Status = StatusCancelled
			return result, fmt.Errorf("replay stopped after %d move(s): %w", result.Applied, err)
		}

		if err := controller.ApplyRecordedMove(move); err != nil {
			log.Warn("replay failed", "turn", move.Turn, "error", err)
			result.Status = StatusFailed
			return result, fmt.Errorf("failed to replay turn %d: %w", move.Turn, err)
		}

		result.Applied++
		notify(observe, controller)

		if controller.IsFinished() {
			break
		}
	}

	result.Status = StatusReplayed(result.Applied)
	log.Debug("replay finished", "applied", result.Applied, "total", len(moves))

	return result, nil
}

func wait(ctx context.Context, tick <-chan time.Time) error {
	if err := ctx.Err(); err != nil || tick == nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}

func notify(observe Observer, controller *sos.Controller) {
	if observe != nil {
		observe(controller.State())
	}
}
