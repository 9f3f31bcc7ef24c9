package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const writeTimeout = 10 * time.Second

// client is one connection. Only its reader goroutine starts or stops watches.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	watchMu sync.Mutex
	stop    context.CancelFunc
	done    chan struct{}
	watches sync.WaitGroup
}

func (that *client) send(action string, payload ResponsePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// stopWatch cancels the running watch and waits until it has reported.
func (that *client) stopWatch() bool {
	that.watchMu.Lock()
	stop, done := that.stop, that.done
	that.stop, that.done = nil, nil
	that.watchMu.Unlock()

	if stop == nil {
		return false
	}

	stop()
	<-done

	return true
}

func (that *client) beginWatch(ctx context.Context) (context.Context, chan struct{}) {
	that.stopWatch()

	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	that.watchMu.Lock()
	that.stop, that.done = cancel, done
	that.watchMu.Unlock()

	return watchCtx, done
}

func (that *client) endWatch(done chan struct{}) {
	that.watchMu.Lock()
	if that.done == done {
		that.stop()
		that.stop, that.done = nil, nil
	}
	that.watchMu.Unlock()

	close(done)
}

func (that *Server) handleWatch(ctx context.Context, msg *Message, c *client) error {
	var req watchRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		that.sendError(c, msg.Action, "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if req.ReplayID == "" {
		that.sendError(c, msg.Action, "replayId is required")
		return nil
	}

	that.startWatch(ctx, c, req.ReplayID)

	return nil
}

func (that *Server) handleStop(_ context.Context, msg *Message, c *client) error {
	if !c.stopWatch() {
		that.sendError(c, msg.Action, "no replay is playing")
	}

	return nil
}

// startWatch replaces any running watch with one for replayID.
func (that *Server) startWatch(ctx context.Context, c *client, replayID string) {
	watchCtx, done := c.beginWatch(ctx)

	c.watches.Add(1)
	go func() {
		defer c.watches.Done()
		defer c.endWatch(done)

		that.watch(watchCtx, c, replayID)
	}()
}

func (that *Server) watch(ctx context.Context, c *client, replayID string) {
	log := that.logger.With("method", "watch", "replay_id", replayID)

	result, err := that.uGame.WatchReplay(ctx, replayID, func(state entity.MatchState) {
		if sendErr := c.send(actionReplayState, ResponsePayload{ReplayID: replayID, State: &state}); sendErr != nil {
			log.Warn("failed to send replay state", "error", sendErr)
		}
	})
	if result == nil {
		if errors.Is(err, apperror.ErrReplayNotFound) {
			that.sendError(c, actionReplayWatch, "replay not found")
			return
		}

		log.Error("failed to watch replay", "error", err)
		that.sendError(c, actionReplayWatch, "failed to watch replay")

		return
	}

	if err != nil {
		log.Info("replay ended early", "status", result.Status, "error", err)
	}

	payload := ResponsePayload{
		ReplayID: replayID,
		Status:   result.Status,
		Applied:  result.Applied,
	}

	if err = c.send(actionReplayDone, payload); err != nil {
		log.Warn("failed to send replay result", "error", err)
	}
}

func (that *Server) sendError(c *client, action, text string) {
	if err := c.send(actionError, ResponsePayload{Action: action, Error: text}); err != nil {
		that.logger.Warn("failed to send error response", "action", action, "error", err)
	}
}
