package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const (
	actionReplayWatch = "replay:watch"
	actionReplayStop  = "replay:stop"
	actionReplayState = "replay:state"
	actionReplayDone  = "replay:done"
	actionError       = "error"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type watchRequest struct {
	ReplayID string `json:"replayId"`
}

type ResponsePayload struct {
	ReplayID string             `json:"replayId,omitempty"`
	State    *entity.MatchState `json:"state,omitempty"`
	Status   string             `json:"status,omitempty"`
	Applied  int                `json:"applied,omitempty"`
	Action   string             `json:"action,omitempty"`
	Error    string             `json:"error,omitempty"`
}
