package entity

import (
	"slices"
	"time"
)

// MoveRecord is one recorded placement. Turn numbers start at 1.
type MoveRecord struct {
	Row    int      `json:"row"`
	Col    int      `json:"col"`
	Player PlayerID `json:"player"`
	Mark   Mark     `json:"mark"`
	Turn   int      `json:"turn"`
}

type ReplayHeader struct {
	Size    int                       `json:"size"`
	Mode    Mode                      `json:"mode"`
	Players map[PlayerID]PlayerConfig `json:"players"`
}

type ReplayPayload struct {
	Header ReplayHeader `json:"header"`
	Moves  []MoveRecord `json:"moves"`
}

// Replay is an archived replay payload.
type Replay struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Payload   ReplayPayload `json:"payload"`
}

func (that ReplayPayload) Clone() ReplayPayload {
	return ReplayPayload{
		Header: ReplayHeader{
			Size:    that.Header.Size,
			Mode:    that.Header.Mode,
			Players: ClonePlayers(that.Header.Players),
		},
		Moves: slices.Clone(that.Moves),
	}
}
