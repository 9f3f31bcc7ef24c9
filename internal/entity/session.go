package entity

import "time"

// Session is a hosted match addressed by ID.
type Session struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	State     MatchState `json:"state"`
}
