package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrReplayIntegrity = errors.New("replay integrity violated")
	ErrMalformedReplay = errors.New("malformed replay payload")
	ErrSessionNotFound = errors.New("session not found")
	ErrReplayNotFound  = errors.New("replay not found")
)
