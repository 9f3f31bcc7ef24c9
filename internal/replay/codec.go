package replay

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

// Serialize records a match as a replay. Moves come from a row-major scan of
// the occupied cells and are numbered in scan order, not in the order they were played.
func Serialize(state entity.MatchState) entity.ReplayPayload {
	moves := make([]entity.MoveRecord, 0, state.Size*state.Size)

	for row, cells := range state.Board {
		for col, cell := range cells {
			if cell.IsEmpty() {
				continue
			}

			moves = append(moves, entity.MoveRecord{
				Row:    row,
				Col:    col,
				Player: cell.Player,
				Mark:   cell.Mark,
				Turn:   len(moves) + 1,
			})
		}
	}

	return entity.ReplayPayload{
		Header: entity.ReplayHeader{
			Size:    state.Size,
			Mode:    state.Mode,
			Players: entity.ClonePlayers(state.Players),
		},
		Moves: moves,
	}
}

// ValidateAndOrder returns the moves sorted by turn. The turns must form exactly 1..N.
func ValidateAndOrder(moves []entity.MoveRecord) ([]entity.MoveRecord, error) {
	sorted := slices.Clone(moves)
	slices.SortStableFunc(sorted, func(a, b entity.MoveRecord) int {
		return cmp.Compare(a.Turn, b.Turn)
	})

	for i, move := range sorted {
		if move.Turn <= 0 {
			return nil, fmt.Errorf("%w: invalid turn number %d found in replay payload", apperror.ErrReplayIntegrity, move.Turn)
		}

		if i == 0 && move.Turn != 1 {
			return nil, fmt.Errorf("%w: turn numbers must start at 1", apperror.ErrReplayIntegrity)
		}

		if i > 0 && move.Turn != sorted[i-1].Turn+1 {
			return nil, fmt.Errorf("%w: turns must be sequential with no gaps or duplicates", apperror.ErrReplayIntegrity)
		}
	}

	return sorted, nil
}

// Reconstruct builds a fresh controller configured from the header. Moves are not applied.
func Reconstruct(header entity.ReplayHeader, opts ...sos.Option) *sos.Controller {
	controller := sos.NewController(header.Size, header.Mode, opts...)

	for _, player := range entity.Players {
		conf, ok := header.Players[player]
		if !ok {
			continue
		}

		controller.SetPlayerMark(player, conf.Mark)
		controller.SetPlayerComputer(player, conf.IsComputer)
	}

	return controller
}

// Decode parses replay text. Unknown modes, marks or players are rejected
// with ErrMalformedReplay; turn order is left to ValidateAndOrder.
func Decode(text []byte) (*entity.ReplayPayload, error) {
	var payload entity.ReplayPayload
	if err := json.Unmarshal(text, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedReplay, err)
	}

	if err := validatePayload(&payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

// Validate checks header values and turn order, leaving the moves sorted by turn.
func Validate(payload *entity.ReplayPayload) error {
	if err := validatePayload(payload); err != nil {
		return err
	}

	moves, err := ValidateAndOrder(payload.Moves)
	if err != nil {
		return err
	}

	payload.Moves = moves

	return nil
}

// Encode renders a replay as indented JSON for download.
func Encode(payload entity.ReplayPayload) ([]byte, error) {
	if payload.Moves == nil {
		payload.Moves = []entity.MoveRecord{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}

	return data, nil
}

func validatePayload(payload *entity.ReplayPayload) error {
	if !payload.Header.Mode.IsValid() {
		return fmt.Errorf("%w: unknown mode %q", apperror.ErrMalformedReplay, payload.Header.Mode)
	}

	if len(payload.Header.Players) != len(entity.Players) {
		return fmt.Errorf("%w: header must configure %d players", apperror.ErrMalformedReplay, len(entity.Players))
	}

	for player, conf := range payload.Header.Players {
		if !player.IsValid() {
			return fmt.Errorf("%w: unknown player %q", apperror.ErrMalformedReplay, player)
		}

		if !conf.Mark.IsValid() {
			return fmt.Errorf("%w: player %s has unknown mark %q", apperror.ErrMalformedReplay, player, conf.Mark)
		}
	}

	for _, move := range payload.Moves {
		if !move.Player.IsValid() || !move.Mark.IsValid() {
			return fmt.Errorf("%w: turn %d has player %q and mark %q", apperror.ErrMalformedReplay, move.Turn, move.Player, move.Mark)
		}
	}

	return nil
}
