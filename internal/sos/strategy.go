package sos

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// TurnContext describes who is asking a strategy for a move.
type TurnContext struct {
	Player entity.PlayerID
	Mark   entity.Mark
	Mode   entity.Mode
}

// Strategy picks a cell for an automated player. It reports false only when the
// board has no empty cell; otherwise the position must be empty and in bounds.
// The board handed to a strategy is a copy.
type Strategy func(board *Board, turn TurnContext) (Position, bool)

// FirstEmpty scans rows top to bottom and columns left to right.
func FirstEmpty(board *Board, _ TurnContext) (Position, bool) {
	for r := range board.Size() {
		for c := range board.Size() {
			if board.At(r, c).IsEmpty() {
				return Position{Row: r, Col: c}, true
			}
		}
	}

	return Position{}, false
}

// SequenceSeeker plays the cell where the mover's mark completes the most
// sequences, and falls back to FirstEmpty when nothing scores.
func SequenceSeeker(board *Board, turn TurnContext) (Position, bool) {
	best, bestCount := Position{}, 0

	for _, pos := range board.EmptyCells() {
		probe := board.Clone()
		if err := probe.Place(pos.Row, pos.Col, entity.Cell{Mark: turn.Mark, Player: turn.Player}); err != nil {
			continue
		}

		if count := countSequences(probe, pos.Row, pos.Col); count > bestCount {
			best, bestCount = pos, count
		}
	}

	if bestCount > 0 {
		return best, true
	}

	return FirstEmpty(board, turn)
}

// RandomEmpty picks uniformly among empty cells using rng. The returned
// strategy may be shared between controllers.
func RandomEmpty(rng *rand.Rand) Strategy {
	var mu sync.Mutex

	return func(board *Board, _ TurnContext) (Position, bool) {
		free := board.EmptyCells()
		if len(free) == 0 {
			return Position{}, false
		}

		mu.Lock()
		defer mu.Unlock()

		return free[rng.Intn(len(free))], true
	}
}

// StrategyByName resolves "first-empty", "sequence-seeker" or "random".
func StrategyByName(name string) (Strategy, bool) {
	switch name {
	case "first-empty", "":
		return FirstEmpty, true
	case "sequence-seeker":
		return SequenceSeeker, true
	case "random":
		return RandomEmpty(rand.New(rand.NewSource(time.Now().UnixNano()))), true
	default:
		return nil, false
	}
}
