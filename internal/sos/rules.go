package sos

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// sequence is the pattern a window must read to score.
var sequence = [windowLength]entity.Mark{entity.MarkS, entity.MarkO, entity.MarkS}

// Outcome is the result of one accepted placement.
type Outcome struct {
	Sequences int
	ExtraTurn bool
	Winner    entity.Winner
}

type resolveFunc func(engine *Engine, player entity.PlayerID, sequences int) Outcome

var resolvers = map[entity.Mode]resolveFunc{
	entity.ModeSimple:  resolveSimple,
	entity.ModeGeneral: resolveGeneral,
}

// Engine owns the board and scores of one match and applies the rules of its mode.
type Engine struct {
	mode    entity.Mode
	board   *Board
	scores  entity.Scores
	resolve resolveFunc
}

// NewEngine builds an engine for mode; unknown modes fall back to simple.
func NewEngine(mode entity.Mode, size int) *Engine {
	resolve, ok := resolvers[mode]
	if !ok {
		mode = entity.ModeSimple
		resolve = resolvers[mode]
	}

	return &Engine{
		mode:    mode,
		board:   NewBoard(size),
		scores:  entity.NewScores(),
		resolve: resolve,
	}
}

func (that *Engine) Mode() entity.Mode {
	return that.mode
}

func (that *Engine) Board() *Board {
	return that.board
}

func (that *Engine) Scores() entity.Scores {
	return that.scores.Clone()
}

// Place puts mark on (row, col) for player and resolves the outcome.
func (that *Engine) Place(row, col int, player entity.PlayerID, mark entity.Mark) (Outcome, error) {
	if err := that.board.Place(row, col, entity.Cell{Mark: mark, Player: player}); err != nil {
		return Outcome{}, fmt.Errorf("failed to place %s: %w", mark, err)
	}

	return that.Resolve(player, that.CountSequences(row, col)), nil
}

// CountSequences counts the S-O-S runs passing through (row, col).
func (that *Engine) CountSequences(row, col int) int {
	return countSequences(that.board, row, col)
}

func (that *Engine) Resolve(player entity.PlayerID, sequences int) Outcome {
	return that.resolve(that, player, sequences)
}

func countSequences(board *Board, row, col int) int {
	count := 0
	for _, window := range board.Windows(row, col) {
		matched := true
		for k, pos := range window {
			if board.At(pos.Row, pos.Col).Mark != sequence[k] {
				matched = false
				break
			}
		}

		if matched {
			count++
		}
	}

	return count
}

func resolveSimple(engine *Engine, player entity.PlayerID, sequences int) Outcome {
	outcome := Outcome{Sequences: sequences}

	switch {
	case sequences > 0:
		outcome.Winner = entity.WinnerOf(player)
	case engine.board.IsFull():
		outcome.Winner = entity.WinnerDraw
	}

	return outcome
}

func resolveGeneral(engine *Engine, player entity.PlayerID, sequences int) Outcome {
	engine.scores[player] += sequences

	outcome := Outcome{
		Sequences: sequences,
		ExtraTurn: sequences > 0,
	}

	if !engine.board.IsFull() {
		return outcome
	}

	one, two := engine.scores[entity.PlayerOne], engine.scores[entity.PlayerTwo]
	switch {
	case one > two:
		outcome.Winner = entity.WinnerPlayerOne
	case two > one:
		outcome.Winner = entity.WinnerPlayerTwo
	default:
		outcome.Winner = entity.WinnerDraw
	}

	return outcome
}
