package sos

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

type Option func(*Controller)

// WithComputerStrategy sets the strategy bound by SetPlayerComputer.
func WithComputerStrategy(strategy Strategy) Option {
	return func(c *Controller) {
		if strategy != nil {
			c.computerStrategy = strategy
		}
	}
}

// Controller is the only mutator of a match. Reads go through State, which copies.
type Controller struct {
	engine        *Engine
	currentPlayer entity.PlayerID
	players       map[entity.PlayerID]entity.PlayerConfig
	strategies    map[entity.PlayerID]Strategy
	winner        entity.Winner
	hasStarted    bool

	computerStrategy Strategy
}

func NewController(size int, mode entity.Mode, opts ...Option) *Controller {
	controller := &Controller{
		engine:           NewEngine(mode, clampSize(size)),
		currentPlayer:    entity.PlayerOne,
		players:          entity.DefaultPlayers(),
		strategies:       make(map[entity.PlayerID]Strategy, len(entity.Players)),
		computerStrategy: FirstEmpty,
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

// ClampSize rounds a requested board size and clamps it into [MinSize, MaxSize].
// NaN and infinities yield MinSize.
func ClampSize(requested float64) int {
	if math.IsNaN(requested) || math.IsInf(requested, 0) {
		return MinSize
	}

	return int(math.Max(math.Min(math.Round(requested), MaxSize), MinSize))
}

func clampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}

func (that *Controller) IsFinished() bool {
	return that.winner != entity.WinnerNone
}

func (that *Controller) HasStarted() bool {
	return that.hasStarted
}

// MakeMove places the current player's mark. It does nothing once the match is decided.
func (that *Controller) MakeMove(row, col int) error {
	if that.IsFinished() {
		return nil
	}

	return that.apply(row, col, that.currentPlayer, that.players[that.currentPlayer].Mark)
}

// ApplyRecordedMove places a recorded mark on behalf of the recorded player.
// Turn order continues from that player as if they had just moved.
func (that *Controller) ApplyRecordedMove(move entity.MoveRecord) error {
	if that.IsFinished() {
		return nil
	}

	if !move.Player.IsValid() || !move.Mark.IsValid() {
		return fmt.Errorf("%w: turn %d has player %q and mark %q", apperror.ErrInvalidMove, move.Turn, move.Player, move.Mark)
	}

	return that.apply(move.Row, move.Col, move.Player, move.Mark)
}

// MakeComputerMove lets automated players move until control reaches a human,
// the match ends, or the strategy finds no cell. It reports whether any mark was placed.
func (that *Controller) MakeComputerMove() (bool, error) {
	moved := false

	for !that.IsFinished() {
		strategy, ok := that.strategies[that.currentPlayer]
		if !ok || !that.players[that.currentPlayer].IsComputer {
			break
		}

		pos, found := strategy(that.engine.Board().Clone(), that.turnContext())
		if !found {
			break
		}

		if err := that.MakeMove(pos.Row, pos.Col); err != nil {
			return moved, fmt.Errorf("computer %s failed to move: %w", that.currentPlayer, err)
		}

		moved = true
	}

	return moved, nil
}

// SetMode switches the rules before the first move.
func (that *Controller) SetMode(mode entity.Mode) {
	if that.hasStarted || !mode.IsValid() || mode == that.engine.Mode() {
		return
	}

	that.restart(mode, that.engine.Board().Size())
}

func (that *Controller) SetPlayerComputer(player entity.PlayerID, isComputer bool) {
	if isComputer {
		that.SetPlayerStrategy(player, that.computerStrategy)
		return
	}

	that.SetPlayerStrategy(player, nil)
}

// SetPlayerStrategy binds a strategy to player; nil makes the player human.
// Configuration is frozen once the match has started.
func (that *Controller) SetPlayerStrategy(player entity.PlayerID, strategy Strategy) {
	if that.hasStarted || !player.IsValid() {
		return
	}

	conf := that.players[player]
	conf.IsComputer = strategy != nil
	that.players[player] = conf

	if strategy == nil {
		delete(that.strategies, player)
		return
	}

	that.strategies[player] = strategy
}

// SetPlayerMark changes the mark a player places. Frozen once the match has started.
func (that *Controller) SetPlayerMark(player entity.PlayerID, mark entity.Mark) {
	if that.hasStarted || !player.IsValid() || !mark.IsValid() {
		return
	}

	conf := that.players[player]
	conf.Mark = mark
	that.players[player] = conf
}

// Reset starts a fresh match of the active mode with size clamped into range.
// Player configuration is kept.
func (that *Controller) Reset(size int) {
	that.restart(that.engine.Mode(), clampSize(size))
}

func (that *Controller) State() entity.MatchState {
	return entity.MatchState{
		Board:         that.engine.Board().Cells(),
		Size:          that.engine.Board().Size(),
		Mode:          that.engine.Mode(),
		CurrentPlayer: that.currentPlayer,
		Players:       entity.ClonePlayers(that.players),
		Scores:        that.engine.Scores(),
		Winner:        that.winner,
		HasStarted:    that.hasStarted,
	}
}

func (that *Controller) apply(row, col int, player entity.PlayerID, mark entity.Mark) error {
	outcome, err := that.engine.Place(row, col, player, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.hasStarted = true
	that.winner = outcome.Winner
	that.currentPlayer = player

	if outcome.Winner == entity.WinnerNone && !outcome.ExtraTurn {
		that.currentPlayer = player.Opponent()
	}

	return nil
}

func (that *Controller) restart(mode entity.Mode, size int) {
	that.engine = NewEngine(mode, size)
	that.currentPlayer = entity.PlayerOne
	that.winner = entity.WinnerNone
	that.hasStarted = false
}

func (that *Controller) turnContext() TurnContext {
	return TurnContext{
		Player: that.currentPlayer,
		Mark:   that.players[that.currentPlayer].Mark,
		Mode:   that.engine.Mode(),
	}
}
