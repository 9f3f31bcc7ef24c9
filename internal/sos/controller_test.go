package sos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// playMoves applies moves for whoever is current and fails on the first rejection.
func playMoves(t *testing.T, controller *Controller, moves ...Position) {
	t.Helper()

	for i, move := range moves {
		require.NoError(t, controller.MakeMove(move.Row, move.Col), "move %d at %v", i, move)
	}
}

// scripted returns a strategy replaying positions in order.
func scripted(positions ...Position) Strategy {
	return func(_ *Board, _ TurnContext) (Position, bool) {
		if len(positions) == 0 {
			return Position{}, false
		}
		next := positions[0]
		positions = positions[1:]
		return next, true
	}
}

func TestNewController(t *testing.T) {
	// When: a default controller is created
	controller := NewController(3, entity.ModeSimple)

	// Then: the state matches a fresh match
	expected := entity.MatchState{
		Board:         NewBoard(3).Cells(),
		Size:          3,
		Mode:          entity.ModeSimple,
		CurrentPlayer: entity.PlayerOne,
		Players: map[entity.PlayerID]entity.PlayerConfig{
			entity.PlayerOne: {Mark: entity.MarkS},
			entity.PlayerTwo: {Mark: entity.MarkO},
		},
		Scores: entity.Scores{entity.PlayerOne: 0, entity.PlayerTwo: 0},
		Winner: entity.WinnerNone,
	}

	require.Equal(t, expected, controller.State())
}

func TestClampSize(t *testing.T) {
	cases := map[float64]int{
		-4:   3,
		2:    3,
		3:    3,
		4.4:  4,
		4.5:  5,
		7:    7,
		10:   10,
		12:   10,
		1e12: 10,
	}

	for requested, expected := range cases {
		assert.Equal(t, expected, ClampSize(requested), "requested %v", requested)
	}

	assert.Equal(t, 3, ClampSize(math.NaN()))
	assert.Equal(t, 3, ClampSize(math.Inf(1)))
	assert.Equal(t, 3, ClampSize(math.Inf(-1)))
}

func TestController_Reset(t *testing.T) {
	t.Run("Resizes the board", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		controller.Reset(5)

		state := controller.State()
		assert.Equal(t, 5, state.Size)
		require.Len(t, state.Board, 5)
		for _, row := range state.Board {
			assert.Len(t, row, 5)
		}
	})

	t.Run("Clamps size to range 3 to 10", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		controller.Reset(2)
		assert.Equal(t, 3, controller.State().Size)

		controller.Reset(12)
		assert.Equal(t, 10, controller.State().Size)
	})

	t.Run("Clears board, scores and winner but keeps configuration", func(t *testing.T) {
		// Given: a general match where playerOne scored
		controller := NewController(3, entity.ModeGeneral)
		controller.SetPlayerComputer(entity.PlayerTwo, true)
		playMoves(t, controller, Position{0, 0})
		require.NoError(t, controller.MakeMove(0, 1))
		require.NoError(t, controller.MakeMove(0, 2))
		require.Equal(t, 1, controller.State().Scores[entity.PlayerOne])

		// When: the match is reset to 4x4
		controller.Reset(4)

		// Then: everything but player configuration starts over
		state := controller.State()
		assert.Equal(t, 4, state.Size)
		assert.Equal(t, entity.ModeGeneral, state.Mode)
		assert.Equal(t, entity.Scores{entity.PlayerOne: 0, entity.PlayerTwo: 0}, state.Scores)
		assert.Equal(t, entity.WinnerNone, state.Winner)
		assert.Equal(t, entity.PlayerOne, state.CurrentPlayer)
		assert.False(t, state.HasStarted)
		assert.True(t, state.Players[entity.PlayerTwo].IsComputer)
		for _, row := range state.Board {
			for _, cell := range row {
				assert.True(t, cell.IsEmpty())
			}
		}
	})
}

func TestController_SetMode(t *testing.T) {
	t.Run("Switches before the first move", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		controller.SetMode(entity.ModeGeneral)

		assert.Equal(t, entity.ModeGeneral, controller.State().Mode)
	})

	t.Run("Ignored once the match started", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		playMoves(t, controller, Position{0, 0})

		controller.SetMode(entity.ModeGeneral)

		state := controller.State()
		assert.Equal(t, entity.ModeSimple, state.Mode)
		assert.Equal(t, entity.MarkS, state.Board[0][0].Mark)
	})

	t.Run("Ignores unknown modes", func(t *testing.T) {
		controller := NewController(4, entity.ModeGeneral)

		controller.SetMode("blitz")

		assert.Equal(t, entity.ModeGeneral, controller.State().Mode)
	})

	t.Run("Keeps the board size", func(t *testing.T) {
		controller := NewController(6, entity.ModeSimple)

		controller.SetMode(entity.ModeGeneral)

		assert.Equal(t, 6, controller.State().Size)
	})
}

func TestController_PlayerConfiguration(t *testing.T) {
	t.Run("Marks and computer flags change before the start", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		controller.SetPlayerMark(entity.PlayerTwo, entity.MarkS)
		controller.SetPlayerComputer(entity.PlayerOne, true)

		players := controller.State().Players
		assert.Equal(t, entity.PlayerConfig{Mark: entity.MarkS, IsComputer: true}, players[entity.PlayerOne])
		assert.Equal(t, entity.PlayerConfig{Mark: entity.MarkS}, players[entity.PlayerTwo])
	})

	t.Run("Configuration is frozen after the first move", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		playMoves(t, controller, Position{1, 1})

		controller.SetPlayerMark(entity.PlayerTwo, entity.MarkS)
		controller.SetPlayerComputer(entity.PlayerTwo, true)

		assert.Equal(t, entity.PlayerConfig{Mark: entity.MarkO}, controller.State().Players[entity.PlayerTwo])
	})

	t.Run("Invalid values are ignored", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		controller.SetPlayerMark(entity.PlayerOne, "X")
		controller.SetPlayerComputer("playerThree", true)

		state := controller.State()
		assert.Equal(t, entity.DefaultPlayers(), state.Players)
	})

	t.Run("Turning a computer back into a human keeps its mark", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerMark(entity.PlayerOne, entity.MarkO)
		controller.SetPlayerComputer(entity.PlayerOne, true)

		controller.SetPlayerComputer(entity.PlayerOne, false)

		assert.Equal(t, entity.PlayerConfig{Mark: entity.MarkO}, controller.State().Players[entity.PlayerOne])
		moved, err := controller.MakeComputerMove()
		require.NoError(t, err)
		assert.False(t, moved)
	})
}

func TestController_MakeMove(t *testing.T) {
	t.Run("Places the current player's mark", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		playMoves(t, controller, Position{1, 1})

		state := controller.State()
		assert.Equal(t, entity.Cell{Mark: entity.MarkS, Player: entity.PlayerOne}, state.Board[1][1])
		assert.True(t, state.HasStarted)
	})

	t.Run("Alternates players", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		playMoves(t, controller, Position{0, 0})
		assert.Equal(t, entity.PlayerTwo, controller.State().CurrentPlayer)

		playMoves(t, controller, Position{1, 1})
		assert.Equal(t, entity.PlayerOne, controller.State().CurrentPlayer)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: playerOne took (0,0)
		controller := NewController(3, entity.ModeSimple)
		playMoves(t, controller, Position{0, 0})
		before := controller.State()

		// When: playerTwo targets the same cell
		err := controller.MakeMove(0, 0)

		// Then: the move is rejected and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, controller.State())
	})

	t.Run("Error on out of bounds cells", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		require.ErrorIs(t, controller.MakeMove(3, 0), apperror.ErrInvalidMove)
		require.ErrorIs(t, controller.MakeMove(0, -1), apperror.ErrInvalidMove)

		assert.False(t, controller.State().HasStarted)
	})

	t.Run("Simple mode: first sequence wins", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)

		playMoves(t, controller, Position{0, 0}, Position{0, 1}, Position{0, 2})

		state := controller.State()
		assert.Equal(t, entity.WinnerPlayerOne, state.Winner)
		assert.Equal(t, entity.PlayerOne, state.CurrentPlayer)
	})

	t.Run("Simple mode: full board with shared S marks is a draw", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerMark(entity.PlayerTwo, entity.MarkS)

		playMoves(t, controller,
			Position{0, 0}, Position{0, 1}, Position{0, 2},
			Position{1, 0}, Position{1, 1}, Position{1, 2},
			Position{2, 0}, Position{2, 1}, Position{2, 2},
		)

		assert.Equal(t, entity.WinnerDraw, controller.State().Winner)
	})

	t.Run("Moves after the match ended are ignored", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		playMoves(t, controller, Position{0, 0}, Position{0, 1}, Position{0, 2})

		err := controller.MakeMove(1, 0)

		require.NoError(t, err)
		state := controller.State()
		assert.True(t, state.Board[1][0].IsEmpty())
		assert.Equal(t, entity.WinnerPlayerOne, state.Winner)
	})

	t.Run("General mode: sequence scores and grants an extra turn", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)

		playMoves(t, controller, Position{0, 0}, Position{0, 1}, Position{0, 2})

		state := controller.State()
		assert.Equal(t, 1, state.Scores[entity.PlayerOne])
		assert.Equal(t, 0, state.Scores[entity.PlayerTwo])
		assert.Equal(t, entity.PlayerOne, state.CurrentPlayer)
		assert.Equal(t, entity.WinnerNone, state.Winner)
	})

	t.Run("General mode: higher score wins a full board", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)

		playMoves(t, controller,
			Position{0, 0}, Position{0, 1}, Position{0, 2},
			Position{1, 0}, Position{1, 1}, Position{1, 2},
			Position{2, 0}, Position{2, 1}, Position{2, 2},
		)

		state := controller.State()
		assert.Equal(t, 3, state.Scores[entity.PlayerOne])
		assert.Equal(t, 0, state.Scores[entity.PlayerTwo])
		assert.Equal(t, entity.WinnerPlayerOne, state.Winner)
	})

	t.Run("General mode: equal scores on a full board draw", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)

		// playerOne: (0,0) (0,2); playerTwo scores with (0,1) and moves again at (2,2);
		// playerOne scores with (2,0) and moves again at (1,1).
		steps := []struct {
			pos     Position
			current entity.PlayerID
		}{
			{Position{0, 0}, entity.PlayerTwo},
			{Position{1, 0}, entity.PlayerOne},
			{Position{0, 2}, entity.PlayerTwo},
			{Position{0, 1}, entity.PlayerTwo},
			{Position{2, 2}, entity.PlayerOne},
			{Position{2, 0}, entity.PlayerOne},
			{Position{1, 1}, entity.PlayerTwo},
			{Position{1, 2}, entity.PlayerOne},
			{Position{2, 1}, entity.PlayerOne},
		}

		for i, step := range steps {
			require.NoError(t, controller.MakeMove(step.pos.Row, step.pos.Col), "step %d", i)
			require.Equal(t, step.current, controller.State().CurrentPlayer, "current player after step %d", i)
		}

		state := controller.State()
		assert.Equal(t, entity.WinnerDraw, state.Winner)
		assert.Equal(t, 1, state.Scores[entity.PlayerOne])
		assert.Equal(t, 1, state.Scores[entity.PlayerTwo])
	})
}

func TestController_State_IsIndependent(t *testing.T) {
	controller := NewController(3, entity.ModeGeneral)
	playMoves(t, controller, Position{0, 0})

	state := controller.State()
	state.Board[1][1] = entity.Cell{Mark: entity.MarkO, Player: entity.PlayerTwo}
	state.Players[entity.PlayerOne] = entity.PlayerConfig{Mark: entity.MarkO, IsComputer: true}
	state.Scores[entity.PlayerOne] = 42

	fresh := controller.State()
	assert.True(t, fresh.Board[1][1].IsEmpty())
	assert.Equal(t, entity.PlayerConfig{Mark: entity.MarkS}, fresh.Players[entity.PlayerOne])
	assert.Equal(t, 0, fresh.Scores[entity.PlayerOne])
}

func TestController_MakeComputerMove(t *testing.T) {
	t.Run("Computer answers a human move", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerComputer(entity.PlayerTwo, true)
		playMoves(t, controller, Position{0, 0})

		moved, err := controller.MakeComputerMove()

		require.NoError(t, err)
		assert.True(t, moved)
		state := controller.State()
		assert.Equal(t, entity.Cell{Mark: entity.MarkO, Player: entity.PlayerTwo}, state.Board[0][1])
		assert.Equal(t, entity.PlayerOne, state.CurrentPlayer)
	})

	t.Run("Does nothing on a human turn", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerComputer(entity.PlayerTwo, true)

		moved, err := controller.MakeComputerMove()

		require.NoError(t, err)
		assert.False(t, moved)
		assert.False(t, controller.State().HasStarted)
	})

	t.Run("First empty cell can complete a sequence", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerComputer(entity.PlayerOne, true)
		playMoves(t, controller, Position{0, 0}, Position{0, 1})

		_, err := controller.MakeComputerMove()

		require.NoError(t, err)
		state := controller.State()
		assert.Equal(t, entity.MarkS, state.Board[0][0].Mark)
		assert.Equal(t, entity.MarkO, state.Board[0][1].Mark)
		assert.Equal(t, entity.MarkS, state.Board[0][2].Mark)
		assert.Equal(t, entity.WinnerPlayerOne, state.Winner)
	})

	t.Run("Keeps moving through extra turns and stops at the human", func(t *testing.T) {
		// Given: a general match with playerOne automated and marks O/S
		controller := NewController(3, entity.ModeGeneral)
		controller.SetPlayerStrategy(entity.PlayerOne, scripted(Position{0, 1}, Position{1, 1}))
		controller.SetPlayerMark(entity.PlayerOne, entity.MarkO)
		controller.SetPlayerMark(entity.PlayerTwo, entity.MarkS)
		playMoves(t, controller,
			Position{1, 0}, Position{0, 0},
			Position{1, 2}, Position{0, 2},
			Position{2, 0}, Position{2, 1},
		)

		// When: the computer plays; (0,1) completes the top row and earns a second move
		moved, err := controller.MakeComputerMove()

		// Then: both scripted moves happened and the human is up
		require.NoError(t, err)
		assert.True(t, moved)
		state := controller.State()
		assert.Equal(t, entity.PlayerTwo, state.CurrentPlayer)
		assert.Equal(t, 1, state.Scores[entity.PlayerOne])
		assert.Equal(t, entity.MarkO, state.Board[1][1].Mark)
	})

	t.Run("Two computers finish the match from one call", func(t *testing.T) {
		for _, mode := range []entity.Mode{entity.ModeSimple, entity.ModeGeneral} {
			controller := NewController(5, mode)
			controller.SetPlayerComputer(entity.PlayerOne, true)
			controller.SetPlayerComputer(entity.PlayerTwo, true)

			moved, err := controller.MakeComputerMove()

			require.NoError(t, err)
			assert.True(t, moved)
			assert.NotEqual(t, entity.WinnerNone, controller.State().Winner, "mode %s", mode)
		}
	})

	t.Run("Strategy returning an occupied cell surfaces the error", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerStrategy(entity.PlayerTwo, scripted(Position{0, 0}))
		playMoves(t, controller, Position{0, 0})

		moved, err := controller.MakeComputerMove()

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.False(t, moved)
	})

	t.Run("Ignored once the match ended", func(t *testing.T) {
		controller := NewController(3, entity.ModeSimple)
		controller.SetPlayerComputer(entity.PlayerTwo, true)
		// (2,2) closes the diagonal for playerOne
		playMoves(t, controller, Position{0, 0}, Position{1, 1}, Position{2, 2})
		require.Equal(t, entity.WinnerPlayerOne, controller.State().Winner)

		moved, err := controller.MakeComputerMove()

		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("Configured computer strategy is used", func(t *testing.T) {
		// Given: playerOne holds both bottom corners and playerTwo seeks sequences
		controller := NewController(3, entity.ModeSimple, WithComputerStrategy(SequenceSeeker))
		controller.SetPlayerComputer(entity.PlayerTwo, true)
		require.NoError(t, controller.ApplyRecordedMove(entity.MoveRecord{Row: 2, Col: 0, Player: entity.PlayerOne, Mark: entity.MarkS, Turn: 1}))
		require.NoError(t, controller.ApplyRecordedMove(entity.MoveRecord{Row: 2, Col: 2, Player: entity.PlayerOne, Mark: entity.MarkS, Turn: 2}))

		// When: the computer moves
		_, err := controller.MakeComputerMove()

		// Then: it closes the bottom row instead of taking (0,0)
		require.NoError(t, err)
		state := controller.State()
		assert.Equal(t, entity.Cell{Mark: entity.MarkO, Player: entity.PlayerTwo}, state.Board[2][1])
		assert.True(t, state.Board[0][0].IsEmpty())
		assert.Equal(t, entity.WinnerPlayerTwo, state.Winner)
	})
}

func TestController_ApplyRecordedMove(t *testing.T) {
	t.Run("Uses the recorded player and mark", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)

		err := controller.ApplyRecordedMove(entity.MoveRecord{Row: 2, Col: 2, Player: entity.PlayerTwo, Mark: entity.MarkS, Turn: 1})

		require.NoError(t, err)
		state := controller.State()
		assert.Equal(t, entity.Cell{Mark: entity.MarkS, Player: entity.PlayerTwo}, state.Board[2][2])
		assert.Equal(t, entity.PlayerOne, state.CurrentPlayer)
		assert.True(t, state.HasStarted)
	})

	t.Run("Rejects unknown players or marks", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)

		err := controller.ApplyRecordedMove(entity.MoveRecord{Row: 0, Col: 0, Player: "nobody", Mark: entity.MarkS, Turn: 1})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.False(t, controller.State().HasStarted)
	})

	t.Run("Rejects occupied cells", func(t *testing.T) {
		controller := NewController(3, entity.ModeGeneral)
		playMoves(t, controller, Position{0, 0})

		err := controller.ApplyRecordedMove(entity.MoveRecord{Row: 0, Col: 0, Player: entity.PlayerTwo, Mark: entity.MarkO, Turn: 2})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}
