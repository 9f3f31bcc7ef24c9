package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
)

func turns(values ...int) []entity.MoveRecord {
	moves := make([]entity.MoveRecord, 0, len(values))
	for i, turn := range values {
		moves = append(moves, entity.MoveRecord{Row: 0, Col: i, Player: entity.PlayerOne, Mark: entity.MarkS, Turn: turn})
	}
	return moves
}

func TestSerialize(t *testing.T) {
	t.Run("Numbers occupied cells in scan order", func(t *testing.T) {
		// Given: moves played bottom-up
		controller := sos.NewController(3, entity.ModeGeneral)
		controller.SetPlayerComputer(entity.PlayerTwo, true)
		require.NoError(t, controller.MakeMove(2, 2))
		require.NoError(t, controller.MakeMove(1, 0))
		require.NoError(t, controller.MakeMove(0, 1))

		// When
		payload := Serialize(controller.State())

		// Then: turns follow the board scan, not the play order
		expected := []entity.MoveRecord{
			{Row: 0, Col: 1, Player: entity.PlayerOne, Mark: entity.MarkS, Turn: 1},
			{Row: 1, Col: 0, Player: entity.PlayerTwo, Mark: entity.MarkO, Turn: 2},
			{Row: 2, Col: 2, Player: entity.PlayerOne, Mark: entity.MarkS, Turn: 3},
		}
		assert.Equal(t, expected, payload.Moves)
		assert.Equal(t, entity.ReplayHeader{
			Size: 3,
			Mode: entity.ModeGeneral,
			Players: map[entity.PlayerID]entity.PlayerConfig{
				entity.PlayerOne: {Mark: entity.MarkS},
				entity.PlayerTwo: {Mark: entity.MarkO, IsComputer: true},
			},
		}, payload.Header)
	})

	t.Run("Empty board has no moves", func(t *testing.T) {
		payload := Serialize(sos.NewController(5, entity.ModeSimple).State())

		assert.Empty(t, payload.Moves)
		assert.Equal(t, 5, payload.Header.Size)
	})

	t.Run("Header does not share the state's player map", func(t *testing.T) {
		state := sos.NewController(3, entity.ModeSimple).State()

		payload := Serialize(state)
		payload.Header.Players[entity.PlayerOne] = entity.PlayerConfig{Mark: entity.MarkO}

		assert.Equal(t, entity.MarkS, state.Players[entity.PlayerOne].Mark)
	})
}

func TestValidateAndOrder(t *testing.T) {
	t.Run("Sorts consecutive turns given in any order", func(t *testing.T) {
		moves := turns(3, 1, 2)

		ordered, err := ValidateAndOrder(moves)

		require.NoError(t, err)
		require.Len(t, ordered, 3)
		for i, move := range ordered {
			assert.Equal(t, i+1, move.Turn)
		}
		assert.Equal(t, 3, moves[0].Turn, "input must not be reordered")
	})

	t.Run("Empty log is valid", func(t *testing.T) {
		ordered, err := ValidateAndOrder(nil)

		require.NoError(t, err)
		assert.Empty(t, ordered)
	})

	t.Run("Rejects broken turn sequences", func(t *testing.T) {
		cases := map[string]struct {
			moves   []entity.MoveRecord
			message string
		}{
			"gap":          {turns(1, 3), "turns must be sequential with no gaps or duplicates"},
			"late start":   {turns(2, 3), "turn numbers must start at 1"},
			"duplicate":    {turns(1, 1), "turns must be sequential with no gaps or duplicates"},
			"zero turn":    {turns(0, 1), "invalid turn number 0 found in replay payload"},
			"negative":     {turns(-2), "invalid turn number -2 found in replay payload"},
			"single late":  {turns(4), "turn numbers must start at 1"},
			"tail missing": {turns(1, 2, 4), "turns must be sequential with no gaps or duplicates"},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				ordered, err := ValidateAndOrder(tc.moves)

				require.ErrorIs(t, err, apperror.ErrReplayIntegrity)
				assert.Contains(t, err.Error(), tc.message)
				assert.Nil(t, ordered)
			})
		}
	})
}

func TestReconstruct(t *testing.T) {
	t.Run("Applies size, mode and player configuration", func(t *testing.T) {
		header := entity.ReplayHeader{
			Size: 4,
			Mode: entity.ModeGeneral,
			Players: map[entity.PlayerID]entity.PlayerConfig{
				entity.PlayerOne: {Mark: entity.MarkS},
				entity.PlayerTwo: {Mark: entity.MarkO, IsComputer: true},
			},
		}

		state := Reconstruct(header).State()

		assert.Equal(t, 4, state.Size)
		assert.Equal(t, entity.ModeGeneral, state.Mode)
		assert.Equal(t, header.Players, state.Players)
		assert.Equal(t, entity.Scores{entity.PlayerOne: 0, entity.PlayerTwo: 0}, state.Scores)
		assert.False(t, state.HasStarted)
		for _, row := range state.Board {
			for _, cell := range row {
				assert.True(t, cell.IsEmpty())
			}
		}
	})

	t.Run("Clamps the size", func(t *testing.T) {
		controller := Reconstruct(entity.ReplayHeader{Size: 40, Mode: entity.ModeSimple})

		assert.Equal(t, sos.MaxSize, controller.State().Size)
	})

	t.Run("Missing players keep defaults", func(t *testing.T) {
		controller := Reconstruct(entity.ReplayHeader{
			Size:    3,
			Mode:    entity.ModeSimple,
			Players: map[entity.PlayerID]entity.PlayerConfig{entity.PlayerTwo: {Mark: entity.MarkS}},
		})

		players := controller.State().Players
		assert.Equal(t, entity.MarkS, players[entity.PlayerOne].Mark)
		assert.Equal(t, entity.MarkS, players[entity.PlayerTwo].Mark)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Parses a downloaded replay", func(t *testing.T) {
		text := `{
			"header": {
				"size": 3,
				"mode": "simple",
				"players": {
					"playerOne": {"mark": "S", "isComputer": false},
					"playerTwo": {"mark": "O", "isComputer": true}
				}
			},
			"moves": [{"row": 0, "col": 1, "player": "playerTwo", "mark": "O", "turn": 1}]
		}`

		payload, err := Decode([]byte(text))

		require.NoError(t, err)
		assert.Equal(t, entity.ModeSimple, payload.Header.Mode)
		assert.True(t, payload.Header.Players[entity.PlayerTwo].IsComputer)
		assert.Equal(t, []entity.MoveRecord{{Row: 0, Col: 1, Player: entity.PlayerTwo, Mark: entity.MarkO, Turn: 1}}, payload.Moves)
	})

	t.Run("Rejects malformed payloads", func(t *testing.T) {
		players := `"players": {"playerOne": {"mark": "S"}, "playerTwo": {"mark": "O"}}`

		cases := map[string]string{
			"not json":       `{"header": `,
			"null":           `null`,
			"unknown mode":   `{"header": {"size": 3, "mode": "blitz", ` + players + `}, "moves": []}`,
			"unknown mark":   `{"header": {"size": 3, "mode": "simple", "players": {"playerOne": {"mark": "X"}, "playerTwo": {"mark": "O"}}}, "moves": []}`,
			"missing player": `{"header": {"size": 3, "mode": "simple", "players": {"playerOne": {"mark": "S"}}}, "moves": []}`,
			"unknown player": `{"header": {"size": 3, "mode": "simple", "players": {"playerOne": {"mark": "S"}, "playerThree": {"mark": "O"}}}, "moves": []}`,
			"move mark":      `{"header": {"size": 3, "mode": "simple", ` + players + `}, "moves": [{"row": 0, "col": 0, "player": "playerOne", "mark": "Q", "turn": 1}]}`,
			"wrong types":    `{"header": {"size": "three"}}`,
		}

		for name, text := range cases {
			t.Run(name, func(t *testing.T) {
				payload, err := Decode([]byte(text))

				require.ErrorIs(t, err, apperror.ErrMalformedReplay)
				assert.NotErrorIs(t, err, apperror.ErrReplayIntegrity)
				assert.Nil(t, payload)
			})
		}
	})

	t.Run("Turn order is not checked", func(t *testing.T) {
		text := `{"header": {"size": 3, "mode": "general", "players": {"playerOne": {"mark": "S"}, "playerTwo": {"mark": "O"}}},
			"moves": [{"row": 0, "col": 0, "player": "playerOne", "mark": "S", "turn": 7}]}`

		payload, err := Decode([]byte(text))

		require.NoError(t, err)
		assert.Equal(t, 7, payload.Moves[0].Turn)
	})
}

func TestEncode(t *testing.T) {
	controller := sos.NewController(3, entity.ModeSimple)
	require.NoError(t, controller.MakeMove(1, 1))

	data, err := Encode(Serialize(controller.State()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"header": {
			"size": 3,
			"mode": "simple",
			"players": {
				"playerOne": {"mark": "S", "isComputer": false},
				"playerTwo": {"mark": "O", "isComputer": false}
			}
		},
		"moves": [{"row": 1, "col": 1, "player": "playerOne", "mark": "S", "turn": 1}]
	}`, string(data))

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Serialize(controller.State()), *decoded)
}

func TestEncode_EmptyMovesIsArray(t *testing.T) {
	data, err := Encode(entity.ReplayPayload{Header: entity.ReplayHeader{Size: 3, Mode: entity.ModeSimple}})

	require.NoError(t, err)
	assert.Contains(t, string(data), `"moves": []`)
}

func TestValidate(t *testing.T) {
	t.Run("Sorts moves of a valid payload", func(t *testing.T) {
		payload := &entity.ReplayPayload{
			Header: entity.ReplayHeader{Size: 3, Mode: entity.ModeSimple, Players: entity.DefaultPlayers()},
			Moves:  turns(2, 1),
		}

		require.NoError(t, Validate(payload))

		assert.Equal(t, 1, payload.Moves[0].Turn)
		assert.Equal(t, 2, payload.Moves[1].Turn)
	})

	t.Run("Header problems are malformed", func(t *testing.T) {
		payload := &entity.ReplayPayload{Header: entity.ReplayHeader{Size: 3, Mode: "chess", Players: entity.DefaultPlayers()}}

		require.ErrorIs(t, Validate(payload), apperror.ErrMalformedReplay)
	})

	t.Run("Turn problems break integrity", func(t *testing.T) {
		payload := &entity.ReplayPayload{
			Header: entity.ReplayHeader{Size: 3, Mode: entity.ModeGeneral, Players: entity.DefaultPlayers()},
			Moves:  turns(1, 1),
		}

		require.ErrorIs(t, Validate(payload), apperror.ErrReplayIntegrity)
	})
}
