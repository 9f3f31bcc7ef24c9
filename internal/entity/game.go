package entity

type Mark string

const (
	MarkNone Mark = ""
	MarkS    Mark = "S"
	MarkO    Mark = "O"
)

func (that Mark) IsValid() bool {
	return that == MarkS || that == MarkO
}

type Mode string

const (
	ModeSimple  Mode = "simple"
	ModeGeneral Mode = "general"
)

func (that Mode) IsValid() bool {
	return that == ModeSimple || that == ModeGeneral
}

type Winner string

const (
	WinnerNone      Winner = ""
	WinnerPlayerOne Winner = Winner(PlayerOne)
	WinnerPlayerTwo Winner = Winner(PlayerTwo)
	WinnerDraw      Winner = "draw"
)

// WinnerOf converts the mover into the winner value announcing them.
func WinnerOf(player PlayerID) Winner {
	return Winner(player)
}

// Cell is one board square. The zero value is an empty cell.
type Cell struct {
	Mark   Mark     `json:"mark,omitempty"`
	Player PlayerID `json:"player,omitempty"`
}

func (that Cell) IsEmpty() bool {
	return that.Mark == MarkNone
}

type Scores map[PlayerID]int

func NewScores() Scores {
	return Scores{PlayerOne: 0, PlayerTwo: 0}
}

func (that Scores) Clone() Scores {
	clone := make(Scores, len(that))
	for player, score := range that {
		clone[player] = score
	}

	return clone
}

// MatchState is a snapshot of a match. Snapshots never alias the controller's own state.
type MatchState struct {
	Board         [][]Cell                  `json:"board"`
	Size          int                       `json:"size"`
	Mode          Mode                      `json:"mode"`
	CurrentPlayer PlayerID                  `json:"currentPlayer"`
	Players       map[PlayerID]PlayerConfig `json:"players"`
	Scores        Scores                    `json:"scores"`
	Winner        Winner                    `json:"winner"`
	HasStarted    bool                      `json:"hasStarted"`
}

func (that MatchState) IsFinished() bool {
	return that.Winner != WinnerNone
}

func (that MatchState) Clone() MatchState {
	clone := that
	clone.Board = CloneCells(that.Board)
	clone.Players = ClonePlayers(that.Players)
	clone.Scores = that.Scores.Clone()

	return clone
}

func CloneCells(cells [][]Cell) [][]Cell {
	clone := make([][]Cell, len(cells))
	for i, row := range cells {
		clone[i] = append([]Cell(nil), row...)
	}

	return clone
}
