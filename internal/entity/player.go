package entity

type PlayerID string

const (
	PlayerOne PlayerID = "playerOne"
	PlayerTwo PlayerID = "playerTwo"
)

// Players lists both seats in turn order.
var Players = []PlayerID{PlayerOne, PlayerTwo}

func (that PlayerID) IsValid() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that PlayerID) Opponent() PlayerID {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

type PlayerConfig struct {
	Mark       Mark `json:"mark"`
	IsComputer bool `json:"isComputer"`
}

func DefaultPlayers() map[PlayerID]PlayerConfig {
	return map[PlayerID]PlayerConfig{
		PlayerOne: {Mark: MarkS},
		PlayerTwo: {Mark: MarkO},
	}
}

func ClonePlayers(players map[PlayerID]PlayerConfig) map[PlayerID]PlayerConfig {
	clone := make(map[PlayerID]PlayerConfig, len(players))
	for id, conf := range players {
		clone[id] = conf
	}

	return clone
}
