// Package game holds the small shared types the flag subsystem exchanges
// with the player/team and transport layers.
package game

// TeamColor identifies a team affiliation. The numeric values are part of
// the wire protocol and must not be reordered.
type TeamColor int8

const (
	AutomaticTeam TeamColor = -2
	NoTeam        TeamColor = -1
	RogueTeam     TeamColor = 0
	RedTeam       TeamColor = 1
	GreenTeam     TeamColor = 2
	BlueTeam      TeamColor = 3
	PurpleTeam    TeamColor = 4
	ObserverTeam  TeamColor = 5
	RabbitTeam    TeamColor = 6
	HunterTeam    TeamColor = 7
)

// Valid reports whether t is one of the defined team values.
func (t TeamColor) Valid() bool {
	return t >= AutomaticTeam && t <= HunterTeam
}

func (t TeamColor) String() string {
	switch t {
	case AutomaticTeam:
		return "Automatic"
	case NoTeam:
		return "None"
	case RogueTeam:
		return "Rogue"
	case RedTeam:
		return "Red"
	case GreenTeam:
		return "Green"
	case BlueTeam:
		return "Blue"
	case PurpleTeam:
		return "Purple"
	case ObserverTeam:
		return "Observer"
	case RabbitTeam:
		return "Rabbit"
	case HunterTeam:
		return "Hunter"
	default:
		return "Invalid"
	}
}
