package flag

import "github.com/wahidmounir/bzflag/pkg/game"

// Status says where a flag currently is. The values travel on the wire.
type Status uint8

const (
	// StatusNoExist means the flag is not present in the world.
	StatusNoExist Status = iota
	// StatusOnGround means the flag is sitting on the ground and can be picked up.
	StatusOnGround
	// StatusOnTank means the flag is being carried by a tank.
	StatusOnTank
	// StatusInAir means the flag is falling through the air.
	StatusInAir
	// StatusComing means the flag is entering the world.
	StatusComing
	// StatusGoing means the flag is leaving the world.
	StatusGoing

	statusCount
)

// Valid reports whether s is a defined status value.
func (s Status) Valid() bool {
	return s < statusCount
}

func (s Status) String() string {
	switch s {
	case StatusNoExist:
		return "NoExist"
	case StatusOnGround:
		return "OnGround"
	case StatusOnTank:
		return "OnTank"
	case StatusInAir:
		return "InAir"
	case StatusComing:
		return "Coming"
	case StatusGoing:
		return "Going"
	default:
		return "Invalid"
	}
}

// Instance is one flag tracked in a live game session. Transitions between
// statuses are driven by the game loop, not by this package: the codec
// serializes whatever state is here without interpreting it.
//
// Field validity depends on status: Position is the ground position while
// OnGround; Owner is meaningful only while OnTank; the launch/landing and
// flight fields apply while InAir, where FlightTime counts up to FlightEnd.
type Instance struct {
	Type      *Type
	Status    Status
	Endurance Endurance
	Owner     game.PlayerID

	Position        [3]float32
	LaunchPosition  [3]float32
	LandingPosition [3]float32

	FlightTime      float32
	FlightEnd       float32
	InitialVelocity float32
}

// NewInstance creates an instance of the given type, not yet in the world.
// Endurance is copied from the type so the server can later force a flag
// unstable at runtime without touching the shared descriptor.
func NewInstance(t *Type) *Instance {
	return &Instance{
		Type:      t,
		Status:    StatusNoExist,
		Endurance: t.Endurance,
		Owner:     game.NoPlayer,
	}
}
