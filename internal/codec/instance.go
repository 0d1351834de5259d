package codec

import (
	"fmt"

	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/game"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

const (
	// InstancePackSize is the exact wire size of a flag instance record:
	// type ref + status + endurance + owner + 12 floats.
	InstancePackSize = TypePackSize + 1 + 1 + 1 + 12*4

	// FlagPLen bounds the per-flag budget the transport layer uses when
	// sizing game-state messages.
	FlagPLen = 55
)

// PackInstance writes a flag instance record.
func PackInstance(w *wire.Writer, inst *flag.Instance) {
	packInstance(w, inst, inst.Type)
}

// FakePackInstance writes an instance record with the type disguised as the
// decoy. Position and status are observable in the world anyway, so every
// other field is serialized truthfully; only the identity is hidden.
func FakePackInstance(w *wire.Writer, inst *flag.Instance, decoy *flag.Type) {
	packInstance(w, inst, decoy)
}

func packInstance(w *wire.Writer, inst *flag.Instance, t *flag.Type) {
	PackType(w, t)
	w.PutUint8(uint8(inst.Status))
	w.PutUint8(uint8(inst.Endurance))
	w.PutUint8(uint8(inst.Owner))
	putVec(w, inst.Position)
	putVec(w, inst.LaunchPosition)
	putVec(w, inst.LandingPosition)
	w.PutFloat32(inst.FlightTime)
	w.PutFloat32(inst.FlightEnd)
	w.PutFloat32(inst.InitialVelocity)
}

// UnpackInstance reads a flag instance record, resolving the type through
// the registry (with the same unknown-abbreviation degradation as
// UnpackType). A truncated or malformed record fails without producing a
// partial instance, and the codec never transitions status on its own.
func UnpackInstance(r *wire.Reader, reg *flag.Registry) (*flag.Instance, error) {
	t := UnpackType(r, reg)
	status := flag.Status(r.Uint8())
	endurance := flag.Endurance(r.Uint8())
	owner := game.PlayerID(r.Uint8())
	position := getVec(r)
	launch := getVec(r)
	landing := getVec(r)
	flightTime := r.Float32()
	flightEnd := r.Float32()
	velocity := r.Float32()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %d", ErrInvalidDescriptor, status)
	}
	if !endurance.Valid() {
		return nil, fmt.Errorf("%w: endurance %d", ErrInvalidDescriptor, endurance)
	}

	return &flag.Instance{
		Type:            t,
		Status:          status,
		Endurance:       endurance,
		Owner:           owner,
		Position:        position,
		LaunchPosition:  launch,
		LandingPosition: landing,
		FlightTime:      flightTime,
		FlightEnd:       flightEnd,
		InitialVelocity: velocity,
	}, nil
}

func putVec(w *wire.Writer, v [3]float32) {
	w.PutFloat32(v[0])
	w.PutFloat32(v[1])
	w.PutFloat32(v[2])
}

func getVec(r *wire.Reader) [3]float32 {
	return [3]float32{r.Float32(), r.Float32(), r.Float32()}
}
