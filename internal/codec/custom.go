package codec

import (
	"errors"
	"fmt"

	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/game"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

// ErrInvalidDescriptor is returned when a custom flag descriptor carries an
// out-of-range enum byte. Unlike an unknown abbreviation, this is a hard
// failure: the handshake step that sent it cannot be trusted.
var ErrInvalidDescriptor = errors.New("codec: invalid custom flag descriptor")

// PackCustom writes a full type descriptor. Custom types are sent once per
// connection, before the first reference to their abbreviation.
//
// Layout: abbrev(2, NUL padded) + name(len-prefixed) + help(len-prefixed) +
// endurance(1) + shot(1) + quality(1) + team(1, signed) + effect(1).
func PackCustom(w *wire.Writer, t *flag.Type) error {
	w.PutPadded(t.Abbrev, TypePackSize)
	if err := w.PutString(t.Name); err != nil {
		return fmt.Errorf("packing name: %w", err)
	}
	if err := w.PutString(t.Help); err != nil {
		return fmt.Errorf("packing help: %w", err)
	}
	w.PutUint8(uint8(t.Endurance))
	w.PutUint8(uint8(t.Shot))
	w.PutUint8(uint8(t.Quality))
	w.PutInt8(int8(t.Team))
	w.PutUint8(uint8(t.Effect))
	return nil
}

// UnpackCustom reads a full type descriptor, validates it, registers the
// new type into the registry's custom set, and returns the canonical copy.
// A duplicate abbreviation is surfaced to the caller (the connection layer
// decides whether that kills the handshake); nothing is registered from a
// malformed descriptor.
func UnpackCustom(r *wire.Reader, reg *flag.Registry) (*flag.Type, error) {
	abbrev := r.Padded(TypePackSize)
	name := r.String()
	help := r.String()
	endurance := flag.Endurance(r.Uint8())
	shot := flag.ShotType(r.Uint8())
	quality := flag.Quality(r.Uint8())
	team := game.TeamColor(r.Int8())
	effect := flag.Effect(r.Uint8())
	if err := r.Err(); err != nil {
		return nil, err
	}

	switch {
	case !endurance.Valid():
		return nil, fmt.Errorf("%w: endurance %d", ErrInvalidDescriptor, endurance)
	case !shot.Valid():
		return nil, fmt.Errorf("%w: shot type %d", ErrInvalidDescriptor, shot)
	case !quality.Valid():
		return nil, fmt.Errorf("%w: quality %d", ErrInvalidDescriptor, quality)
	case !team.Valid():
		return nil, fmt.Errorf("%w: team %d", ErrInvalidDescriptor, team)
	case !effect.Valid():
		return nil, fmt.Errorf("%w: effect %d", ErrInvalidDescriptor, effect)
	case abbrev == "":
		return nil, fmt.Errorf("%w: empty abbreviation", ErrInvalidDescriptor)
	}

	return reg.RegisterCustom(&flag.Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      help,
		Endurance: endurance,
		Shot:      shot,
		Quality:   quality,
		Team:      team,
		Effect:    effect,
		Custom:    true,
	})
}
