// Package flag models the flag subsystem of the arena game: the immutable
// flag type catalog, the registry that resolves wire abbreviations to types,
// and the mutable per-flag instances tracked in a live session.
package flag

import (
	"fmt"

	"github.com/wahidmounir/bzflag/pkg/game"
)

// Endurance tells whether a flag type is droppable and what happens to it
// when it is dropped.
type Endurance uint8

const (
	// EnduranceNormal flags persist indefinitely and may always be dropped.
	EnduranceNormal Endurance = 0
	// EnduranceUnstable flags disappear after one use.
	EnduranceUnstable Endurance = 1
	// EnduranceSticky flags can't be dropped through the normal drop action.
	EnduranceSticky Endurance = 2
)

// Valid reports whether e is a defined endurance value.
func (e Endurance) Valid() bool {
	return e <= EnduranceSticky
}

func (e Endurance) String() string {
	switch e {
	case EnduranceNormal:
		return "Normal"
	case EnduranceUnstable:
		return "Unstable"
	case EnduranceSticky:
		return "Sticky"
	default:
		return "Invalid"
	}
}

// ParseEndurance maps an endurance name back to its value.
func ParseEndurance(s string) (Endurance, bool) {
	switch s {
	case "Normal":
		return EnduranceNormal, true
	case "Unstable":
		return EnduranceUnstable, true
	case "Sticky":
		return EnduranceSticky, true
	default:
		return EnduranceNormal, false
	}
}

// Quality says whether a flag type helps or hurts its carrier.
type Quality uint8

const (
	QualityGood Quality = 0
	QualityBad  Quality = 1
)

// Valid reports whether q is a defined quality value.
func (q Quality) Valid() bool {
	return q <= QualityBad
}

func (q Quality) String() string {
	switch q {
	case QualityGood:
		return "Good"
	case QualityBad:
		return "Bad"
	default:
		return "Invalid"
	}
}

// ParseQuality maps a quality name back to its value.
func ParseQuality(s string) (Quality, bool) {
	switch s {
	case "Good":
		return QualityGood, true
	case "Bad":
		return QualityBad, true
	default:
		return QualityGood, false
	}
}

// ShotType says whether carrying the flag grants a special firing mode.
type ShotType uint8

const (
	NormalShot  ShotType = 0
	SpecialShot ShotType = 1
)

// Valid reports whether s is a defined shot type.
func (s ShotType) Valid() bool {
	return s <= SpecialShot
}

func (s ShotType) String() string {
	switch s {
	case NormalShot:
		return "Normal"
	case SpecialShot:
		return "Special"
	default:
		return "Invalid"
	}
}

// ParseShotType maps a shot type name back to its value.
func ParseShotType(s string) (ShotType, bool) {
	switch s {
	case "Normal":
		return NormalShot, true
	case "Special":
		return SpecialShot, true
	default:
		return NormalShot, false
	}
}

// Type is an immutable flag type descriptor, like "GM" or "CL". The registry
// owns the single copy of each descriptor; everything else (instances,
// decoded messages) holds a *Type into the registry, so two references to
// the same type compare equal by pointer identity. Do not mutate a Type
// after registration.
type Type struct {
	Name   string
	Abbrev string
	Help   string

	Endurance Endurance
	Shot      ShotType
	Quality   Quality
	Team      game.TeamColor
	Effect    Effect

	// Custom marks server-defined types that must be transmitted in full
	// before first use, as opposed to the built-in catalog every build
	// shares.
	Custom bool
}

// sign is the polarity hint shown before the abbreviation: "+" for good
// super flags, "-" for bad flags, nothing for team and plain flags.
func (t *Type) sign() string {
	if t.Quality == QualityBad {
		return "-"
	}
	if t.Effect != EffectNormal {
		return "+"
	}
	return ""
}

// Label returns "<name> (<sign><abbrev>)" for UI listings.
func (t *Type) Label() string {
	return fmt.Sprintf("%s (%s%s)", t.Name, t.sign(), t.Abbrev)
}

// Information returns "<name> (<sign><abbrev>): <help>".
func (t *Type) Information() string {
	return fmt.Sprintf("%s (%s%s): %s", t.Name, t.sign(), t.Abbrev, t.Help)
}

// Color returns the out-the-window color of flags of this type. Team flags
// take their team's tank color; super flags are white.
func (t *Type) Color() game.RGB {
	if t.Team != game.NoTeam {
		return game.TankColor(t.Team)
	}
	return game.RGB{1.0, 1.0, 1.0}
}

// RadarColor returns the radar color of flags of this type. Team flags take
// their team's radar color. A handful of effects have a palette entry of
// their own; other super flags render by quality.
func (t *Type) RadarColor() game.RGB {
	if t.Team != game.NoTeam {
		return game.RadarColor(t.Team)
	}
	if c, ok := effectPalette[t.Effect]; ok {
		return c
	}
	if t.Quality == QualityGood {
		return game.RGB{1.0, 1.0, 1.0}
	}
	return game.RGB{0.7, 0.7, 0.7}
}

// effectPalette colors the effects worth spotting at a glance on radar.
var effectPalette = map[Effect]game.RGB{
	EffectLaser:         {1.0, 0.3, 0.3},
	EffectGuidedMissile: {1.0, 0.6, 0.2},
	EffectShockWave:     {0.5, 0.8, 1.0},
	EffectShield:        {0.3, 1.0, 0.5},
	EffectStealth:       {0.4, 0.4, 0.4},
}
