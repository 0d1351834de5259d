package flag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahidmounir/bzflag/pkg/game"
)

func TestType_Label(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name   string
		abbrev string
		want   string
	}{
		{name: "good super flag gets plus", abbrev: "GM", want: "Guided Missile (+GM)"},
		{name: "bad flag gets minus", abbrev: "CB", want: "Colorblindness (-CB)"},
		{name: "team flag unsigned", abbrev: "R*", want: "Red Team (R*)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ft, ok := reg.Lookup(tc.abbrev)
			require.True(t, ok)
			assert.Equal(t, tc.want, ft.Label())
		})
	}
}

func TestType_Information(t *testing.T) {
	reg := newTestRegistry()

	ft, ok := reg.Lookup("L")
	require.True(t, ok)
	assert.Equal(t, "Laser (+L): Shoots a laser. Infinite speed and range but long reload time.", ft.Information())
}

func TestType_Colors(t *testing.T) {
	reg := newTestRegistry()

	red, ok := reg.Lookup("R*")
	require.True(t, ok)
	assert.Equal(t, game.TankColor(game.RedTeam), red.Color())
	assert.Equal(t, game.RadarColor(game.RedTeam), red.RadarColor())

	// Super flags are white out the window; radar color follows quality
	// unless the effect has a palette entry.
	useless, ok := reg.Lookup("US")
	require.True(t, ok)
	assert.Equal(t, game.RGB{1.0, 1.0, 1.0}, useless.Color())
	assert.Equal(t, game.RGB{1.0, 1.0, 1.0}, useless.RadarColor())

	blind, ok := reg.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, game.RGB{0.7, 0.7, 0.7}, blind.RadarColor())

	laser, ok := reg.Lookup("L")
	require.True(t, ok)
	assert.Equal(t, game.RGB{1.0, 0.3, 0.3}, laser.RadarColor())
}

func TestCatalog_OneFlagPerEffect(t *testing.T) {
	reg := newTestRegistry()

	byEffect := make(map[Effect]int)
	for _, ft := range append(append([]*Type{}, reg.Good()...), reg.Bad()...) {
		byEffect[ft.Effect]++
	}
	for e := Effect(1); e < effectCount; e++ {
		assert.Equal(t, 1, byEffect[e], "effect %s should have exactly one built-in flag", e)
	}
}

func TestCatalog_EnduranceConventions(t *testing.T) {
	reg := newTestRegistry()

	for _, ft := range reg.Good() {
		if ft.Team != game.NoTeam {
			assert.Equal(t, EnduranceNormal, ft.Endurance, "team flag %q", ft.Abbrev)
		} else if ft.Effect != EffectNormal {
			assert.Equal(t, EnduranceUnstable, ft.Endurance, "good super flag %q", ft.Abbrev)
		}
	}
	for _, ft := range reg.Bad() {
		assert.Equal(t, EnduranceSticky, ft.Endurance, "bad flag %q", ft.Abbrev)
	}
}

func TestCatalog_AbbreviationsFitTheWire(t *testing.T) {
	reg := newTestRegistry()

	for _, ft := range append(append([]*Type{}, reg.Good()...), reg.Bad()...) {
		assert.LessOrEqual(t, len(ft.Abbrev), 2, "abbreviation %q too long for wire", ft.Abbrev)
	}
}

func TestParseHelpers(t *testing.T) {
	e, ok := ParseEndurance("Sticky")
	assert.True(t, ok)
	assert.Equal(t, EnduranceSticky, e)
	_, ok = ParseEndurance("Gooey")
	assert.False(t, ok)

	q, ok := ParseQuality("Bad")
	assert.True(t, ok)
	assert.Equal(t, QualityBad, q)
	_, ok = ParseQuality("Meh")
	assert.False(t, ok)

	s, ok := ParseShotType("Special")
	assert.True(t, ok)
	assert.Equal(t, SpecialShot, s)

	eff, ok := ParseEffect("GuidedMissile")
	assert.True(t, ok)
	assert.Equal(t, EffectGuidedMissile, eff)
	_, ok = ParseEffect("TimeTravel")
	assert.False(t, ok)
}

func TestEnums_ValidRanges(t *testing.T) {
	assert.True(t, EnduranceSticky.Valid())
	assert.False(t, Endurance(3).Valid())
	assert.True(t, QualityBad.Valid())
	assert.False(t, Quality(2).Valid())
	assert.True(t, SpecialShot.Valid())
	assert.False(t, ShotType(2).Valid())
	assert.True(t, EffectNoShot.Valid())
	assert.False(t, effectCount.Valid())
	assert.True(t, StatusGoing.Valid())
	assert.False(t, statusCount.Valid())
}

func TestNewInstance(t *testing.T) {
	reg := newTestRegistry()
	ft, ok := reg.Lookup("CB")
	require.True(t, ok)

	inst := NewInstance(ft)
	assert.Same(t, ft, inst.Type)
	assert.Equal(t, StatusNoExist, inst.Status)
	assert.Equal(t, EnduranceSticky, inst.Endurance, "endurance copied from type")
	assert.Equal(t, game.NoPlayer, inst.Owner)

	// Instance endurance is independent of the shared descriptor.
	inst.Endurance = EnduranceUnstable
	assert.Equal(t, EnduranceSticky, ft.Endurance)
}
