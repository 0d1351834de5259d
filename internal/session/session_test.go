package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahidmounir/bzflag/internal/codec"
	"github.com/wahidmounir/bzflag/internal/dispatch"
	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/game"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(logger, flag.NewRegistry(logger))
	require.NoError(t, err)
	return s
}

func packUpdate(t *testing.T, reg *flag.Registry, entries map[uint16]*flag.Instance) []byte {
	t.Helper()
	w := wire.NewWriter()
	w.PutUint16(uint16(len(entries)))
	for index, inst := range entries {
		w.PutUint16(index)
		codec.PackInstance(w, inst)
	}
	return w.Bytes()
}

func groundedInstance(t *testing.T, reg *flag.Registry, abbrev string) *flag.Instance {
	t.Helper()
	ft, ok := reg.Lookup(abbrev)
	require.True(t, ok)
	inst := flag.NewInstance(ft)
	inst.Status = flag.StatusOnGround
	inst.Position = [3]float32{5, 10, 0}
	return inst
}

func TestSession_FlagUpdateBatch(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		0: groundedInstance(t, reg, "GM"),
		3: groundedInstance(t, reg, "CB"),
	})
	require.NoError(t, s.HandleFlagUpdate(payload))

	assert.Equal(t, 2, s.Len())

	gm, ok := s.Flag(0)
	require.True(t, ok)
	assert.Equal(t, "GM", gm.Type.Abbrev)

	cb, ok := s.Flag(3)
	require.True(t, ok)
	assert.Equal(t, "CB", cb.Type.Abbrev)

	_, ok = s.Flag(1)
	assert.False(t, ok)
}

func TestSession_FlagUpdateOverwritesIndex(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	first := packUpdate(t, reg, map[uint16]*flag.Instance{
		0: groundedInstance(t, reg, "GM"),
	})
	require.NoError(t, s.HandleFlagUpdate(first))

	carried := groundedInstance(t, reg, "GM")
	carried.Status = flag.StatusOnTank
	carried.Owner = 4
	second := packUpdate(t, reg, map[uint16]*flag.Instance{0: carried})
	require.NoError(t, s.HandleFlagUpdate(second))

	assert.Equal(t, 1, s.Len())
	inst, ok := s.Flag(0)
	require.True(t, ok)
	assert.Equal(t, flag.StatusOnTank, inst.Status)
	assert.EqualValues(t, 4, inst.Owner)
}

func TestSession_FlagUpdateUnknownTypeStillApplies(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		2: groundedInstance(t, reg, "V"),
	})
	// Rewrite the type ref to an abbreviation this build has never seen.
	payload[4], payload[5] = 'Z', 'Q'

	require.NoError(t, s.HandleFlagUpdate(payload))

	inst, ok := s.Flag(2)
	require.True(t, ok)
	assert.Same(t, reg.Unknown(), inst.Type)
	assert.Equal(t, [3]float32{5, 10, 0}, inst.Position)
}

func TestSession_FlagUpdateMalformedRejectsWholeBatch(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		0: groundedInstance(t, reg, "GM"),
		1: groundedInstance(t, reg, "V"),
	})

	// Cut mid-record: the first record may decode fine but the batch is bad.
	err := s.HandleFlagUpdate(payload[:len(payload)-5])
	require.Error(t, err)
	assert.ErrorIs(t, err, wire.ErrTruncated)
	assert.Equal(t, 0, s.Len(), "malformed batch must not apply partially")
}

func TestSession_FlagUpdateInvalidStatusRejected(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		0: groundedInstance(t, reg, "GM"),
	})
	// count(2) + index(2) + typeRef(2) puts the status byte at offset 6.
	payload[6] = 0xff

	err := s.HandleFlagUpdate(payload)
	require.ErrorIs(t, err, codec.ErrInvalidDescriptor)
	assert.Equal(t, 0, s.Len())
}

func TestSession_FlagTypeNegotiation(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	custom := &flag.Type{
		Name:      "Gravity Well",
		Abbrev:    "GW",
		Help:      "Nearby shots curve toward your tank.",
		Endurance: flag.EnduranceUnstable,
		Quality:   flag.QualityGood,
		Team:      game.NoTeam,
		Custom:    true,
	}

	w := wire.NewWriter()
	require.NoError(t, codec.PackCustom(w, custom))

	require.NoError(t, s.HandleFlagType(w.Bytes()))

	got, ok := reg.Lookup("GW")
	require.True(t, ok)
	assert.Equal(t, "Gravity Well", got.Name)
	assert.True(t, got.Custom)
}

func TestSession_FlagTypeDuplicateRejected(t *testing.T) {
	s := newTestSession(t)

	dup := &flag.Type{Name: "Fake Missile", Abbrev: "GM", Team: game.NoTeam, Custom: true}
	w := wire.NewWriter()
	require.NoError(t, codec.PackCustom(w, dup))

	err := s.HandleFlagType(w.Bytes())
	require.ErrorIs(t, err, flag.ErrDuplicateAbbrev)

	got, ok := s.Registry().Lookup("GM")
	require.True(t, ok)
	assert.Equal(t, "Guided Missile", got.Name, "built-in untouched")
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	custom := &flag.Type{Name: "Gravity Well", Abbrev: "GW", Team: game.NoTeam, Custom: true}
	w := wire.NewWriter()
	require.NoError(t, codec.PackCustom(w, custom))
	require.NoError(t, s.HandleFlagType(w.Bytes()))

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		0: groundedInstance(t, reg, "GM"),
	})
	require.NoError(t, s.HandleFlagUpdate(payload))
	require.Equal(t, 1, s.Len())

	s.Reset()

	assert.Equal(t, 0, s.Len())
	_, ok := reg.Lookup("GW")
	assert.False(t, ok, "custom types dropped on reset")
	_, ok = reg.Lookup("GM")
	assert.True(t, ok, "built-ins survive reset")
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestSession_AttachRoutesMessages(t *testing.T) {
	s := newTestSession(t)
	reg := s.Registry()

	d, err := dispatch.New(nopLogger{})
	require.NoError(t, err)
	s.Attach(d)

	assert.True(t, d.HasHandler(MsgFlagUpdate))
	assert.True(t, d.HasHandler(MsgFlagType))
	assert.True(t, d.HasHandler(MsgFlagClear))

	payload := packUpdate(t, reg, map[uint16]*flag.Instance{
		7: groundedInstance(t, reg, "SH"),
	})
	require.NoError(t, d.Dispatch(dispatch.Message{Code: MsgFlagUpdate, Payload: payload}))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, d.Dispatch(dispatch.Message{Code: MsgFlagClear}))
	assert.Equal(t, 0, s.Len())
}

func TestMessageCodes(t *testing.T) {
	assert.Equal(t, "fu", dispatch.CodeString(MsgFlagUpdate))
	assert.Equal(t, "ft", dispatch.CodeString(MsgFlagType))
	assert.Equal(t, "fc", dispatch.CodeString(MsgFlagClear))
}
