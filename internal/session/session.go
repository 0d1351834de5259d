// Package session owns the per-connection flag state: the registry (built-in
// catalog plus the current server's custom types) and the set of flag
// instances tracked in the world. The networking layer hands it decoded
// message payloads; it applies them and nothing more. Who may pick up or
// capture a flag is the game rules' business, not ours.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wahidmounir/bzflag/internal/codec"
	"github.com/wahidmounir/bzflag/internal/dispatch"
	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

// Message codes for the flag subsystem, two ASCII characters packed big
// endian like the rest of the protocol.
const (
	// MsgFlagUpdate carries a batch of flag instance records ('fu').
	MsgFlagUpdate uint16 = 0x6675
	// MsgFlagType carries one custom flag type descriptor ('ft').
	MsgFlagType uint16 = 0x6674
	// MsgFlagClear tells the client to drop all custom types ('fc').
	MsgFlagClear uint16 = 0x6663
)

// Session tracks flag state for one server connection.
type Session struct {
	logger *slog.Logger
	reg    *flag.Registry

	flags map[uint16]*flag.Instance

	updatesApplied   metric.Int64Counter
	customRegistered metric.Int64Counter
	unknownResolved  metric.Int64Counter
	decodeFailures   metric.Int64Counter
}

// New creates a session around the given registry.
func New(logger *slog.Logger, reg *flag.Registry) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		logger: logger,
		reg:    reg,
		flags:  make(map[uint16]*flag.Instance),
	}

	m := meter()
	var err error

	s.updatesApplied, err = m.Int64Counter(
		"session.flag.updates",
		metric.WithDescription("Flag instance updates applied"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating updates counter: %w", err)
	}
	s.customRegistered, err = m.Int64Counter(
		"session.flag.custom_registered",
		metric.WithDescription("Custom flag types registered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating custom counter: %w", err)
	}
	s.unknownResolved, err = m.Int64Counter(
		"session.flag.unknown_resolved",
		metric.WithDescription("Flag updates whose type degraded to the Unknown sentinel"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating unknown counter: %w", err)
	}
	s.decodeFailures, err = m.Int64Counter(
		"session.flag.decode_failures",
		metric.WithDescription("Flag messages rejected as malformed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating decode failure counter: %w", err)
	}

	return s, nil
}

// Registry returns the session's registry.
func (s *Session) Registry() *flag.Registry {
	return s.reg
}

// Attach registers the session's handlers on a dispatcher.
func (s *Session) Attach(d *dispatch.Dispatcher) {
	d.Register(MsgFlagUpdate, func(msg dispatch.Message) error {
		return s.HandleFlagUpdate(msg.Payload)
	}, dispatch.Logged())
	d.Register(MsgFlagType, func(msg dispatch.Message) error {
		return s.HandleFlagType(msg.Payload)
	}, dispatch.Logged())
	d.Register(MsgFlagClear, func(msg dispatch.Message) error {
		s.Reset()
		return nil
	})
}

// HandleFlagUpdate applies a batch of flag instance records. Payload layout:
// uint16 count, then count x (uint16 flag index + instance record). A
// malformed batch is rejected whole; a well-formed record whose type is
// unknown still applies, carrying the Unknown sentinel.
func (s *Session) HandleFlagUpdate(payload []byte) error {
	r := wire.NewReader(payload)
	count := int(r.Uint16())

	type update struct {
		index uint16
		inst  *flag.Instance
	}
	updates := make([]update, 0, count)
	for i := 0; i < count; i++ {
		index := r.Uint16()
		inst, err := codec.UnpackInstance(r, s.reg)
		if err != nil {
			s.decodeFailures.Add(context.Background(), 1,
				metric.WithAttributes(attribute.String("message", "flagUpdate")))
			return fmt.Errorf("flag update %d/%d: %w", i+1, count, err)
		}
		updates = append(updates, update{index: index, inst: inst})
	}
	if err := r.Err(); err != nil {
		return err
	}

	// Only mutate once the whole batch decoded.
	for _, u := range updates {
		if u.inst.Type == s.reg.Unknown() {
			s.unknownResolved.Add(context.Background(), 1)
			s.logger.Debug("flag update with unknown type", "index", u.index)
		}
		s.flags[u.index] = u.inst
	}
	s.updatesApplied.Add(context.Background(), int64(len(updates)))
	return nil
}

// HandleFlagType registers one custom flag type descriptor received during
// connection setup.
func (s *Session) HandleFlagType(payload []byte) error {
	r := wire.NewReader(payload)
	t, err := codec.UnpackCustom(r, s.reg)
	if err != nil {
		s.decodeFailures.Add(context.Background(), 1,
			metric.WithAttributes(attribute.String("message", "flagType")))
		return fmt.Errorf("custom flag descriptor: %w", err)
	}
	s.customRegistered.Add(context.Background(), 1)
	s.logger.Info("custom flag negotiated", "abbrev", t.Abbrev, "name", t.Name)
	return nil
}

// Flag returns the tracked instance at the given world index.
func (s *Session) Flag(index uint16) (*flag.Instance, bool) {
	inst, ok := s.flags[index]
	return inst, ok
}

// Flags returns the tracked instances keyed by world index. The map is
// shared; callers must not modify it.
func (s *Session) Flags() map[uint16]*flag.Instance {
	return s.flags
}

// Len returns the number of tracked instances.
func (s *Session) Len() int {
	return len(s.flags)
}

// Reset drops all tracked instances and custom types, as when leaving or
// reconnecting to a server. Built-in types survive.
func (s *Session) Reset() {
	s.flags = make(map[uint16]*flag.Instance)
	s.reg.ClearCustom()
	s.logger.Debug("session reset")
}
