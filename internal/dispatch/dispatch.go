// Package dispatch routes incoming wire messages to registered handlers by
// message code. The transport layer splits the stream into framed messages;
// everything after that (decode, state update) happens in a handler.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Message is one framed wire message. Code is the 2-byte message type
// identifier; Payload is the body, already stripped of framing.
type Message struct {
	Code      uint16
	Payload   []byte
	Timestamp time.Time
}

// HandlerFunc processes a message.
type HandlerFunc func(Message) error

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures handler registration.
type Option func(*config)

type config struct {
	bufferSize int
	blocking   bool
	logged     bool
}

// Buffered makes the handler async with a queue of the given size.
func Buffered(size int) Option {
	return func(c *config) {
		c.bufferSize = size
	}
}

// Blocking makes a buffered handler block when the queue is full instead of
// dropping.
func Blocking() Option {
	return func(c *config) {
		c.blocking = true
	}
}

// Logged adds debug logging around the handler.
func Logged() Option {
	return func(c *config) {
		c.logged = true
	}
}

// Dispatcher routes messages to registered handlers.
type Dispatcher struct {
	handlers map[uint16]HandlerFunc
	logger   Logger

	queueSize metric.Int64ObservableGauge
	processed metric.Int64Counter
	dropped   metric.Int64Counter
	failed    metric.Int64Counter

	// Track buffers for gauge callback
	mu      sync.RWMutex
	buffers map[uint16]chan Message
}

// New creates a Dispatcher with the given logger. Metrics come from the
// global OTel meter (no-op if not configured).
func New(logger Logger) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: make(map[uint16]HandlerFunc),
		buffers:  make(map[uint16]chan Message),
		logger:   logger,
	}

	m := meter()

	var err error

	d.queueSize, err = m.Int64ObservableGauge(
		"dispatch.queue.size",
		metric.WithDescription("Current number of messages queued per code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queue size gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			d.mu.RLock()
			defer d.mu.RUnlock()
			for code, buf := range d.buffers {
				o.ObserveInt64(d.queueSize, int64(len(buf)),
					metric.WithAttributes(attribute.String("code", CodeString(code))))
			}
			return nil
		},
		d.queueSize,
	)
	if err != nil {
		return nil, fmt.Errorf("registering queue callback: %w", err)
	}

	d.processed, err = m.Int64Counter(
		"dispatch.messages.processed",
		metric.WithDescription("Total messages processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processed counter: %w", err)
	}

	d.dropped, err = m.Int64Counter(
		"dispatch.messages.dropped",
		metric.WithDescription("Total messages dropped due to full queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	d.failed, err = m.Int64Counter(
		"dispatch.messages.failed",
		metric.WithDescription("Total messages whose handler returned an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	return d, nil
}

// Register adds a handler for the given message code.
func (d *Dispatcher) Register(code uint16, h HandlerFunc, opts ...Option) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := h

	if cfg.bufferSize > 0 {
		handler = d.withBuffer(code, cfg.bufferSize, cfg.blocking, handler)
	}

	if cfg.logged {
		handler = d.withLogging(code, handler)
	}

	d.handlers[code] = handler
}

// Dispatch routes a message to its registered handler.
func (d *Dispatcher) Dispatch(msg Message) error {
	h, ok := d.handlers[msg.Code]
	if !ok {
		return fmt.Errorf("unknown message code: %s", CodeString(msg.Code))
	}
	err := h(msg)
	attrs := metric.WithAttributes(attribute.String("code", CodeString(msg.Code)))
	d.processed.Add(context.Background(), 1, attrs)
	if err != nil {
		d.failed.Add(context.Background(), 1, attrs)
	}
	return err
}

// HasHandler returns true if a handler is registered for the code.
func (d *Dispatcher) HasHandler(code uint16) bool {
	_, ok := d.handlers[code]
	return ok
}

func (d *Dispatcher) withBuffer(code uint16, size int, blocking bool, h HandlerFunc) HandlerFunc {
	buffer := make(chan Message, size)

	d.mu.Lock()
	d.buffers[code] = buffer
	d.mu.Unlock()

	codeAttr := attribute.String("code", CodeString(code))

	go func() {
		for msg := range buffer {
			if err := h(msg); err != nil && d.logger != nil {
				d.logger.Error("buffered handler failed",
					"code", CodeString(code), "error", err)
			}
		}
	}()

	if blocking {
		return func(msg Message) error {
			buffer <- msg
			return nil
		}
	}

	return func(msg Message) error {
		select {
		case buffer <- msg:
			return nil
		default:
			d.dropped.Add(context.Background(), 1, metric.WithAttributes(codeAttr))
			return fmt.Errorf("queue full: %s", CodeString(code))
		}
	}
}

func (d *Dispatcher) withLogging(code uint16, h HandlerFunc) HandlerFunc {
	return func(msg Message) error {
		start := time.Now()
		d.logger.Debug("handling message", "code", CodeString(code), "bytes", len(msg.Payload))

		err := h(msg)

		if err != nil {
			d.logger.Error("message failed", "code", CodeString(code), "duration", time.Since(start), "error", err)
		} else {
			d.logger.Debug("message complete", "code", CodeString(code), "duration", time.Since(start))
		}

		return err
	}
}

// CodeString renders a message code the way the protocol spells it: two
// ASCII characters packed big endian.
func CodeString(code uint16) string {
	hi, lo := byte(code>>8), byte(code)
	if hi >= 0x20 && hi < 0x7f && lo >= 0x20 && lo < 0x7f {
		return string([]byte{hi, lo})
	}
	return fmt.Sprintf("0x%04x", code)
}
