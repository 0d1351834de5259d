package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

// ErrTruncated is reported when a read runs past the end of the buffer.
// A message that truncates mid-record is unrecoverable; the caller must
// drop it rather than use any partially decoded values.
var ErrTruncated = errors.New("wire: truncated buffer")

// Reader decodes a network-order message from a byte slice. The error is
// sticky: once a read overruns the buffer, every later read returns the
// zero value and Err reports ErrTruncated. Callers must check Err before
// trusting decoded values.
type Reader struct {
	data []byte
	off  int
	err  error
}

// NewReader returns a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.data) {
		r.err = ErrTruncated
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Int8() int8 {
	return int8(r.Uint8())
}

func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Padded reads exactly n bytes and strips trailing NUL padding.
func (r *Reader) Padded(n int) string {
	b := r.take(n)
	if b == nil {
		return ""
	}
	return strings.TrimRight(string(b), "\x00")
}

// String reads a uint8 length prefix followed by that many bytes.
func (r *Reader) String() string {
	n := int(r.Uint8())
	b := r.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}

// Bytes reads n raw bytes. The returned slice aliases the underlying
// buffer; callers that hold on to it must copy.
func (r *Reader) Bytes(n int) []byte {
	return r.take(n)
}

// Err returns ErrTruncated if any read ran past the end of the buffer.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.err != nil {
		return 0
	}
	return len(r.data) - r.off
}
