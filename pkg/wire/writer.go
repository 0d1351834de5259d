// Package wire provides the raw buffer primitives the flag subsystem uses
// to build and parse network messages. All multi-byte values are encoded in
// network byte order (big endian).
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// MaxStringLen is the longest string a length-prefixed field can carry.
// The prefix is a single byte.
const MaxStringLen = 255

// Writer accumulates a network-order encoded message.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) PutUint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) PutInt8(v int8) {
	w.buf.WriteByte(byte(v))
}

func (w *Writer) PutUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) PutUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *Writer) PutFloat32(v float32) {
	w.PutUint32(math.Float32bits(v))
}

// PutPadded writes exactly n bytes: the string content, NUL padded on the
// right. Strings longer than n are truncated.
func (w *Writer) PutPadded(s string, n int) {
	b := []byte(s)
	if len(b) > n {
		b = b[:n]
	}
	w.buf.Write(b)
	for i := len(b); i < n; i++ {
		w.buf.WriteByte(0)
	}
}

// PutString writes a uint8 length prefix followed by the string bytes.
func (w *Writer) PutString(s string) error {
	if len(s) > MaxStringLen {
		return fmt.Errorf("wire: string too long (%d bytes)", len(s))
	}
	w.buf.WriteByte(uint8(len(s)))
	w.buf.WriteString(s)
	return nil
}

// Bytes returns the encoded message so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}
