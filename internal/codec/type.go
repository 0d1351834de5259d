// Package codec packs and unpacks the flag subsystem's binary wire records:
// 2-byte type references, variable-length custom type descriptors, and
// fixed-size flag instance records. All values are network byte order.
package codec

import (
	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/wire"
)

// TypePackSize is the wire size of a flag type reference: the abbreviation,
// NUL padded to two bytes.
const TypePackSize = 2

// PackType writes a type reference.
func PackType(w *wire.Writer, t *flag.Type) {
	w.PutPadded(t.Abbrev, TypePackSize)
}

// FakePackType writes a decoy type reference in place of the real one, so
// non-owning observers can't identify the flag. The decoy is chosen by the
// caller's policy; the registry's null flag is the conventional choice.
func FakePackType(w *wire.Writer, decoy *flag.Type) {
	PackType(w, decoy)
}

// UnpackType reads a type reference and resolves it through the registry.
// An abbreviation this build has never seen resolves to the Unknown
// sentinel rather than failing: newer servers may ship types we don't
// know, and an unidentified flag is still a flag. Truncation surfaces via
// r.Err.
func UnpackType(r *wire.Reader, reg *flag.Registry) *flag.Type {
	abbrev := r.Padded(TypePackSize)
	if r.Err() != nil {
		return nil
	}
	return reg.Resolve(abbrev)
}
