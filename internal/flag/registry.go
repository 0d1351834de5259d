package flag

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrDuplicateAbbrev is returned when a custom flag registration collides
// with an abbreviation already in use. Registrations are rejected, never
// silently overwritten: replacing a built-in (or another server's custom
// type) under the feet of live instances would corrupt type resolution.
var ErrDuplicateAbbrev = errors.New("flag: duplicate abbreviation")

// Registry maps wire abbreviations to flag types for one game session. It
// holds the built-in catalog, populated once at construction, plus the
// custom types the current server defines.
//
// The registry does no locking of its own. The intended discipline is
// single-writer: custom registration and ClearCustom happen during
// connection setup and teardown, with lookups read-only in between. The
// connection layer is responsible for not interleaving the two.
type Registry struct {
	logger *slog.Logger

	types map[string]*Type
	good  []*Type // registration order, Quality == Good
	bad   []*Type // registration order, Quality == Bad

	custom []*Type

	null    *Type
	unknown *Type
}

// NewRegistry builds a registry populated with the built-in catalog.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		logger: logger,
		types:  make(map[string]*Type),
	}
	registerBuiltins(r)
	r.logger.Debug("flag registry initialized",
		"types", len(r.types), "good", len(r.good), "bad", len(r.bad))
	return r
}

// register adds a built-in type. The catalog is static, so a collision here
// is a programming error rather than input to recover from.
func (r *Registry) register(t *Type) *Type {
	if _, exists := r.types[t.Abbrev]; exists {
		panic(fmt.Sprintf("flag: built-in abbreviation %q registered twice", t.Abbrev))
	}
	r.types[t.Abbrev] = t
	r.partition(t)
	return t
}

func (r *Registry) partition(t *Type) {
	if t.Quality == QualityGood {
		r.good = append(r.good, t)
	} else {
		r.bad = append(r.bad, t)
	}
}

// RegisterCustom adds a server-defined type. The returned *Type is the
// registry's canonical copy; callers should keep it instead of the argument.
func (r *Registry) RegisterCustom(t *Type) (*Type, error) {
	if _, exists := r.types[t.Abbrev]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateAbbrev, t.Abbrev)
	}
	t.Custom = true
	r.types[t.Abbrev] = t
	r.partition(t)
	r.custom = append(r.custom, t)
	r.logger.Info("registered custom flag",
		"abbrev", t.Abbrev, "name", t.Name, "quality", t.Quality.String())
	return t, nil
}

// ClearCustom removes every custom type, returning the registry to exactly
// its built-in membership. Called when leaving or reconnecting to a server.
func (r *Registry) ClearCustom() {
	if len(r.custom) == 0 {
		return
	}
	for _, t := range r.custom {
		delete(r.types, t.Abbrev)
	}
	r.good = withoutCustom(r.good)
	r.bad = withoutCustom(r.bad)
	n := len(r.custom)
	r.custom = nil
	r.logger.Debug("cleared custom flags", "count", n)
}

func withoutCustom(types []*Type) []*Type {
	kept := types[:0]
	for _, t := range types {
		if !t.Custom {
			kept = append(kept, t)
		}
	}
	return kept
}

// Lookup finds a type by exact abbreviation. Unknown abbreviations are not
// an error; callers that need the degrading behavior use Resolve.
func (r *Registry) Lookup(abbrev string) (*Type, bool) {
	t, ok := r.types[abbrev]
	return t, ok
}

// Resolve finds a type by abbreviation, degrading to the Unknown sentinel
// when the abbreviation has never been seen. The protocol stays forward
// compatible with types added by newer servers: an unidentified flag is
// still a flag.
func (r *Registry) Resolve(abbrev string) *Type {
	if t, ok := r.types[abbrev]; ok {
		return t
	}
	return r.unknown
}

// Good returns the good-quality types in registration order. The slice is
// shared; callers must not modify it.
func (r *Registry) Good() []*Type {
	return r.good
}

// Bad returns the bad-quality types in registration order. The slice is
// shared; callers must not modify it.
func (r *Registry) Bad() []*Type {
	return r.bad
}

// Custom returns the active custom types in registration order.
func (r *Registry) Custom() []*Type {
	return r.custom
}

// Null returns the null flag, the conventional decoy for disguised packs.
func (r *Registry) Null() *Type {
	return r.null
}

// Unknown returns the sentinel Resolve degrades to. It is not registered
// in the lookup map.
func (r *Registry) Unknown() *Type {
	return r.unknown
}

// Size returns the number of registered types, built-in plus custom.
func (r *Registry) Size() int {
	return len(r.types)
}
