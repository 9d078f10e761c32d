package rcol

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joshuapare/rcolkit/pkg/types"
)

// Registry maps a 32-bit chunk tag (the key's type field) to a codec
// constructor, with an optional wildcard for everything else.
//
// A Registry is populated once and read-only afterwards; it performs no
// locking.
type Registry struct {
	byTag    map[uint32]Factory
	fallback Factory
}

// NewRegistry returns an empty registry without a wildcard.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[uint32]Factory)}
}

// Register binds tag to f, replacing any earlier binding.
func (r *Registry) Register(tag uint32, f Factory) {
	r.byTag[tag] = f
}

// RegisterDefault installs the wildcard codec used when no tag matches.
func (r *Registry) RegisterDefault(f Factory) {
	r.fallback = f
}

// Resolve returns the factory for tag, the wildcard if none matches, or
// types.ErrNoDefaultRegistered when neither exists.
func (r *Registry) Resolve(tag uint32) (Factory, error) {
	if f, ok := r.byTag[tag]; ok {
		return f, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, &types.Error{
		Kind:   types.ErrKindNoDefault,
		Offset: types.NoOffset,
		Msg:    fmt.Sprintf("chunk tag 0x%08X: no codec registered and no default", tag),
	}
}

// Has reports whether tag has an explicit (non-wildcard) codec.
func (r *Registry) Has(tag uint32) bool {
	_, ok := r.byTag[tag]
	return ok
}

// HasDefault reports whether a wildcard is installed.
func (r *Registry) HasDefault() bool {
	return r.fallback != nil
}

// Tags returns the explicitly registered tags in ascending order.
func (r *Registry) Tags() []uint32 {
	return slices.Sorted(maps.Keys(r.byTag))
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.RegisterDefault(func() Chunk { return &OpaqueChunk{} })
	return r
}()

// DefaultRegistry returns the process-wide registry. Its wildcard is
// OpaqueChunk.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds tag to f in the process-wide registry. Call it from init.
func Register(tag uint32, f Factory) {
	defaultRegistry.Register(tag, f)
}
