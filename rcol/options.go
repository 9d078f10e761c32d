package rcol

import (
	"github.com/joshuapare/rcolkit/pkg/codec"
	"github.com/joshuapare/rcolkit/pkg/tgi"
)

// Options configures parsing and encoding. A nil *Options means defaults.
type Options struct {
	// Registry resolves chunk codecs.
	// Default: DefaultRegistry()
	Registry *Registry

	// Policy decides strict or lenient validation. Policy.Default applies to
	// the container header; chunks use Policy.ModeFor(key.Type).
	// Default: lenient everywhere
	Policy codec.Policy

	// KeyOrder is the field order of keys in the container tables.
	// Default: tgi.OrderTGI
	KeyOrder tgi.Order
}

func (o *Options) resolve() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Registry == nil {
		out.Registry = DefaultRegistry()
	}
	return out
}
