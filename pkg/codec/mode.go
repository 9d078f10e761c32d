package codec

// Mode selects whether redundant checks raise errors.
type Mode uint8

const (
	// Lenient accepts disagreeing redundant fields as long as the structurally
	// required ones stay consistent.
	Lenient Mode = iota
	// Strict turns every redundant-field disagreement into
	// types.ErrStrictValidation.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// ParseMode maps "strict"/"lenient" to a Mode. Anything else is lenient.
func ParseMode(s string) Mode {
	if s == "strict" {
		return Strict
	}
	return Lenient
}

// Policy decides the Mode per chunk tag.
type Policy struct {
	// Default applies to the container itself and to every tag without an override.
	Default Mode
	// Overrides pins individual chunk tags to a mode.
	Overrides map[uint32]Mode
}

// ModeFor returns the mode that applies to chunks with the given tag.
func (p Policy) ModeFor(tag uint32) Mode {
	if m, ok := p.Overrides[tag]; ok {
		return m
	}
	return p.Default
}

// With returns a copy of p with tag pinned to m.
func (p Policy) With(tag uint32, m Mode) Policy {
	out := Policy{Default: p.Default, Overrides: make(map[uint32]Mode, len(p.Overrides)+1)}
	for k, v := range p.Overrides {
		out.Overrides[k] = v
	}
	out.Overrides[tag] = m
	return out
}
