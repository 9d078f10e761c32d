package rcol

import "github.com/joshuapare/rcolkit/pkg/codec"

// Chunk is a decoded chunk body. Implementations report their own mutations
// through the callback installed by Bind.
type Chunk interface {
	codec.Element

	// Bind installs the owner's change callback, rebinding nested lists too.
	Bind(notify func())

	// CloneChunk returns an independent deep copy wired to notify.
	CloneChunk(notify func()) Chunk
}

// Factory constructs an empty chunk ready for Parse.
type Factory func() Chunk
