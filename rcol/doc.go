// Package rcol decodes and encodes RCOL chunk containers.
//
// # Overview
//
// An RCOL container stores a collection of typed, addressable chunks inside a
// larger asset package. This package turns the byte form into a mutable
// object graph and back, and dispatches each chunk to a codec chosen by the
// chunk key's type through a Registry. Chunk types nobody registered fall
// back to OpaqueChunk, which keeps the bytes verbatim so files containing
// unknown sub-formats still round trip.
//
// # File Structure
//
//	u32 version
//	u32 dataType
//	u32 reserved
//	i32 resourceKeyCount
//	i32 chunkCount
//	Key[chunkCount]          chunk keys
//	Key[resourceKeyCount]    external resource keys
//	IndexEntry[chunkCount]   u32 position, i32 length (absolute)
//	chunk bodies, each 4-byte aligned with zero padding
//
// Keys are 16 bytes, in TGI field order unless Options.KeyOrder says otherwise.
//
// # Parsing
//
//	c, err := rcol.Parse(data, nil)
//	if err != nil {
//	    return err
//	}
//	for _, e := range c.Chunks().All() {
//	    fmt.Println(e.Key(), e.Block())
//	}
//
// Parse errors are fatal to that call; no partial container is returned. A
// chunk whose tag resolves to no codec, with no wildcard registered, aborts
// the whole decode with types.ErrNoDefaultRegistered.
//
// # Dirty tracking
//
// A parsed container is clean and Bytes returns the exact input. Any mutation
// anywhere in the tree (key lists, chunk list, entry keys, chunk internals)
// marks the container dirty; the next Bytes call re-serializes it. Unparse
// always re-serializes and leaves the container clean.
//
// # Registry
//
// DefaultRegistry is process-wide and populated once, normally from init
// functions of chunk codec packages (see rcol/chunks/...). It has OpaqueChunk
// as its wildcard. Populate it before the first Parse; it is read-only
// afterwards and needs no locking.
package rcol
