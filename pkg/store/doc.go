// Package store keeps serialized RCOL containers addressed by their
// resource key.
//
// Three backends share the Store interface:
//
//   - Memory: a map, for tests and scratch work
//   - Bolt: a single-file bbolt database; values are msgpack envelopes that
//     record the key and size next to the bytes so corruption is detected on
//     read
//   - Object: an S3-compatible bucket through minio-go
//
// Load and Save connect a Store to rcol.Parse and Container.Bytes.
package store
