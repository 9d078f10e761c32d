// Package codec defines the Parse/Unparse contract every structured RCOL value
// implements, and the in-memory Reader and Writer those implementations use.
//
// # Element contract
//
//	type Element interface {
//	    Parse(r *Reader) error
//	    Unparse(w *Writer) error
//	}
//
// Unparse must be the left inverse of Parse for every value producible by a
// type's public constructors: parsing the bytes Unparse wrote yields an equal
// value. Unmodelled padding read during Parse need not be reproduced.
//
// # Errors
//
// Reader errors are sticky: the first failure is recorded with its absolute
// stream offset and every later read returns zero values. Parse
// implementations read a run of fields and return r.Err() once.
//
//   - Truncation, negative counts, and inconsistent lengths raise
//     types.ErrMalformed in every mode.
//   - Redundant checks (restated magic tags, reserved bytes, version numbers,
//     trailing bytes) go through Reader.Checkf and raise
//     types.ErrStrictValidation only in Strict mode.
//
// Which checks are strict is configuration: Policy maps a chunk tag to a Mode.
//
// # Stream-relative offsets
//
// Layouts that place a variable-size sub-table after a variable body store,
// at a fixed position, the distance from just after the offset field to the
// table plus the table's byte size. Writers reserve the pair, write the body,
// then patch it:
//
//	ref := w.ReserveTableRef()
//	writeBody(w)
//	start := w.Pos()
//	writeTable(w)
//	if err := w.PatchTableRef(ref, start); err != nil { ... }
//
// Readers resolve the same pair with Reader.TableRef.
package codec
