// Package list provides List, the bounded, change-notifying ordered container
// behind every repeated structure in an RCOL container: key tables, chunk
// lists, and the sub-lists inside individual chunks.
//
// # Contract
//
//   - len <= MaxSize always (MaxSize 0 means unbounded). Insert and Append on
//     a full list return types.ErrCapacityExceeded and leave it unchanged.
//   - Every effective structural mutation (Insert, Append, RemoveAt, Remove,
//     Set, Clear) calls the owner's notify callback exactly once.
//   - Set with a value equal to the current one is a no-op and does not notify.
//     Clear on an empty list is also a no-op.
//   - CloneWithNotify returns an independent list wired to a new callback.
//     Elements implementing Cloner are deep-copied; other elements are copied
//     by value.
//
// Element hooks are optional interfaces:
//
//	Binder      - element holds a notify callback of its own; the list rebinds
//	              it to the list's callback on insertion
//	Cloner[T]   - element can deep-copy itself onto a new callback
//	Equaler[T]  - element defines equality; otherwise reflect.DeepEqual is used
//
// Count limits normally mirror the on-disk width of the count field, for
// example types.MaxByteCount for a list whose count is stored in one byte.
package list
