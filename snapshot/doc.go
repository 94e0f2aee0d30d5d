// Package snapshot keeps named copies of antenna graphs.
//
// Two Store implementations share the codec layout as their value format:
//
//   - FileStore: one "<name>.bin" file per snapshot in a directory.
//   - BadgerStore: an embedded BadgerDB keyed by "snapshot/<name>".
//
// Names are 1 to 128 characters from [A-Za-z0-9._-], starting with a
// letter or digit, so a name is always a safe file name.
//
// Errors:
//
//   - ErrInvalidName: name fails validation.
//   - ErrNotFound: no snapshot with that name.
//   - codec errors from Save/Load, wrapped.
package snapshot
