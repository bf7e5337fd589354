// Package filesystem provides filesystem implementations for leveldb-patch.
//
// This package contains implementations of the types.FS interface: the OS
// filesystem, which replaces files atomically, and an afero-backed one used
// by tests.
package filesystem
