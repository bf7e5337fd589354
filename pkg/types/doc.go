// Package types defines the core types and interfaces used throughout
// leveldb-patch: the Line record the patcher scans, the target Platform,
// the FS abstraction, and the result structures returned by commands.
package types
