// Package commands holds the operations behind each leveldb-patch CLI
// command. Each subpackage takes an Options struct with an injected
// types.FS and returns a result from pkg/types, leaving rendering to the
// caller.
package commands
