// Package patcher rewrites LevelDB's CMakeLists.txt so that it builds
// against a Snappy checkout supplied by the caller instead of probing the
// system for one.
//
// The rewrite is a single left-to-right pass over the file's lines. Three
// literal directive lines trigger a rewrite; every other line is copied
// through byte for byte:
//
//   - the Snappy library probe is commented out and replaced by a cached
//     HAVE_SNAPPY=ON setting
//   - the leveldb include-directories directive gains a PRIVATE section
//     listing the Snappy source and binary directories
//   - the link against the logical "snappy" target is commented out and
//     replaced by a link against the static archive in the binary directory
//
// Running the patcher over its own output changes nothing.
package patcher
