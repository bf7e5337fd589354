// Package testutil provides utilities for testing leveldb-patch components.
//
// Key components:
//   - NewMemFS: afero-backed in-memory types.FS seeded with files
//   - FaultyFS: wraps a types.FS and injects errors per operation
//   - LevelDBCMakeLists: an excerpt of LevelDB's build file with every trigger
//
// All test data is defined inline, not in external files.
package testutil
