// Package config handles configuration management for leveldb-patch.
// It layers, from lowest to highest precedence: the embedded defaults, an
// optional .leveldb-patch.toml/.yaml file, LEVELDB_PATCH_* environment
// variables, and command-line flags the user actually set.
package config
