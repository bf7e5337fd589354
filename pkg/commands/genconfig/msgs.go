package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration to stdout, or write it to .leveldb-patch.toml in the\ncurrent directory with -w. An existing file is never overwritten."
	MsgExample = `  leveldb-patch gen-config       # Output to stdout
  leveldb-patch gen-config -w    # Write to ./.leveldb-patch.toml`
)
