package cli

// Short messages (one-liners)
const (
	MsgRootShort    = "Point LevelDB's CMakeLists.txt at a prebuilt Snappy"
	MsgCheckShort   = "Report whether the build file is already patched"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
	MsgManShort     = "Generate the man page"

	MsgVersionFormat = "leveldb-patch version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	MsgNeedsPatch = "%s is not patched for the configured snappy directories"
)

// Long messages
const (
	MsgRootLong = `leveldb-patch rewrites LevelDB's CMakeLists.txt in place so that it builds
against an already compiled Snappy instead of probing for a system one:

  - the check_library_exists probe for snappy is commented out and
    HAVE_SNAPPY is forced on
  - the snappy source and binary directories are added to leveldb's
    PRIVATE include directories
  - the snappy link line is replaced by the static library inside the
    binary directory (snappy.lib under $<CONFIG> on Windows, libsnappy.a
    elsewhere)

Running it again on a patched file leaves the include directories alone.
Settings come from flags, LEVELDB_PATCH_* environment variables, and
.leveldb-patch.toml in the working directory, in that order of precedence.`

	MsgRootExample = `  # Patch ./CMakeLists.txt
  leveldb-patch --snappy-source-dir ../snappy --snappy-binary-dir ../snappy/build

  # Show what would change without writing
  leveldb-patch --snappy-source-dir ../snappy --snappy-binary-dir ../snappy/build --dry-run --diff

  # Fail a CI step when the file is not patched
  leveldb-patch check`

	MsgCheckLong = `Check runs the patch in memory and reports whether it would change the build
file. It never writes, and exits with an error when the file needs patching.`
)
