package types

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects the static library naming convention of the host toolchain
type Platform int

const (
	// PlatformOther covers every host that links against lib<name>.a
	PlatformOther Platform = iota
	// PlatformWindows links against a per-configuration <name>.lib
	PlatformWindows
)

// Platform names accepted in configuration
const (
	PlatformNameAuto    = "auto"
	PlatformNameWindows = "windows"
	PlatformNameOther   = "other"
)

// HostPlatform reports the platform of the running process
func HostPlatform() Platform {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformOther
}

// ParsePlatform resolves a configured platform name. "auto" and the empty
// string resolve to the host platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PlatformNameAuto:
		return HostPlatform(), nil
	case PlatformNameWindows:
		return PlatformWindows, nil
	case PlatformNameOther:
		return PlatformOther, nil
	default:
		return PlatformOther, fmt.Errorf("unknown platform %q (want %s, %s or %s)",
			name, PlatformNameAuto, PlatformNameWindows, PlatformNameOther)
	}
}

// String implements fmt.Stringer
func (p Platform) String() string {
	if p == PlatformWindows {
		return PlatformNameWindows
	}
	return PlatformNameOther
}

// MarshalText renders the platform by name in yaml and json output
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
