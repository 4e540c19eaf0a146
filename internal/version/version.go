package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/larsks/appliances/internal/version.Version=..."
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// GetVersion returns the build version, falling back to module build info.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// ShowVersion writes version information to w.
func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "appliances %s (built %s)\n", GetVersion(), BuildDate)
}
