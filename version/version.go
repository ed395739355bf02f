package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/harlequix/hamming/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s / %s", runtime.GOOS, runtime.GOARCH)
)
