// Package version reports build metadata for the /version endpoint.
package version

import (
	"fmt"
	"runtime"
)

// Name is the service name reported alongside build information.
const Name = "universityswings"

// Set via -ldflags "-X .../version.Version=..." at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, built %s, %s)", i.Name, i.Version, i.Commit, i.BuildTime, i.GoVersion)
}
