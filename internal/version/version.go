package version

import "runtime/debug"

// Populated via -ldflags at release time.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// Get returns the ldflags values, filling gaps from the module build info
// that `go install` and VCS-stamped builds embed.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && build.Main.Version != "" && build.Main.Version != "(devel)" {
		info.Version = build.Main.Version
	}
	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = setting.Value
			}
		}
	}
	return info
}
