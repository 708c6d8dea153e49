// Package buildinfo carries version metadata stamped in by the linker:
//
//	go build -ldflags "-X starfield/internal/buildinfo.Version=v1.0.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns the release version, else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	default:
		return "dev"
	}
}
