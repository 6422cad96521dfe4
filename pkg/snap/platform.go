package snap

var platforms = map[string]string{
	"i386":    "linux/386",
	"amd64":   "linux/amd64",
	"armhf":   "linux/arm/v7",
	"arm64":   "linux/arm64",
	"ppc64el": "linux/ppc64le",
	"s390x":   "linux/s390x",
}

// Platform returns the container platform for a snap architecture.
func Platform(arch string) (string, bool) {
	p, ok := platforms[arch]
	return p, ok
}

// PlatformArgs returns the engine flags selecting the platform for arch, or
// nothing for the host default.
func PlatformArgs(arch string) []string {
	p, ok := Platform(arch)
	if !ok {
		return []string{}
	}
	return []string{"--platform", p}
}
