package snap

import (
	"fmt"
	"slices"
	"strings"
)

var risks = []string{"stable", "candidate", "beta", "edge"}

// tracks lists the snapcraft tracks a legacy base can be built with. The
// first track is the base's own and is used to qualify bare risk names.
// Bases not listed take any channel as given.
var tracks = map[string][]string{
	Core:   {"4.x"},
	Core18: {"5.x", "4.x"},
}

// ResolveChannel returns the snapcraft channel to install for base. Bare risk
// names are qualified with the base's own track on legacy bases; channels on a
// track the base cannot use are rejected.
func ResolveChannel(base, channel string) (string, error) {
	accepted, legacy := tracks[base]
	if !legacy {
		if IsSupported(base) {
			return channel, nil
		}
		return "", channelError(base, channel)
	}

	for _, track := range accepted {
		if strings.HasPrefix(channel, track+"/") {
			return channel, nil
		}
	}
	if slices.Contains(risks, channel) {
		return accepted[0] + "/" + channel, nil
	}

	return "", channelError(base, channel)
}

func channelError(base, channel string) error {
	return fmt.Errorf("%w: snapcraft channel '%s' is unsupported for builds targeting the '%s' base snap", ErrInvalidConfiguration, channel, base)
}
