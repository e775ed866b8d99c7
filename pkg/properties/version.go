package properties

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// versionAtLeast reports whether a dotted version string is at least
// major.minor.patch. An empty or unparsable string counts as current,
// so behavior gates stay on unless an older version is asked for
// explicitly. Suffixes after '-' (prerelease tags) are ignored.
func versionAtLeast(version string, major, minor, patch int) bool {
	if version == "" {
		return true
	}
	if i := strings.IndexByte(version, '-'); i >= 0 {
		version = version[:i]
	}
	var got [3]int
	parts := strings.Split(version, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			log.Debug().Str("version", version).
				Msg("unparsable develop version component, assuming current")
			return true
		}
		got[i] = n
	}
	want := [3]int{major, minor, patch}
	for i := range got {
		if got[i] != want[i] {
			return got[i] > want[i]
		}
	}
	return true
}
