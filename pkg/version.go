package rnversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a three part major.minor.patch version. The zero value is not
// a valid version; use ParseVersion.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64

	raw string
}

// ParseVersion validates a dot separated version string (1.2.3) and
// extracts its numeric components. Surrounding whitespace is ignored.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var parts [3]uint64
	for i, p := range m[1:] {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2], raw: raw}, nil
}

// String returns the version exactly as it was given to ParseVersion.
func (v Version) String() string {
	return v.raw
}

// Semver returns the version in the "v" prefixed form used by golang.org/x/mod/semver.
func (v Version) Semver() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}
