// Package semver parses the MAJOR.MINOR.PATCH[-pre-release][+build] version
// strings accepted by the deprecate directive's min/max arguments.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// maxNumericDigits bounds the length of a numeric component so that a
// pathological input like a 200-digit major version doesn't get accepted
// as a plausible integer.
const maxNumericDigits = 50

// Version is a parsed MAJOR.MINOR.PATCH version, with optional
// pre-release and build metadata. Pre-release and build suffixes may
// appear in either order in the source text (e.g. "1.2.3+build-pre" and
// "1.2.3-pre+build" both parse to the same Version).
type Version struct {
	Major, Minor, Patch int
	PreRelease          string
	Build                string
}

// Parse parses a version string of the form MAJOR.MINOR.PATCH, optionally
// followed by a "-pre-release" suffix, a "+build" suffix, or both in
// either order.
func Parse(s string) (Version, error) {
	rest := s

	var v Version
	var pre, build string
	var havePre, haveBuild bool

	// Peel off -pre-release and +build suffixes, in whichever order they
	// appear, before parsing the numeric core.
	for {
		plus, minus := strings.IndexByte(rest, '+'), strings.IndexByte(rest, '-')
		if plus >= 0 && !haveBuild && (havePre || plus > minus) {
			build = rest[plus+1:]
			rest = rest[:plus]
			haveBuild = true
			continue
		}
		if minus >= 0 && !havePre {
			pre = rest[minus+1:]
			rest = rest[:minus]
			havePre = true
			continue
		}
		break
	}

	parts := strings.SplitN(rest, ".", 3)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("semver: %q is not MAJOR.MINOR.PATCH", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || len(p) > maxNumericDigits {
			return Version{}, fmt.Errorf("semver: invalid numeric component %q in %q", p, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("semver: invalid numeric component %q in %q", p, s)
		}
		nums[i] = n
	}

	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	v.PreRelease = pre
	v.Build = build
	return v, nil
}

// Compare orders two versions by their numeric core only; pre-release and
// build metadata do not affect ordering. Returns -1, 0, or 1.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmp(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmp(v.Minor, other.Minor)
	default:
		return cmp(v.Patch, other.Patch)
	}
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}
