package rnversion

import (
	"bytes"
	"regexp"
)

// VersionPattern represents a pattern for finding the main version in a file.
// The first capture group must hold the bare x.y.z version.
type VersionPattern struct {
	Pattern *regexp.Regexp
	Name    string
}

// MainVersionPatterns are tried in order. They are anchored to the start of a
// line so dependency versions deeper in a document are not picked up.
var MainVersionPatterns = []VersionPattern{
	{
		Pattern: regexp.MustCompile(`(?m)^[ \t]{0,2}"version"\s*:\s*"v?(\d+\.\d+\.\d+)"`),
		Name:    "root JSON version field",
	},
	{
		Pattern: regexp.MustCompile(`(?m)^version\s*=\s*"v?(\d+\.\d+\.\d+)"`),
		Name:    "root TOML version field",
	},
	{
		Pattern: regexp.MustCompile(`(?mi)^\s*VERSION\s*[:=]\s*["']?v?(\d+\.\d+\.\d+)`),
		Name:    "root VERSION assignment",
	},
}

var plainVersionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// VersionMatch is a version found in a file.
type VersionMatch struct {
	Line    int
	Start   int // byte offset of the version in the file
	End     int
	Version string
	Pattern string
}

// FindMainVersion locates the version a file most likely declares for itself.
// It tries MainVersionPatterns first and falls back to the first x.y.z that is
// not part of a "v" prefixed tag. It returns nil when nothing is found.
func FindMainVersion(data []byte) *VersionMatch {
	for _, vp := range MainVersionPatterns {
		if m := vp.Pattern.FindSubmatchIndex(data); m != nil {
			return newVersionMatch(data, m[2], m[3], vp.Name)
		}
	}

	for _, m := range plainVersionPattern.FindAllIndex(data, -1) {
		start := m[0]
		if start > 0 && (data[start-1] == 'v' || data[start-1] == 'V') {
			continue
		}
		return newVersionMatch(data, m[0], m[1], "first version")
	}
	return nil
}

func newVersionMatch(data []byte, start, end int, pattern string) *VersionMatch {
	return &VersionMatch{
		Line:    bytes.Count(data[:start], []byte("\n")) + 1,
		Start:   start,
		End:     end,
		Version: string(data[start:end]),
		Pattern: pattern,
	}
}

// BumpVersionInContent replaces the main version of a file with v. It returns
// the new content and the match that was replaced, or a nil match and the
// unchanged content when the file declares no version.
func BumpVersionInContent(data []byte, v Version) ([]byte, *VersionMatch) {
	m := FindMainVersion(data)
	if m == nil {
		return data, nil
	}

	out := make([]byte, 0, len(data)+len(v.String()))
	out = append(out, data[:m.Start]...)
	out = append(out, v.String()...)
	out = append(out, data[m.End:]...)
	return out, m
}
