package rnversion

import (
	"fmt"
	"regexp"
	"strconv"
)

// buildConfigField is one of the ext.versionXxx assignments in build.gradle.
type buildConfigField struct {
	Name      string
	component func(Version) uint64

	// tolerant matches the assignment anywhere on a line, including inside
	// comments. strict only matches a line that starts with the assignment.
	tolerant *regexp.Regexp
	strict   *regexp.Regexp
}

func newBuildConfigField(name string, component func(Version) uint64) buildConfigField {
	token := `ext\.` + regexp.QuoteMeta(name)
	return buildConfigField{
		Name:      "ext." + name,
		component: component,
		tolerant:  regexp.MustCompile(`(?m)^(.*?` + token + `[ \t]*=[ \t]*)\d+`),
		strict:    regexp.MustCompile(`(?m)^([ \t]*` + token + `[ \t]*=[ \t]*)\d+([ \t]*(?://.*)?\r?)$`),
	}
}

var buildConfigFields = []buildConfigField{
	newBuildConfigField("versionMajor", func(v Version) uint64 { return v.Major }),
	newBuildConfigField("versionMinor", func(v Version) uint64 { return v.Minor }),
	newBuildConfigField("versionPatch", func(v Version) uint64 { return v.Patch }),
}

// UpdateBuildConfig rewrites the ext.versionMajor, ext.versionMinor and
// ext.versionPatch assignments of an Android build script. Only the numeral
// after "=" changes; every other byte is kept.
//
// In tolerant mode any line containing the assignment is rewritten, and
// fields that cannot be found are returned in missing. In strict mode only
// lines that begin with the assignment are rewritten, and a missing field is
// an ErrMissingVersionKey error.
func UpdateBuildConfig(data []byte, v Version, strict bool) (updated []byte, missing []string, err error) {
	updated = data
	for _, f := range buildConfigFields {
		re, repl := f.tolerant, "${1}"+strconv.FormatUint(f.component(v), 10)
		if strict {
			re, repl = f.strict, repl+"${2}"
		}

		if !re.Match(updated) {
			if strict {
				return nil, nil, fmt.Errorf("%w: no %s assignment in build config", ErrMissingVersionKey, f.Name)
			}
			missing = append(missing, f.Name)
			continue
		}
		updated = re.ReplaceAll(updated, []byte(repl))
	}
	return updated, missing, nil
}
