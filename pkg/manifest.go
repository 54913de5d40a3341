package rnversion

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const manifestVersionKey = "version"

// UpdateManifest sets the top level "version" field of a package manifest and
// returns the re-indented document along with the previous version value.
// Key order and all other fields are kept as they are. The output uses two
// space indentation and ends with a newline.
func UpdateManifest(data []byte, v Version) ([]byte, string, error) {
	if !gjson.ValidBytes(data) {
		return nil, "", fmt.Errorf("%w: invalid JSON", ErrManifestParse)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, "", fmt.Errorf("%w: top level value is not an object", ErrManifestParse)
	}

	current := doc.Get(manifestVersionKey)
	if !current.Exists() {
		return nil, "", fmt.Errorf("%w: no %q key in manifest", ErrMissingVersionKey, manifestVersionKey)
	}

	// sjson replaces the value where it stands, so the surrounding keys keep
	// their position.
	updated, err := sjson.SetBytes(data, manifestVersionKey, v.String())
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(updated), "", "  "); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	out.WriteByte('\n')

	return out.Bytes(), current.String(), nil
}
