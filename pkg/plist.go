package rnversion

import (
	"bytes"
	"fmt"

	"howett.net/plist"
)

const plistVersionKey = "CFBundleShortVersionString"

// UpdatePlist sets CFBundleShortVersionString in a property list and returns
// the re-encoded document along with the previous value. The document keeps
// its original format (XML, binary, OpenStep or GNUstep). A document already
// at v is returned unchanged.
func UpdatePlist(data []byte, v Version) ([]byte, string, error) {
	var doc any
	format, err := plist.Unmarshal(data, &doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrPlistParse, err)
	}

	dict, ok := doc.(map[string]any)
	if !ok {
		return nil, "", fmt.Errorf("%w: root element is not a dictionary", ErrPlistParse)
	}

	current, ok := dict[plistVersionKey]
	if !ok {
		return nil, "", fmt.Errorf("%w: no %s in property list", ErrMissingVersionKey, plistVersionKey)
	}
	if s, ok := current.(string); ok && s == v.String() {
		return data, s, nil
	}
	dict[plistVersionKey] = v.String()

	var out []byte
	if format == plist.BinaryFormat {
		out, err = plist.Marshal(dict, format)
	} else {
		out, err = plist.MarshalIndent(dict, format, "\t")
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrPlistParse, err)
	}
	if format != plist.BinaryFormat && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}

	return out, fmt.Sprint(current), nil
}
