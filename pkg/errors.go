package rnversion

import "errors"

// Errors returned by the library. Callers should match them with errors.Is;
// the returned errors wrap these with the offending value or path.
var (
	ErrUsage              = errors.New("project name and new version number must be passed")
	ErrInvalidProjectName = errors.New("project name must be at least 4 characters and contain alphanumeric characters or underscores only")
	ErrInvalidVersion     = errors.New("version does not match semver format (1.2.3)")
	ErrMissingFile        = errors.New("file does not exist")
	ErrManifestParse      = errors.New("failed to parse manifest")
	ErrPlistParse         = errors.New("failed to parse property list")
	ErrMissingVersionKey  = errors.New("version field not found")
	ErrWrite              = errors.New("failed to write file")
)
