// Package main implements the rnversion CLI tool.
//
// The rnversion tool sets the version of a React Native project in the three
// places the mobile toolchains read it from:
//
//   - package.json: the top level "version" field.
//   - android/app/build.gradle: the ext.versionMajor, ext.versionMinor and
//     ext.versionPatch assignments.
//   - ios/<projectName>/Info.plist: CFBundleShortVersionString.
//
// Command Usage:
//
//	rnversion [flags] <projectName> <version>
//
// The project name must be at least 4 characters of letters, digits or
// underscores. The version must have the form major.minor.patch (e.g. 1.2.3).
// Every file must exist and parse before any of them is written.
//
// Flags:
//
//	-C, --root:      Project root directory (default ".").
//	--manifest:      Package manifest path relative to the root (default "package.json").
//	--build-config:  Android build script path relative to the root
//	                 (default "android/app/build.gradle").
//	--plist:         iOS property list path relative to the root
//	                 (default "ios/<projectName>/Info.plist").
//	--bump-file:     Additional file whose main version is replaced as well.
//	                 May be repeated.
//	--strict:        Only rewrite build.gradle assignments that start a line,
//	                 and fail when one of the three is missing.
//	--dry:           Report what would change without writing.
//	--git-commit:    Commit the updated files with the version as the message
//	                 and tag the commit with v<version>.
//	--log-level:     debug, info, warn or error (default "info").
//	--version:       Print the version of the rnversion CLI and exit.
//
// Examples:
//
//	# Set version 1.2.3 for the MyProject app in the current directory
//	rnversion MyProject 1.2.3
//
//	# Preview the change
//	rnversion --dry MyProject 1.2.3
//
//	# Also update app.json and commit the result
//	rnversion --bump-file app.json --git-commit MyProject 1.3.0
//
// For the library API see the "pkg" package.
package main
