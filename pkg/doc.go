// Package rnversion keeps the version of a React Native project in sync across
// its package manifest, Android build script and iOS property list.
//
// It provides functionalities for:
//   - Validating a project name and a major.minor.patch version (ParseVersion, NewConfig).
//   - Setting the "version" field of package.json while keeping key order (UpdateManifest).
//   - Rewriting the ext.versionMajor/Minor/Patch assignments of build.gradle (UpdateBuildConfig).
//   - Setting CFBundleShortVersionString in Info.plist, in any plist format (UpdatePlist).
//   - Replacing the main version string in arbitrary extra files (BumpVersionInContent).
//
// Run computes every new file content in memory before writing, so a parse
// failure in any file leaves the project untouched. DryRun reports what Run
// would change.
//
// Usage Example:
//
//	cfg, err := rnversion.NewConfig(rnversion.Options{Root: "."}, []string{"MyApp", "1.2.3"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	meta, err := rnversion.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Println("updated", meta.UpdatedFiles)
package rnversion
