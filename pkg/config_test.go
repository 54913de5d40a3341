package rnversion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	root := newTestProject(t, "ShiftCare")

	cfg, err := NewConfig(Options{Root: root}, []string{"ShiftCare", "1.99.2"})
	require.NoError(t, err)

	assert.Equal(t, "ShiftCare", cfg.ProjectName)
	assert.Equal(t, "1.99.2", cfg.Version.String())
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "package.json"), cfg.Targets.Manifest)
	assert.Equal(t, filepath.Join(root, "android", "app", "build.gradle"), cfg.Targets.BuildConfig)
	assert.Equal(t, filepath.Join(root, "ios", "ShiftCare", "Info.plist"), cfg.Targets.Plist)
	assert.False(t, cfg.Strict)
}

func TestNewConfigCustomPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app/package.json", testManifest)
	writeFile(t, root, "android/build.gradle", testBuildConfig)
	plist := writeFile(t, root, "Info.plist", testPlist)
	writeFile(t, root, "app.json", `{"version": "1.0.0"}`)

	cfg, err := NewConfig(Options{
		Root:        root,
		Manifest:    "app/package.json",
		BuildConfig: "android/build.gradle",
		Plist:       plist,
		BumpFiles:   []string{"app.json"},
		Strict:      true,
	}, []string{"My_App", "2.0.0"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "app", "package.json"), cfg.Targets.Manifest)
	assert.Equal(t, filepath.Join(root, "android", "build.gradle"), cfg.Targets.BuildConfig)
	assert.Equal(t, plist, cfg.Targets.Plist)
	assert.Equal(t, []string{filepath.Join(root, "app.json")}, cfg.BumpFiles)
	assert.True(t, cfg.Strict)
}

func TestNewConfigUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"ShiftCare"},
		{"ShiftCare", "1.2.3", "extra"},
	} {
		_, err := NewConfig(Options{}, args)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUsage), "args %v: got %v", args, err)
	}
}

func TestNewConfigInvalidProjectName(t *testing.T) {
	for _, name := range []string{"", "abc", "My-App", "My App", "app!", "ünïcode", "a.bc"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewConfig(Options{Root: t.TempDir()}, []string{name, "1.2.3"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProjectName), "got %v", err)
		})
	}
}

func TestNewConfigValidProjectNames(t *testing.T) {
	for _, name := range []string{"abcd", "My_App", "APP1", "____", "1234"} {
		t.Run(name, func(t *testing.T) {
			root := newTestProject(t, name)
			_, err := NewConfig(Options{Root: root}, []string{name, "1.2.3"})
			require.NoError(t, err)
		})
	}
}

func TestNewConfigInvalidVersion(t *testing.T) {
	root := newTestProject(t, "ShiftCare")
	for _, v := range []string{"1.2", "v1.2.3", "1.2.3-rc.1", "latest", " 1.2.3", "1.2.3\n"} {
		_, err := NewConfig(Options{Root: root}, []string{"ShiftCare", v})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidVersion), "version %q: got %v", v, err)
	}
}

func TestNewConfigMissingFiles(t *testing.T) {
	tests := []struct {
		name    string
		remove  []string
		missing []string
	}{
		{"manifest", []string{DefaultManifestPath}, []string{DefaultManifestPath}},
		{"build config", []string{DefaultBuildConfigPath}, []string{DefaultBuildConfigPath}},
		{"plist", []string{PlistPath("ShiftCare")}, []string{PlistPath("ShiftCare")}},
		{
			"all",
			[]string{DefaultManifestPath, DefaultBuildConfigPath, PlistPath("ShiftCare")},
			[]string{DefaultManifestPath, DefaultBuildConfigPath, PlistPath("ShiftCare")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := newTestProject(t, "ShiftCare")
			for _, rel := range tc.remove {
				require.NoError(t, os.Remove(filepath.Join(root, rel)))
			}
			before := snapshot(t, root)

			_, err := NewConfig(Options{Root: root}, []string{"ShiftCare", "1.2.3"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingFile), "got %v", err)
			for _, rel := range tc.missing {
				assert.Contains(t, err.Error(), filepath.Join(root, rel))
			}

			assert.Equal(t, before, snapshot(t, root))
		})
	}
}

func TestNewConfigPlistFollowsProjectName(t *testing.T) {
	root := newTestProject(t, "ShiftCare")

	_, err := NewConfig(Options{Root: root}, []string{"OtherApp", "1.2.3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.Contains(t, err.Error(), filepath.Join(root, "ios", "OtherApp", "Info.plist"))
}

func TestNewConfigDirectoryIsNotAFile(t *testing.T) {
	root := newTestProject(t, "ShiftCare")
	require.NoError(t, os.Remove(filepath.Join(root, DefaultManifestPath)))
	require.NoError(t, os.Mkdir(filepath.Join(root, DefaultManifestPath), 0o755))

	_, err := NewConfig(Options{Root: root}, []string{"ShiftCare", "1.2.3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFile))
}

func TestNewConfigMissingBumpFile(t *testing.T) {
	root := newTestProject(t, "ShiftCare")

	_, err := NewConfig(Options{Root: root, BumpFiles: []string{"README.md"}}, []string{"ShiftCare", "1.2.3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingFile))
	assert.Contains(t, err.Error(), "README.md")
}
