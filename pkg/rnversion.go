package rnversion

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/mod/semver"

	"github.com/bcomnes/rnversion/internal/logging"
)

// VersionMeta holds metadata about a version update.
type VersionMeta struct {
	ProjectName  string
	OldVersion   string   // The manifest version before the update.
	NewVersion   string   // The version written to every file.
	UpdatedFiles []string // Files written, or that would be written by DryRun.
	Warnings     []string
}

// stagedFile is a file whose new content has been computed but not written.
type stagedFile struct {
	path     string
	original []byte
	updated  []byte
	mode     fs.FileMode
}

func (s stagedFile) changed() bool {
	return !bytes.Equal(s.original, s.updated)
}

func readStaged(path string) (stagedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return stagedFile{}, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return stagedFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return stagedFile{path: path, original: data, mode: info.Mode().Perm()}, nil
}

// stage computes the new content of every file without writing anything.
func stage(cfg Config) ([]stagedFile, VersionMeta, error) {
	meta := VersionMeta{
		ProjectName: cfg.ProjectName,
		NewVersion:  cfg.Version.String(),
	}
	warn := func(format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		logging.Warn("%s", msg)
		meta.Warnings = append(meta.Warnings, msg)
	}

	var files []stagedFile

	// 1. Manifest
	manifest, err := readStaged(cfg.Targets.Manifest)
	if err != nil {
		return nil, meta, err
	}
	var old string
	manifest.updated, old, err = UpdateManifest(manifest.original, cfg.Version)
	if err != nil {
		return nil, meta, fmt.Errorf("%s: %w", manifest.path, err)
	}
	meta.OldVersion = old
	logging.Debug("manifest %s: %s -> %s", manifest.path, old, cfg.Version)
	if sv := "v" + old; semver.IsValid(sv) && semver.Compare(sv, cfg.Version.Semver()) > 0 {
		warn("new version %s is lower than the current version %s", cfg.Version, old)
	}
	files = append(files, manifest)

	// 2. Build config
	gradle, err := readStaged(cfg.Targets.BuildConfig)
	if err != nil {
		return nil, meta, err
	}
	var missing []string
	gradle.updated, missing, err = UpdateBuildConfig(gradle.original, cfg.Version, cfg.Strict)
	if err != nil {
		return nil, meta, fmt.Errorf("%s: %w", gradle.path, err)
	}
	for _, field := range missing {
		warn("%s: no %s assignment found, field left unchanged", gradle.path, field)
	}
	files = append(files, gradle)

	// 3. Property list
	info, err := readStaged(cfg.Targets.Plist)
	if err != nil {
		return nil, meta, err
	}
	var plistOld string
	info.updated, plistOld, err = UpdatePlist(info.original, cfg.Version)
	if err != nil {
		return nil, meta, fmt.Errorf("%s: %w", info.path, err)
	}
	logging.Debug("property list %s: %s -> %s", info.path, plistOld, cfg.Version)
	files = append(files, info)

	// 4. Extra bump files
	for _, path := range cfg.BumpFiles {
		bf, err := readStaged(path)
		if err != nil {
			return nil, meta, err
		}
		var m *VersionMatch
		bf.updated, m = BumpVersionInContent(bf.original, cfg.Version)
		if m == nil {
			warn("%s: no version found, file left unchanged", path)
			continue
		}
		logging.Debug("%s:%d: %s %s -> %s", path, m.Line, m.Pattern, m.Version, cfg.Version)
		files = append(files, bf)
	}

	return files, meta, nil
}

// writeFileAtomic replaces path with data through a temporary file in the same
// directory, so readers never observe a partially written file.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

// commit writes every changed file. When a write fails, files already written
// are restored to their original content and nothing is reported as updated.
func commit(files []stagedFile) ([]string, error) {
	var written []stagedFile
	for _, f := range files {
		if !f.changed() {
			logging.Debug("%s already up to date", f.path)
			continue
		}
		if err := writeFileAtomic(f.path, f.updated, f.mode); err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrWrite, f.path, err)
			if rerr := restore(written); rerr != nil {
				err = multierror.Append(err, rerr)
			}
			return nil, err
		}
		written = append(written, f)
	}

	paths := make([]string, 0, len(written))
	for _, f := range written {
		paths = append(paths, f.path)
	}
	return paths, nil
}

func restore(written []stagedFile) error {
	var merr error
	for _, f := range written {
		logging.Warn("restoring %s", f.path)
		if err := writeFileAtomic(f.path, f.original, f.mode); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("failed to restore %s: %w", f.path, err))
		}
	}
	return merr
}

// checkGit verifies that git is available on the system.
func checkGit() error {
	cmd := exec.Command("git", "--version")
	if err := cmd.Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// gitCommit stages the given files, commits them with the new version as the
// message and tags the commit with the version prefixed by "v".
func gitCommit(dir, newVersion string, files []string) error {
	absFiles := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", f, err)
		}
		absFiles = append(absFiles, abs)
	}

	steps := [][]string{
		append([]string{"add", "--"}, absFiles...),
		{"commit", "-m", newVersion},
		{"tag", "v" + newVersion},
	}
	for _, args := range steps {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, stderr.String())
		}
	}
	return nil
}

// Run updates the manifest, build config and property list (plus any extra
// bump files) named by cfg to cfg.Version.
//
// All new file contents are computed before the first write. If computing any
// of them fails, no file is touched. Files that already carry the version are
// not rewritten, so running twice with the same version is a no-op.
func Run(cfg Config) (VersionMeta, error) {
	if cfg.GitCommit {
		if err := checkGit(); err != nil {
			return VersionMeta{ProjectName: cfg.ProjectName, NewVersion: cfg.Version.String()}, err
		}
	}

	files, meta, err := stage(cfg)
	if err != nil {
		return meta, err
	}

	meta.UpdatedFiles, err = commit(files)
	if err != nil {
		return meta, err
	}

	if cfg.GitCommit {
		if len(meta.UpdatedFiles) == 0 {
			logging.Warn("nothing changed, skipping git commit")
			return meta, nil
		}
		if err := gitCommit(cfg.Root, cfg.Version.String(), meta.UpdatedFiles); err != nil {
			return meta, err
		}
	}

	return meta, nil
}

// DryRun computes the same changes as Run and reports the files that would be
// written, without modifying anything.
func DryRun(cfg Config) (VersionMeta, error) {
	files, meta, err := stage(cfg)
	if err != nil {
		return meta, err
	}
	for _, f := range files {
		if f.changed() {
			meta.UpdatedFiles = append(meta.UpdatedFiles, f.path)
		}
	}
	return meta, nil
}
