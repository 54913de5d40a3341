package rnversion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

// Default locations of the version carrying files, relative to the project root.
var (
	DefaultManifestPath    = "package.json"
	DefaultBuildConfigPath = filepath.Join("android", "app", "build.gradle")
)

var (
	validate *validator.Validate

	projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{4,}$`)
)

func init() {
	validate = validator.New()
	err := validate.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return projectNamePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// projectInput is the validated form of the project name argument.
type projectInput struct {
	Name string `validate:"required,projectname"`
}

// PlistPath returns the conventional Info.plist location for an iOS project.
func PlistPath(projectName string) string {
	return filepath.Join("ios", projectName, "Info.plist")
}

// Options holds the raw, unvalidated settings collected from the command line.
// Empty paths fall back to their defaults.
type Options struct {
	Root        string
	Manifest    string
	BuildConfig string
	Plist       string
	BumpFiles   []string
	Strict      bool
	GitCommit   bool
}

// Targets are the three files a run rewrites.
type Targets struct {
	Manifest    string
	BuildConfig string
	Plist       string
}

// Paths returns the targets in the order they are updated.
func (t Targets) Paths() []string {
	return []string{t.Manifest, t.BuildConfig, t.Plist}
}

// Config is the validated input of a run. It is passed explicitly to every
// update step.
type Config struct {
	ProjectName string
	Version     Version
	Root        string
	Targets     Targets
	BumpFiles   []string
	Strict      bool
	GitCommit   bool
}

// NewConfig validates the positional arguments (project name and version)
// together with the options, and checks that every file the run touches
// exists. No file is opened for writing here.
func NewConfig(opts Options, args []string) (Config, error) {
	if len(args) != 2 {
		return Config{}, fmt.Errorf("%w (example: rnversion MyProject 1.2.3)", ErrUsage)
	}

	name := args[0]
	if err := validate.Struct(projectInput{Name: name}); err != nil {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}

	if !versionPattern.MatchString(args[1]) {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidVersion, args[1])
	}
	v, err := ParseVersion(args[1])
	if err != nil {
		return Config{}, err
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg := Config{
		ProjectName: name,
		Version:     v,
		Root:        root,
		Targets: Targets{
			Manifest:    resolve(root, opts.Manifest, DefaultManifestPath),
			BuildConfig: resolve(root, opts.BuildConfig, DefaultBuildConfigPath),
			Plist:       resolve(root, opts.Plist, PlistPath(name)),
		},
		Strict:    opts.Strict,
		GitCommit: opts.GitCommit,
	}
	for _, bf := range opts.BumpFiles {
		cfg.BumpFiles = append(cfg.BumpFiles, resolve(root, bf, ""))
	}

	// Every file must exist before anything is written, so a missing file
	// leaves the whole project untouched.
	var merr error
	for _, p := range append(cfg.Targets.Paths(), cfg.BumpFiles...) {
		if err := checkFile(p); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if merr != nil {
		return Config{}, merr
	}

	return cfg, nil
}

// resolve joins a relative path onto root, using def when p is empty.
func resolve(root, p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingFile, path)
	}
	return nil
}
