package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcomnes/rnversion/internal/logging"
	rnversion "github.com/bcomnes/rnversion/pkg"
)

const longDesc = `Updates the version of a React Native project in its package manifest,
Android build script and iOS property list.

All files are validated and their new contents computed before anything is
written, so a missing or malformed file leaves the project untouched.

Examples:
  rnversion MyProject 1.2.3
  rnversion --dry MyProject 1.2.3
  rnversion -C ./app --strict MyProject 2.0.0
  rnversion --bump-file app.json --git-commit MyProject 1.3.0`

func newRootCmd() *cobra.Command {
	var (
		opts     rnversion.Options
		dryRun   bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "rnversion [flags] <projectName> <version>",
		Short:         "Sync the version of a React Native project across package.json, build.gradle and Info.plist",
		Long:          longDesc,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Root, "root", "C", ".", "Project root directory")
	flags.StringVar(&opts.Manifest, "manifest", rnversion.DefaultManifestPath, "Package manifest path, relative to the root")
	flags.StringVar(&opts.BuildConfig, "build-config", rnversion.DefaultBuildConfigPath, "Android build script path, relative to the root")
	flags.StringVar(&opts.Plist, "plist", "", `iOS property list path, relative to the root (default "ios/<projectName>/Info.plist")`)
	flags.StringArrayVar(&opts.BumpFiles, "bump-file", nil, "Additional file to scan for its main version and update. May be repeated.")
	flags.BoolVar(&opts.Strict, "strict", false, "Only match build.gradle assignments at the start of a line and fail when one is missing")
	flags.BoolVar(&opts.GitCommit, "git-commit", false, "Commit the updated files and tag the commit with v<version>")
	flags.BoolVar(&dryRun, "dry", false, "Show what would change without modifying any files")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.MarkFlagsMutuallyExclusive("dry", "git-commit")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		logging.SetOutput(cc.OutOrStdout(), cc.ErrOrStderr())
		return logging.SetLevel(logLevel)
	}

	cmd.RunE = func(cc *cobra.Command, args []string) error {
		cfg, err := rnversion.NewConfig(opts, args)
		if err != nil {
			return err
		}

		logging.Info("updating %s version number to %s", cfg.ProjectName, cfg.Version)

		var meta rnversion.VersionMeta
		if dryRun {
			meta, err = rnversion.DryRun(cfg)
		} else {
			meta, err = rnversion.Run(cfg)
		}
		if err != nil {
			return err
		}

		printSummary(cc.OutOrStdout(), cfg, meta, dryRun)
		return nil
	}

	return cmd
}

func printSummary(w io.Writer, cfg rnversion.Config, meta rnversion.VersionMeta, dryRun bool) {
	fmt.Fprintf(w, "Project:      %s\n", meta.ProjectName)
	fmt.Fprintf(w, "Old Version:  %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New Version:  %s\n", meta.NewVersion)
	fmt.Fprintf(w, "Package json: %s\n", cfg.Targets.Manifest)
	fmt.Fprintf(w, "Build gradle: %s\n", cfg.Targets.BuildConfig)
	fmt.Fprintf(w, "Info plist:   %s\n", cfg.Targets.Plist)

	switch {
	case len(meta.UpdatedFiles) == 0:
		fmt.Fprintf(w, "All files already at %s, nothing to do.\n", meta.NewVersion)
		return
	case dryRun:
		fmt.Fprintln(w, "Files that would be updated:")
	default:
		fmt.Fprintln(w, "Files updated:")
	}
	for _, f := range meta.UpdatedFiles {
		fmt.Fprintf(w, "  %s\n", f)
	}

	if dryRun {
		fmt.Fprintln(w, "Dry run complete, no files were modified.")
	} else {
		logging.Success("%s is now at version %s", meta.ProjectName, meta.NewVersion)
	}
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, rnversion.ErrUsage) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(1)
	}
}
