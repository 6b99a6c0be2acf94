// Package cmd wires the command line surface.
package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/digimatic/vscode-launch-gen/internal/appdetect"
	"github.com/digimatic/vscode-launch-gen/internal/launchcfg"
	"github.com/digimatic/vscode-launch-gen/internal/provider"
	"github.com/digimatic/vscode-launch-gen/pkg/output"
)

type rootFlags struct {
	output   string
	types    []string
	detect   bool
	dryRun   bool
	excludes []string
	debug    bool
}

func (f *rootFlags) Bind(local *pflag.FlagSet) {
	local.StringVarP(&f.output, "output", "o", launchcfg.DefaultPath, "Output file path.")
	local.StringArrayVarP(
		&f.types, "type", "t", nil,
		"Add a configuration of this type, as kind or kind:parameter. May be repeated.")
	local.BoolVar(&f.detect, "detect", false, "Detect project types and add their configurations.")
	local.BoolVar(&f.dryRun, "dry-run", false, "Print detected project types without generating files.")
	local.StringArrayVar(
		&f.excludes, "exclude", nil,
		"Directory glob to skip during detection. May be repeated.")
	// Parsed out of the raw arguments in main before cobra runs, declared
	// here so it shows up in help.
	local.BoolVar(&f.debug, "debug", false, "Enable verbose logging on stderr.")
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "vscode-launch-gen",
		Short: "Generate VS Code launch.json debug configurations.",
		Long: heredoc.Doc(`
			vscode-launch-gen inspects the current directory and writes VS Code
			launch.json debugger configurations for the ecosystems it finds.

			Configurations can be picked explicitly with --type, inferred with
			--detect, or both. Unknown types warn and are skipped; a run that
			produces no configurations writes nothing and still succeeds.`),
		Example: heredoc.Doc(`
			# Write configurations for everything detected in the working tree
			vscode-launch-gen --detect

			# Ask for specific configurations, one of them parameterized
			vscode-launch-gen --type python --type python-module:mypkg

			# See what would be detected, without writing anything
			vscode-launch-gen --dry-run`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags, provider.NewRegistry())
		},
	}

	flags.Bind(cmd.Flags())

	return cmd
}

func runRoot(cmd *cobra.Command, flags *rootFlags, reg *provider.Registry) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	var detected []string
	if flags.detect || flags.dryRun {
		var err error
		detected, err = appdetect.Detect(".", reg, appdetect.WithExcludePatterns(flags.excludes))
		if err != nil {
			return fmt.Errorf("detecting project types: %w", err)
		}

		fmt.Fprintln(stdout, "Detected project types:")
		if len(detected) == 0 {
			fmt.Fprintln(stdout, "  No specific project types detected")
		} else {
			for _, tag := range detected {
				fmt.Fprintf(stdout, "  - %s\n", tag)
			}
		}

		if flags.dryRun {
			return nil
		}
	}

	var configs []map[string]any

	for _, request := range flags.types {
		kind, param, _ := strings.Cut(request, ":")

		p, ok := reg.Lookup(kind)
		if !ok {
			fmt.Fprintln(stderr, output.WithWarningFormat("Warning: Unknown configuration type: %s", kind))
			fmt.Fprintf(stderr, "Available types: %s\n", strings.Join(reg.Names(), ", "))
			continue
		}

		configs = append(configs, p.Config(param))
	}

	if flags.detect {
		for _, tag := range detected {
			if coveredByRequest(flags.types, tag) {
				continue
			}

			kind, param, _ := strings.Cut(tag, ":")
			p, ok := reg.Lookup(kind)
			if !ok {
				log.Printf("no provider registered for detected type %s", tag)
				continue
			}

			configs = append(configs, p.Config(param))
		}
	}

	if len(configs) == 0 {
		fmt.Fprintln(stdout, "No configurations specified. Use --detect or specify configurations with --type.")
		fmt.Fprintf(stdout, "Available types: %s\n", output.WithHighLightFormat(strings.Join(reg.Names(), ", ")))
		return nil
	}

	if err := launchcfg.Write(flags.output, configs); err != nil {
		return err
	}

	fmt.Fprintln(stdout, output.WithSuccessFormat("Created %s", flags.output))
	return nil
}

// coveredByRequest reports whether an explicit --type request already covers
// the detected tag. Covered means the kind portions match exactly: requesting
// python-module:x covers a detected python-module:django, while requesting
// rust does not cover a detected rust-lib.
func coveredByRequest(requests []string, tag string) bool {
	tagKind, _, _ := strings.Cut(tag, ":")
	for _, request := range requests {
		requestKind, _, _ := strings.Cut(request, ":")
		if requestKind == tagKind {
			return true
		}
	}

	return false
}
