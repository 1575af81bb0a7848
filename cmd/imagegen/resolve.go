/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cowdogmoo/imagegen/pkg/cli"
	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/discovery"
	"github.com/cowdogmoo/imagegen/pkg/generator"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/pathexpand"
	"github.com/cowdogmoo/imagegen/pkg/pipeline"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

func newResolveCmd() *cobra.Command {
	var opts cli.ResolveCLIOptions

	cmd := &cobra.Command{
		Use:   "resolve [project...]",
		Short: "Resolve image configurations for one or more projects",
		Long: `Resolve reads each project descriptor (a file, or a directory containing
imagegen.yaml), runs the configured generators and prints the resulting
image configurations. Without arguments the current directory is used.`,
		Example: `  # Resolve the project in the current directory
  imagegen resolve

  # Resolve every module of a multi-module checkout
  imagegen resolve --discover ./shop

  # Resolve for OpenShift with vendor images and an explicit base image
  imagegen resolve --mode openshift --vendor --set imagegen.generator.from=centos:7 ./svc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Projects = args
			if len(opts.Projects) == 0 {
				opts.Projects = []string{"."}
			}
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", "", "Platform mode (kubernetes, openshift); default detects it from the project")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "Build strategy on OpenShift (docker, s2i)")
	cmd.Flags().Bool("vendor", false, "Prefer vendor-supported base images")
	cmd.Flags().Int("concurrency", 0, "Number of projects resolved in parallel")
	cmd.Flags().StringSliceVar(&opts.Generators, "generator", nil, "Generators to run, in order (default: all)")
	cmd.Flags().StringArrayVar(&opts.Properties, "set", nil, "Set a property (key=value), e.g. imagegen.generator.fromMode=istag")
	cmd.Flags().StringSliceVar(&opts.PropertyFiles, "properties", nil, "Properties files to load")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "yaml", "Output format (yaml, json, table)")
	cmd.Flags().BoolVar(&opts.Discover, "discover", false, "Treat arguments as folders and resolve every module found in them")

	return cmd
}

func runResolve(cmd *cobra.Command, opts cli.ResolveCLIOptions) error {
	ctx := cmd.Context()

	cfg := configFromContext(cmd)
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Flags were folded into cfg.Build by initConfig.
	opts.Mode = cfg.Build.Mode
	opts.Strategy = cfg.Build.Strategy
	opts.Generators = cfg.Build.Generators

	var err error
	if opts.Projects, err = pathexpand.ExpandAll(opts.Projects); err != nil {
		return err
	}
	if opts.PropertyFiles, err = pathexpand.ExpandAll(opts.PropertyFiles); err != nil {
		return err
	}

	if err := cli.NewValidator().ValidateResolveOptions(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	projects, err := projectPaths(opts)
	if err != nil {
		return err
	}

	props, err := systemProperties(cfg, opts)
	if err != nil {
		return err
	}

	runOpts := pipeline.OptionsFromConfig(cfg.Build)
	runOpts.SystemProperties = props

	loader, err := project.NewLoader(generator.Version)
	if err != nil {
		return err
	}
	svc := pipeline.NewService(generator.DefaultRegistry(), loader, cfg.Build.Concurrency)

	results, err := svc.ResolveFiles(ctx, projects, runOpts)
	if err != nil {
		return err
	}

	formatter := cli.NewOutputFormatter(opts.Output)
	formatter.DisplaySummary(ctx, results)
	return formatter.DisplayResults(cmd.OutOrStdout(), results)
}

// projectPaths replaces each project folder by the descriptors found in it
// when --discover is set.
func projectPaths(opts cli.ResolveCLIOptions) ([]string, error) {
	if !opts.Discover {
		return opts.Projects, nil
	}
	return discovery.DiscoverAll(opts.Projects)
}

// systemProperties assembles the system property store from configured
// properties files, --properties files and --set overrides.
func systemProperties(cfg *config.Config, opts cli.ResolveCLIOptions) (*config.SystemProperties, error) {
	props := config.NewSystemProperties()

	files, err := pathexpand.ExpandAll(slices.Concat(cfg.Properties.Files, opts.PropertyFiles))
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		if err := props.LoadFile(path); err != nil {
			return nil, err
		}
		logging.Debug("Loaded properties from %s", path)
	}

	overrides, err := cli.NewParser().ParseProperties(opts.Properties)
	if err != nil {
		return nil, err
	}
	props.SetAll(overrides)

	return props, nil
}
