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

// Package main implements the imagegen CLI. It resolves the base image,
// name, alias and tags of the container images a project is built into.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cowdogmoo/imagegen/pkg/config"
	imgerrors "github.com/cowdogmoo/imagegen/pkg/errors"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

// Context key type for storing config
type configKeyType struct{}

// configKey is the context key for storing the config
var configKey = configKeyType{}

// buildFlagKeys maps command flags to the build settings they override.
var buildFlagKeys = map[string]string{
	"mode":        "build.mode",
	"strategy":    "build.strategy",
	"vendor":      "build.vendor",
	"concurrency": "build.concurrency",
	"generator":   "build.generators",
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "imagegen",
		Short: "imagegen - container image configuration generator",
		Long: `imagegen decides which base image a project's container image starts from,
and how that image is named, aliased and tagged, for Kubernetes and OpenShift.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is $XDG_CONFIG_HOME/imagegen/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Log format (text, json, color)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Quiet mode - only show errors")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode - show debug output")

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newGeneratorsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// configFromContext retrieves the config from the command context.
// Returns nil if no config is stored in context.
func configFromContext(cmd *cobra.Command) *config.Config {
	if cmd.Context() == nil {
		return nil
	}
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return nil
}

// initConfig initializes configuration with proper precedence:
// CLI Flags > Environment Variables > Config File > Defaults
func initConfig(cmd *cobra.Command, cfgFile string) error {
	// 1. Load global config (handles defaults, env vars, and config file)
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromPath(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			logging.Warn("failed to load config, using defaults: %v", err)
			cfg = &config.Config{}
		}
	}

	// 2. Create a new Viper instance for flag binding, seeded with the loaded config
	v := viper.New()
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("build.mode", cfg.Build.Mode)
	v.SetDefault("build.strategy", cfg.Build.Strategy)
	v.SetDefault("build.vendor", cfg.Build.Vendor)
	v.SetDefault("build.concurrency", cfg.Build.Concurrency)
	v.SetDefault("build.generators", cfg.Build.Generators)

	// 3. Bind environment variables
	v.SetEnvPrefix("IMAGEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind Cobra flags to Viper (this enables: flags > env > config > defaults)
	if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind log-level flag: %w", err)
	}
	if err := v.BindPFlag("log.format", cmd.Root().PersistentFlags().Lookup("log-format")); err != nil {
		return fmt.Errorf("failed to bind log-format flag: %w", err)
	}
	BindFlagsToViper(v, cmd.Flags(), buildFlagKeys)

	// 5. Initialize logging with final values
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.Initialize(v.GetString("log.level"), v.GetString("log.format"), quiet, verbose)
	logger.ConsoleWriter = cmd.ErrOrStderr()

	// 6. Update config with final Viper values (for use in subcommands)
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Build.Mode = v.GetString("build.mode")
	cfg.Build.Strategy = v.GetString("build.strategy")
	cfg.Build.Vendor = v.GetBool("build.vendor")
	cfg.Build.Concurrency = v.GetInt("build.concurrency")
	cfg.Build.Generators = v.GetStringSlice("build.generators")

	// 7. Store config and logger in the command context
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	return nil
}

// Execute runs the root command
func Execute() error {
	return run(newRootCmd())
}

// run executes cmd and reports a failure through the logger.
func run(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		logging.Error("%v", err)
		if imgerrors.IsConfigError(err) {
			logging.Info("Check the generators section of %s and the %s.generator.* properties",
				project.DescriptorFile, config.PropertyPrefix)
		}
		return err
	}
	return nil
}

// BindFlagsToViper binds the flags named in keys to their Viper keys.
// Flags the command does not define are skipped.
func BindFlagsToViper(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := keys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			logging.Warn("failed to bind flag %s to viper: %v", f.Name, err)
		}
	})
}
