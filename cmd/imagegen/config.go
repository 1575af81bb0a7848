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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/logging"
)

const configFileName = "config.yaml"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage imagegen configuration",
		Long: `Manage imagegen's global configuration file.

The configuration file stores the defaults applied to every run: log settings,
platform mode, build strategy, vendor images, concurrency, the generators to
run and the properties files to load.

Configuration precedence (highest to lowest):
1. CLI flags
2. Environment variables (IMAGEGEN_*)
3. Configuration file ($XDG_CONFIG_HOME/imagegen/config.yaml)
4. Built-in defaults`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runConfigInit(cmd, force)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	cmd.AddCommand(initCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Example: `  imagegen config get build.strategy
  imagegen config get properties.files`,
		Args: cobra.ExactArgs(1),
		RunE: runConfigGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Example: `  imagegen config set build.vendor true
  imagegen config set log.level debug`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	})
	return cmd
}

// runConfigInit writes the effective configuration to the default config
// file and returns its path.
func runConfigInit(cmd *cobra.Command, force bool) (string, error) {
	configPath, err := config.ConfigFile(configFileName)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	ctx := cmd.Context()
	if _, err := os.Stat(configPath); err == nil {
		if !force {
			return "", fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}
		logging.WarnContext(ctx, "Overwriting existing config file at %s", configPath)
	}

	cfg := configFromContext(cmd)
	if cfg == nil {
		return "", errors.New("config not available in context")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	logging.InfoContext(ctx, "Configuration file created at: %s", configPath)
	return configPath, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd)
	if cfg == nil {
		return errors.New("config not available in context")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# Sources: defaults -> config file -> environment variables -> CLI flags")
	fmt.Fprint(out, string(data))

	v := config.NewConfigViper()
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintf(out, "# Config file: %s\n", v.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# No config file found (using defaults)")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	v := config.NewConfigViper()
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), v.ConfigFileUsed())
		return nil
	}

	defaultPath, err := config.ConfigFile(configFileName)
	if err != nil {
		return fmt.Errorf("failed to get default config path: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (not created yet)\n", defaultPath)
	logging.InfoContext(cmd.Context(), "Run 'imagegen config init' to create the config file")
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd)
	if cfg == nil {
		return errors.New("config not available in context")
	}

	// Round-trip through yaml so dotted keys address the nested sections.
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	v := viper.New()
	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	key := args[0]
	if !v.IsSet(key) {
		return fmt.Errorf("key not found: %s", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	ctx := cmd.Context()

	v := config.NewConfigViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}

		logging.WarnContext(ctx, "Config file doesn't exist. Creating it now...")
		configPath, err := runConfigInit(cmd, false)
		if err != nil {
			return err
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read newly created config: %w", err)
		}
	}

	v.Set(key, value)
	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logging.InfoContext(ctx, "Set %s = %s in %s", key, value, v.ConfigFileUsed())
	return nil
}
