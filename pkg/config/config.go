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

// Package config loads the global imagegen configuration and exposes the
// system-level property store that generators fall back to.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// PropertyPrefix namespaces every property imagegen reads, e.g.
// "imagegen.generator.from".
const PropertyPrefix = "imagegen"

// DirPermReadWriteExec is the permission used for directories imagegen creates.
const DirPermReadWriteExec os.FileMode = 0755

// Config represents the global imagegen configuration.
// This holds user preferences and environment-specific settings,
// NOT project descriptors (which use plain YAML).
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Build      BuildConfig      `mapstructure:"build" yaml:"build"`
	Properties PropertiesConfig `mapstructure:"properties" yaml:"properties"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// BuildConfig holds the defaults applied to every resolution run.
type BuildConfig struct {
	// Mode forces the platform mode ("kubernetes" or "openshift"). Empty
	// means detect it from the project properties.
	Mode string `mapstructure:"mode" yaml:"mode"`
	// Strategy is the platform build strategy ("docker" or "s2i").
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// Vendor selects vendor-restricted base images for generators that
	// offer them.
	Vendor bool `mapstructure:"vendor" yaml:"vendor"`
	// Concurrency bounds how many projects are resolved in parallel.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	// Generators lists the generators to run, in order.
	Generators []string `mapstructure:"generators" yaml:"generators"`
}

// PropertiesConfig points at property files merged into the system
// property store.
type PropertiesConfig struct {
	Files []string `mapstructure:"files" yaml:"files"`
}

// Load reads and parses the global configuration file.
// Returns a Config with defaults if no config file exists.
func Load() (*Config, error) {
	v := NewConfigViper()
	setDefaults(v)

	// IMAGEGEN_LOG_LEVEL, IMAGEGEN_BUILD_CONCURRENCY, etc.
	v.SetEnvPrefix("IMAGEGEN")
	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("IMAGEGEN")
	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color")

	v.SetDefault("build.mode", "")
	v.SetDefault("build.strategy", "docker")
	v.SetDefault("build.vendor", false)
	v.SetDefault("build.concurrency", 2)
	v.SetDefault("build.generators", []string{"java-exec", "webapp"})

	v.SetDefault("properties.files", []string{})
}

// bindEnvVars explicitly binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("log.level", "IMAGEGEN_LOG_LEVEL")
	_ = v.BindEnv("log.format", "IMAGEGEN_LOG_FORMAT")

	_ = v.BindEnv("build.mode", "IMAGEGEN_BUILD_MODE")
	_ = v.BindEnv("build.strategy", "IMAGEGEN_BUILD_STRATEGY")
	_ = v.BindEnv("build.vendor", "IMAGEGEN_BUILD_VENDOR")
	_ = v.BindEnv("build.concurrency", "IMAGEGEN_BUILD_CONCURRENCY")
	_ = v.BindEnv("build.generators", "IMAGEGEN_BUILD_GENERATORS")

	_ = v.BindEnv("properties.files", "IMAGEGEN_PROPERTIES_FILES")
}
