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

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// PropertySource looks up namespaced property values such as
// "imagegen.generator.from". A value is only reported when it is not blank,
// and it is reported without surrounding whitespace.
type PropertySource interface {
	Lookup(key string) (string, bool)
}

// MapProperties is a PropertySource over a plain map, used for the build
// properties declared by a project. Keys are matched exactly.
type MapProperties map[string]string

// Lookup implements PropertySource.
func (m MapProperties) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(m[key])
	return v, v != ""
}

// Chain consults each source in order and returns the first non-empty value.
type Chain []PropertySource

// Lookup implements PropertySource.
func (c Chain) Lookup(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// SystemProperties is the system-level property store. Values come from,
// in decreasing precedence: explicit overrides (Set), the environment
// (imagegen.generator.from is read from IMAGEGEN_GENERATOR_FROM) and
// properties files loaded with LoadFile.
type SystemProperties struct {
	v *viper.Viper
}

// NewSystemProperties returns a store backed by the process environment.
func NewSystemProperties() *SystemProperties {
	// Property keys contain dots, so viper must not treat them as nesting.
	v := viper.NewWithOptions(
		viper.KeyDelimiter("::"),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)
	v.AutomaticEnv()
	return &SystemProperties{v: v}
}

// Set records an explicit override for key.
func (s *SystemProperties) Set(key, value string) {
	s.v.Set(key, value)
}

// SetAll records every entry of values as an override.
func (s *SystemProperties) SetAll(values map[string]string) {
	for key, value := range values {
		s.Set(key, value)
	}
}

// LoadFile merges a Java-style properties file into the store. Keys inside
// an [section] are prefixed with the section name, so
//
//	[imagegen.generator]
//	from = centos:7
//
// defines imagegen.generator.from. File values never override the
// environment or explicit overrides.
func (s *SystemProperties) LoadFile(path string) error {
	f, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:      "=",
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return fmt.Errorf("failed to load properties file %s: %w", path, err)
	}

	for _, section := range f.Sections() {
		prefix := ""
		if section.Name() != ini.DefaultSection {
			prefix = section.Name() + "."
		}
		for _, key := range section.Keys() {
			s.v.SetDefault(prefix+key.Name(), key.String())
		}
	}
	return nil
}

// Lookup implements PropertySource.
func (s *SystemProperties) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(s.v.GetString(key))
	return v, v != ""
}
