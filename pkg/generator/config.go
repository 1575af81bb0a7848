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

package generator

import (
	"sort"
	"strings"

	"github.com/cowdogmoo/imagegen/pkg/config"
)

// Config is the resolved configuration of one generator instance. It is
// built once and never changes afterwards.
type Config struct {
	values  [len(keyNames)]string
	unknown []string
}

// NewConfig resolves every Key for the named generator. For each key the
// explicit value wins, then the generator-scoped property
// (imagegen.generator.<name>.<key>) from props, then the key default.
// Values are trimmed and blank values count as unset.
// Explicit entries that are not a known key are recorded in Unknown.
func NewConfig(name string, explicit map[string]string, props config.PropertySource) *Config {
	c := &Config{}

	for key := range explicit {
		if _, ok := keyByName(key); !ok {
			c.unknown = append(c.unknown, key)
		}
	}
	sort.Strings(c.unknown)

	for _, k := range Keys() {
		if v := strings.TrimSpace(explicit[k.String()]); v != "" {
			c.values[k] = v
			continue
		}
		if props != nil {
			if v, ok := lookupTrimmed(props, GeneratorPropertyKey(name, k)); ok {
				c.values[k] = v
				continue
			}
		}
		c.values[k] = k.Default()
	}
	return c
}

// lookupTrimmed is props.Lookup with surrounding whitespace removed; a
// blank value counts as absent.
func lookupTrimmed(props config.PropertySource, key string) (string, bool) {
	v, ok := props.Lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Get returns the value for k, "" when nothing configured it.
func (c *Config) Get(k Key) string {
	if int(k) < 0 || int(k) >= len(c.values) {
		return ""
	}
	return c.values[k]
}

// Unknown returns the explicit keys that are not configuration keys.
func (c *Config) Unknown() []string {
	return append([]string(nil), c.unknown...)
}
