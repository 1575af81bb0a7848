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

import "github.com/cowdogmoo/imagegen/pkg/config"

// A Key identifies one generator configuration setting.
type Key int

const (
	// KeyMerge adds the generator's image even when the project already
	// declares images with a build section.
	KeyMerge Key = iota
	// KeyName is the image name or name template.
	KeyName
	// KeyAlias is the image alias; defaults to the generator name.
	KeyAlias
	// KeyFrom is the base image.
	KeyFrom
	// KeyFromMode selects how the base image is referenced ("docker" or "istag").
	KeyFromMode
)

var keyNames = [...]string{
	KeyMerge:    "merge",
	KeyName:     "name",
	KeyAlias:    "alias",
	KeyFrom:     "from",
	KeyFromMode: "fromMode",
}

// keyDefaults holds the built-in default of each key. None of the current
// keys has one.
var keyDefaults = [len(keyNames)]string{}

// Keys returns every configuration key in declaration order.
func Keys() []Key {
	return []Key{KeyMerge, KeyName, KeyAlias, KeyFrom, KeyFromMode}
}

// String returns the key as written in configuration and property names.
func (k Key) String() string {
	if int(k) < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Default returns the built-in default value of the key.
func (k Key) Default() string {
	if int(k) < 0 || int(k) >= len(keyDefaults) {
		return ""
	}
	return keyDefaults[k]
}

// SystemPropertyKey returns the generator-independent property name for k,
// e.g. "imagegen.generator.from".
func SystemPropertyKey(k Key) string {
	return config.PropertyPrefix + ".generator." + k.String()
}

// GeneratorPropertyKey returns the property name for k scoped to one
// generator, e.g. "imagegen.generator.java-exec.from".
func GeneratorPropertyKey(generator string, k Key) string {
	return config.PropertyPrefix + ".generator." + generator + "." + k.String()
}

func keyByName(name string) (Key, bool) {
	for _, k := range Keys() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
