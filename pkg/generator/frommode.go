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

	"github.com/lithammer/fuzzysearch/fuzzy"

	imgerrors "github.com/cowdogmoo/imagegen/pkg/errors"
	"github.com/cowdogmoo/imagegen/pkg/platform"
)

// FromMode selects how a base image is referenced.
type FromMode int

const (
	// FromModeDocker references the base image directly by registry name.
	FromModeDocker FromMode = iota
	// FromModeIstag references the base image through an image stream tag.
	FromModeIstag
)

var fromModeNames = []string{
	FromModeDocker: "docker",
	FromModeIstag:  "istag",
}

// String returns the configuration value of the mode.
func (m FromMode) String() string {
	if int(m) < 0 || int(m) >= len(fromModeNames) {
		return "unknown"
	}
	return fromModeNames[m]
}

// ParseFromMode maps a configured value to a FromMode, ignoring case.
// Unrecognized values yield a *errors.ConfigError for the named generator.
func ParseFromMode(generator, value string) (FromMode, error) {
	for i, name := range fromModeNames {
		if strings.EqualFold(value, name) {
			return FromMode(i), nil
		}
	}
	return FromModeDocker, &imgerrors.ConfigError{
		Generator:  generator,
		Key:        KeyFromMode.String(),
		Value:      value,
		Suggestion: suggest(value, fromModeNames),
	}
}

// DefaultFromMode is istag only on the platform-native target with a vendor
// selector; docker everywhere else.
func DefaultFromMode(mode platform.Mode, selector FromSelector) FromMode {
	if mode.IsPlatformNative() && selector != nil && selector.IsVendor() {
		return FromModeIstag
	}
	return FromModeDocker
}

// maxSuggestDistance bounds the edit distance of a typo suggestion.
const maxSuggestDistance = 2

// suggest returns the candidate closest to value, or "" when none is close.
// Candidates containing value's characters in order win; otherwise the
// nearest candidate by edit distance within maxSuggestDistance.
func suggest(value string, candidates []string) string {
	if value == "" {
		return ""
	}

	if ranks := fuzzy.RankFindFold(value, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	lower := strings.ToLower(value)
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
