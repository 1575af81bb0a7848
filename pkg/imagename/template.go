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

package imagename

import "github.com/cowdogmoo/imagegen/pkg/platform"

// Default image name templates, expanded by Formatter.
const (
	// OpenShiftTemplate names images artifact:label.
	OpenShiftTemplate = "%a:%l"
	// KubernetesTemplate names images group/artifact:tag.
	KubernetesTemplate = "%g/%a:%t"
)

// DefaultTemplate returns the image name template used when no name is
// configured for the given platform mode.
func DefaultTemplate(mode platform.Mode) string {
	if mode.IsPlatformNative() {
		return OpenShiftTemplate
	}
	return KubernetesTemplate
}
