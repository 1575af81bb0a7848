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

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Coordinates identify the project an image is built for.
type Coordinates interface {
	GroupID() string
	ArtifactID() string
	Version() string
	IsSnapshot() bool
}

var invalidNameChars = regexp.MustCompile(`[^a-z0-9._-]`)

// Formatter expands image name templates against project coordinates.
//
// Supported placeholders:
//
//	%g  last segment of the group id ("io.example.shop" -> "shop")
//	%a  artifact id
//	%v  version
//	%l  "latest" for snapshot versions, the version otherwise
//	%t  "snapshot-<timestamp>" for snapshot versions, the version otherwise
//	%%  a literal percent sign
//
// Unknown placeholders are copied through unchanged.
type Formatter struct {
	coords Coordinates
	now    func() time.Time
}

// NewFormatter returns a Formatter for coords using the wall clock.
func NewFormatter(coords Coordinates) *Formatter {
	return &Formatter{coords: coords, now: time.Now}
}

// WithClock returns a copy of f reading time from now.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	return &Formatter{coords: f.coords, now: now}
}

// Format expands every placeholder in tmpl.
func (f *Formatter) Format(tmpl string) string {
	var sb strings.Builder
	sb.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '%' || i+1 == len(tmpl) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch tmpl[i] {
		case 'g':
			sb.WriteString(f.group())
		case 'a':
			sb.WriteString(Sanitize(f.coords.ArtifactID()))
		case 'v':
			sb.WriteString(Sanitize(f.coords.Version()))
		case 'l':
			sb.WriteString(f.label())
		case 't':
			sb.WriteString(f.tag())
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(tmpl[i])
		}
	}
	return sb.String()
}

func (f *Formatter) group() string {
	group := strings.TrimRight(f.coords.GroupID(), ".")
	if i := strings.LastIndex(group, "."); i >= 0 {
		group = group[i+1:]
	}
	return Sanitize(group)
}

func (f *Formatter) label() string {
	if f.coords.IsSnapshot() {
		return DefaultTag
	}
	return Sanitize(f.coords.Version())
}

func (f *Formatter) tag() string {
	if !f.coords.IsSnapshot() {
		return Sanitize(f.coords.Version())
	}
	now := f.now()
	return fmt.Sprintf("snapshot-%s-%04d", now.Format("060102-150405"), now.Nanosecond()/int(time.Millisecond))
}

// Sanitize lowercases s and replaces characters that are not valid in an
// image name component with '-'.
func Sanitize(s string) string {
	return invalidNameChars.ReplaceAllString(strings.ToLower(s), "-")
}
