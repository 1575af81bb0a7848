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

// Package imagename parses image references and builds image names from
// placeholder templates.
package imagename

import (
	"strings"

	"github.com/opencontainers/go-digest"
	"go.podman.io/image/v5/docker/reference"
)

// DefaultTag is used when a reference carries neither a tag nor a digest.
const DefaultTag = "latest"

// Name is the decomposition of an image reference as written. Registry and
// user are never inferred, so "centos" has neither even though a registry
// client would expand it to docker.io/library/centos.
type Name struct {
	// Registry is set only when the reference names one explicitly.
	Registry string
	// User is the first path component below the registry, e.g. "myuser"
	// in "myuser/myimage". Empty when the path has a single component.
	User string
	// Repository is the rest of the path below the user.
	Repository string
	// Tag defaults to DefaultTag unless the reference is pinned by digest.
	Tag    string
	Digest digest.Digest
}

// Parse decomposes raw into a Name. It never fails: references the strict
// parser rejects (for example upper-case names) are still split on
// separators. For references it accepts, the parser supplies tag and digest.
func Parse(raw string) Name {
	raw = strings.TrimSpace(raw)
	n := split(raw)

	named, err := reference.ParseNormalizedNamed(raw)
	if err != nil {
		return n
	}

	n.Tag, n.Digest = "", ""
	if tagged, ok := named.(reference.NamedTagged); ok {
		n.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		n.Digest = digested.Digest()
	}
	if n.Tag == "" && n.Digest == "" {
		n.Tag = DefaultTag
	}
	return n
}

// split cuts raw into its components without normalizing anything.
func split(raw string) Name {
	var n Name

	rest := raw
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		n.Digest = digest.Digest(rest[at+1:])
		rest = rest[:at]
	}
	if colon := strings.LastIndex(rest, ":"); colon > strings.LastIndex(rest, "/") {
		n.Tag = rest[colon+1:]
		rest = rest[:colon]
	}
	if hasExplicitRegistry(rest) {
		n.Registry, rest, _ = strings.Cut(rest, "/")
	}
	if user, repo, found := strings.Cut(rest, "/"); found {
		n.User, n.Repository = user, repo
	} else {
		n.Repository = rest
	}

	if n.Tag == "" && n.Digest == "" {
		n.Tag = DefaultTag
	}
	return n
}

// hasExplicitRegistry applies the docker rule: the first path component is
// a registry when it looks like a host name.
func hasExplicitRegistry(raw string) bool {
	first, _, found := strings.Cut(raw, "/")
	if !found {
		return false
	}
	return strings.ContainsAny(first, ".:") || first == "localhost"
}

// HasUser reports whether the reference has a path above the image.
func (n Name) HasUser() bool {
	return n.User != ""
}

// NameWithoutTag returns registry, user and repository joined by "/".
func (n Name) NameWithoutTag() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.Registry, n.User, n.Repository} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// String returns the full reference.
func (n Name) String() string {
	s := n.NameWithoutTag()
	if n.Tag != "" {
		s += ":" + n.Tag
	}
	if n.Digest != "" {
		s += "@" + n.Digest.String()
	}
	return s
}
