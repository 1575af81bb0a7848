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

// Package buildconfig holds the image configuration that generators fill in:
// the base image (direct or via an image stream reference), tags and
// annotations of each image to build.
package buildconfig

import (
	"maps"
	"slices"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Keys and values of an extended base image reference.
const (
	FromExtName      = "name"
	FromExtNamespace = "namespace"
	FromExtKind      = "kind"

	// KindImageStreamTag is the only kind imagegen produces.
	KindImageStreamTag = "ImageStreamTag"
)

// FromExt is an extended base image reference that names an image stream
// tag by name, optional namespace and kind instead of registry coordinates.
type FromExt map[string]string

// Name returns the image stream tag name, e.g. "java:17".
func (f FromExt) Name() string { return f[FromExtName] }

// Namespace returns the namespace, empty when the reference has none.
func (f FromExt) Namespace() string { return f[FromExtNamespace] }

// Kind returns the reference kind.
func (f FromExt) Kind() string { return f[FromExtKind] }

// HasNamespace reports whether a namespace entry is present.
func (f FromExt) HasNamespace() bool {
	_, ok := f[FromExtNamespace]
	return ok
}

// BuildImageConfiguration describes how one image is built.
type BuildImageConfiguration struct {
	From        string            `yaml:"from,omitempty" json:"from,omitempty"`
	FromExt     FromExt           `yaml:"fromExt,omitempty" json:"fromExt,omitempty"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// ImageConfiguration is a named image, optionally with a build section.
// Images without a build section are pulled, not built.
type ImageConfiguration struct {
	Name  string                   `yaml:"name" json:"name"`
	Alias string                   `yaml:"alias,omitempty" json:"alias,omitempty"`
	Build *BuildImageConfiguration `yaml:"build,omitempty" json:"build,omitempty"`
}

// HasBuild reports whether the image carries a build section.
func (c ImageConfiguration) HasBuild() bool {
	return c.Build != nil
}

// Builder assembles a BuildImageConfiguration. It is not safe for
// concurrent use; each target image gets its own Builder.
type Builder struct {
	cfg BuildImageConfiguration
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// From sets a direct base image reference. A non-empty image is also
// recorded as the OCI base image name annotation.
func (b *Builder) From(image string) *Builder {
	b.cfg.From = image
	if image != "" {
		b.Annotation(ocispec.AnnotationBaseImageName, image)
	}
	return b
}

// FromExt sets an extended base image reference. The map is copied.
func (b *Builder) FromExt(ext FromExt) *Builder {
	b.cfg.FromExt = maps.Clone(ext)
	return b
}

// Tags appends additional tags. Duplicates are kept.
func (b *Builder) Tags(tags ...string) *Builder {
	b.cfg.Tags = append(b.cfg.Tags, tags...)
	return b
}

// Annotation records an image annotation.
func (b *Builder) Annotation(key, value string) *Builder {
	if b.cfg.Annotations == nil {
		b.cfg.Annotations = map[string]string{}
	}
	b.cfg.Annotations[key] = value
	return b
}

// Build returns a copy of the configuration assembled so far.
func (b *Builder) Build() *BuildImageConfiguration {
	return &BuildImageConfiguration{
		From:        b.cfg.From,
		FromExt:     maps.Clone(b.cfg.FromExt),
		Tags:        slices.Clone(b.cfg.Tags),
		Annotations: maps.Clone(b.cfg.Annotations),
	}
}
