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
	"strconv"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/imagename"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

// Base holds the shared behavior of all generators: configuration
// resolution, base image selection, naming and tagging. Concrete
// generators embed it.
type Base struct {
	name     string
	gctx     *Context
	selector FromSelector
	config   *Config
	props    config.PropertySource
	log      *logging.PrefixedLogger
}

// NewBase resolves the configuration of the named generator against gctx.
// selector may be nil when the generator has no default base image.
func NewBase(gctx *Context, name string, selector FromSelector) *Base {
	props := gctx.Properties()
	b := &Base{
		name:     name,
		gctx:     gctx,
		selector: selector,
		config:   NewConfig(name, gctx.Config[name], props),
		props:    props,
		log:      logging.NewPrefixedLogger(name, gctx.Logger),
	}
	for _, key := range b.config.Unknown() {
		b.log.Warn("ignoring unknown configuration key '%s'", key)
	}
	return b
}

// Name returns the generator name.
func (b *Base) Name() string {
	return b.name
}

// Project returns the project being customized.
func (b *Base) Project() project.Project {
	return b.gctx.Project
}

// Context returns the generator context.
func (b *Base) Context() *Context {
	return b.gctx
}

// Config returns the resolved configuration snapshot.
func (b *Base) Config() *Config {
	return b.config
}

// Log returns the logger prefixed with the generator name.
func (b *Base) Log() *logging.PrefixedLogger {
	return b.log
}

// Resolve returns the configured value of key, falling back to the
// systemPropertyKey property and then to def. Blank values count as unset.
func (b *Base) Resolve(key Key, systemPropertyKey, def string) string {
	if v := b.config.Get(key); v != "" {
		return v
	}
	if v, ok := lookupTrimmed(b.props, systemPropertyKey); ok {
		return v
	}
	return def
}

// FromAsConfigured returns the configured base image without applying any
// selector default.
func (b *Base) FromAsConfigured() string {
	return b.Resolve(KeyFrom, SystemPropertyKey(KeyFrom), "")
}

// AddFrom sets the base image of builder. Depending on the resolved from
// mode the base is a direct image reference or an image stream tag.
func (b *Base) AddFrom(builder *buildconfig.Builder) error {
	selector := b.selector
	if selector == nil {
		selector = noSelector{}
	}

	defaultMode := DefaultFromMode(b.gctx.Mode, b.selector)
	value := b.Resolve(KeyFromMode, SystemPropertyKey(KeyFromMode), defaultMode.String())
	mode, err := ParseFromMode(b.name, value)
	if err != nil {
		return err
	}

	from := b.FromAsConfigured()
	switch mode {
	case FromModeIstag:
		b.addImageStreamTagFrom(builder, from, selector)
	default:
		b.addDockerFrom(builder, from, selector)
	}
	return nil
}

func (b *Base) addDockerFrom(builder *buildconfig.Builder, from string, selector FromSelector) {
	if from == "" {
		from = selector.From()
	}
	builder.From(from)
	b.log.Info("Using Docker image %s as base / builder", from)
}

func (b *Base) addImageStreamTagFrom(builder *buildconfig.Builder, from string, selector FromSelector) {
	var ext buildconfig.FromExt
	if from != "" {
		ext = imageStreamTagFor(from)
	} else {
		ext = selector.ImageStreamTagFromExt()
	}
	if ext == nil {
		return
	}

	if ext.HasNamespace() {
		b.log.Info("Using ImageStreamTag '%s' from namespace '%s' as builder image", ext.Name(), ext.Namespace())
	} else {
		b.log.Info("Using ImageStreamTag '%s' as builder image", ext.Name())
	}
	builder.FromExt(ext)
}

// imageStreamTagFor converts an image reference to an image stream tag
// reference. The user part of the reference becomes the namespace.
func imageStreamTagFor(ref string) buildconfig.FromExt {
	name := imagename.Parse(ref)
	tag := name.Tag
	if tag == "" {
		tag = imagename.DefaultTag
	}

	ext := buildconfig.FromExt{
		buildconfig.FromExtName: name.Repository + ":" + tag,
		buildconfig.FromExtKind: buildconfig.KindImageStreamTag,
	}
	if name.HasUser() {
		ext[buildconfig.FromExtNamespace] = name.User
	}
	return ext
}

// ImageName returns the configured image name, defaulting to the name
// template of the project's platform mode.
func (b *Base) ImageName() string {
	def := imagename.DefaultTemplate(b.gctx.Project.PlatformMode())
	return b.Resolve(KeyName, SystemPropertyKey(KeyName), def)
}

// Alias returns the configured alias, defaulting to the generator name.
func (b *Base) Alias() string {
	return b.Resolve(KeyAlias, SystemPropertyKey(KeyAlias), b.name)
}

// AddLatestTagIfSnapshot adds the "latest" tag for snapshot versions.
func (b *Base) AddLatestTagIfSnapshot(builder *buildconfig.Builder) {
	if b.gctx.Project.IsSnapshot() {
		builder.Tags(imagename.DefaultTag)
	}
}

// AddRevision records the project's source revision as an image annotation.
func (b *Base) AddRevision(builder *buildconfig.Builder) {
	if rev := b.gctx.Project.Revision(); rev != "" {
		builder.Annotation(ocispec.AnnotationRevision, rev)
	}
}

// ShouldAddImageConfiguration reports whether the generator may add its
// image: either no existing image is built from source, or merging was
// requested explicitly.
func (b *Base) ShouldAddImageConfiguration(configs []buildconfig.ImageConfiguration) bool {
	for _, c := range configs {
		if c.HasBuild() {
			return b.mergeRequested()
		}
	}
	return true
}

func (b *Base) mergeRequested() bool {
	merge, err := strconv.ParseBool(b.config.Get(KeyMerge))
	return err == nil && merge
}

// DefaultImage assembles the generator's image configuration: base image,
// snapshot tag, revision annotation, name and alias.
func (b *Base) DefaultImage() (buildconfig.ImageConfiguration, error) {
	builder := buildconfig.NewBuilder()
	if err := b.AddFrom(builder); err != nil {
		return buildconfig.ImageConfiguration{}, err
	}
	b.AddLatestTagIfSnapshot(builder)
	b.AddRevision(builder)

	return buildconfig.ImageConfiguration{
		Name:  b.ImageName(),
		Alias: b.Alias(),
		Build: builder.Build(),
	}, nil
}

type noSelector struct{}

func (noSelector) From() string                               { return "" }
func (noSelector) ImageStreamTagFromExt() buildconfig.FromExt { return nil }
func (noSelector) IsVendor() bool                             { return false }
