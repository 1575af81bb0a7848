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
	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/platform"
)

// IstagNamespace is the namespace holding the platform's shared image streams.
const IstagNamespace = "openshift"

// FromSelector supplies the default base image of a generator.
type FromSelector interface {
	// From returns the direct base image reference.
	From() string
	// ImageStreamTagFromExt returns the image stream tag reference, or nil
	// when the selector has none.
	ImageStreamTagFromExt() buildconfig.FromExt
	// IsVendor reports whether vendor-supported images are preferred.
	IsVendor() bool
}

// ImagePair holds the community and the vendor-supported variant of an image.
type ImagePair struct {
	Upstream string
	Vendor   string
}

func (p ImagePair) pick(vendor bool) string {
	if vendor {
		return p.Vendor
	}
	return p.Upstream
}

// Images is the catalog of base images a DefaultFromSelector chooses from.
type Images struct {
	// Docker images are used for docker builds.
	Docker ImagePair
	// S2I images are builder images for source-to-image builds on OpenShift.
	S2I ImagePair
	// Istag names image stream tags in IstagNamespace.
	Istag ImagePair
}

// DefaultFromSelector picks from an Images catalog based on the build
// context: platform mode, build strategy and vendor preference.
type DefaultFromSelector struct {
	mode     platform.Mode
	strategy platform.BuildStrategy
	vendor   bool
	images   Images
}

// NewDefaultFromSelector returns a selector for gctx over images.
func NewDefaultFromSelector(gctx *Context, images Images) *DefaultFromSelector {
	return &DefaultFromSelector{
		mode:     gctx.Mode,
		strategy: gctx.Strategy,
		vendor:   gctx.Vendor,
		images:   images,
	}
}

// From implements FromSelector.
func (s *DefaultFromSelector) From() string {
	if s.mode.IsPlatformNative() && s.strategy == platform.S2IStrategy {
		return s.images.S2I.pick(s.vendor)
	}
	return s.images.Docker.pick(s.vendor)
}

// ImageStreamTagFromExt implements FromSelector.
func (s *DefaultFromSelector) ImageStreamTagFromExt() buildconfig.FromExt {
	name := s.images.Istag.pick(s.vendor)
	if name == "" {
		return nil
	}
	return buildconfig.FromExt{
		buildconfig.FromExtKind:      buildconfig.KindImageStreamTag,
		buildconfig.FromExtNamespace: IstagNamespace,
		buildconfig.FromExtName:      name,
	}
}

// IsVendor implements FromSelector.
func (s *DefaultFromSelector) IsVendor() bool {
	return s.vendor
}
