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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/config"
	imgerrors "github.com/cowdogmoo/imagegen/pkg/errors"
	"github.com/cowdogmoo/imagegen/pkg/platform"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	var names []string
	for _, k := range Keys() {
		names = append(names, k.String())
		assert.Empty(t, k.Default())
	}
	assert.Equal(t, []string{"merge", "name", "alias", "from", "fromMode"}, names)
	assert.Equal(t, "unknown", Key(42).String())
	assert.Equal(t, "imagegen.generator.fromMode", SystemPropertyKey(KeyFromMode))
	assert.Equal(t, "imagegen.generator.webapp.alias", GeneratorPropertyKey("webapp", KeyAlias))
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	props := config.MapProperties{
		"imagegen.generator.gen.name":  "from-props",
		"imagegen.generator.gen.alias": "alias-props",
		"imagegen.generator.from":      "generic",
	}
	c := NewConfig("gen", map[string]string{"alias": "explicit", "bogus": "1", "extra": "2"}, props)

	assert.Equal(t, "from-props", c.Get(KeyName))
	assert.Equal(t, "explicit", c.Get(KeyAlias))
	assert.Empty(t, c.Get(KeyFrom), "generic keys are not part of the snapshot")
	assert.Empty(t, c.Get(Key(-1)))
	assert.Equal(t, []string{"bogus", "extra"}, c.Unknown())

	unknown := c.Unknown()
	unknown[0] = "changed"
	assert.Equal(t, "bogus", c.Unknown()[0])
}

func TestNewConfigIgnoresBlankValues(t *testing.T) {
	t.Parallel()

	props := config.MapProperties{
		"imagegen.generator.gen.from":  "scoped:1",
		"imagegen.generator.gen.alias": "   ",
	}
	c := NewConfig("gen", map[string]string{"from": " \t ", "name": " shop/cart "}, props)

	assert.Equal(t, "scoped:1", c.Get(KeyFrom))
	assert.Equal(t, "shop/cart", c.Get(KeyName))
	assert.Empty(t, c.Get(KeyAlias))
}

func TestNewConfigWithoutProperties(t *testing.T) {
	t.Parallel()

	c := NewConfig("gen", nil, nil)
	for _, k := range Keys() {
		assert.Equal(t, k.Default(), c.Get(k))
	}
	assert.Empty(t, c.Unknown())
}

func TestParseFromMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value          string
		want           FromMode
		wantErr        bool
		wantSuggestion string
	}{
		{value: "docker", want: FromModeDocker},
		{value: "DOCKER", want: FromModeDocker},
		{value: "istag", want: FromModeIstag},
		{value: "IsTag", want: FromModeIstag},
		{value: "bogus", wantErr: true},
		{value: "", wantErr: true},
		{value: "istg", wantErr: true, wantSuggestion: "istag"},
		{value: "dokcer", wantErr: true, wantSuggestion: "docker"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFromMode("gen", tc.value)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			var cfgErr *imgerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "gen", cfgErr.Generator)
			assert.Equal(t, tc.value, cfgErr.Value)
			assert.Equal(t, tc.wantSuggestion, cfgErr.Suggestion)
		})
	}
}

func TestFromModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "docker", FromModeDocker.String())
	assert.Equal(t, "istag", FromModeIstag.String())
	assert.Equal(t, "unknown", FromMode(9).String())
}

func TestDefaultFromMode(t *testing.T) {
	t.Parallel()

	vendor := &fakeSelector{vendor: true}
	upstream := &fakeSelector{}

	assert.Equal(t, FromModeIstag, DefaultFromMode(platform.OpenShift, vendor))
	assert.Equal(t, FromModeDocker, DefaultFromMode(platform.OpenShift, upstream))
	assert.Equal(t, FromModeDocker, DefaultFromMode(platform.OpenShift, nil))
	assert.Equal(t, FromModeDocker, DefaultFromMode(platform.Kubernetes, vendor))
	assert.Equal(t, FromModeDocker, DefaultFromMode(platform.Kubernetes, nil))
}

func TestDefaultFromSelector(t *testing.T) {
	t.Parallel()

	images := Images{
		Docker: ImagePair{Upstream: "docker-up", Vendor: "docker-vendor"},
		S2I:    ImagePair{Upstream: "s2i-up", Vendor: "s2i-vendor"},
		Istag:  ImagePair{Upstream: "istag-up", Vendor: "istag-vendor"},
	}

	tests := []struct {
		name      string
		mode      platform.Mode
		strategy  platform.BuildStrategy
		vendor    bool
		wantFrom  string
		wantIstag string
	}{
		{name: "kubernetes upstream", mode: platform.Kubernetes, wantFrom: "docker-up", wantIstag: "istag-up"},
		{name: "kubernetes vendor", mode: platform.Kubernetes, vendor: true, wantFrom: "docker-vendor", wantIstag: "istag-vendor"},
		{name: "kubernetes ignores s2i", mode: platform.Kubernetes, strategy: platform.S2IStrategy, wantFrom: "docker-up", wantIstag: "istag-up"},
		{name: "openshift docker", mode: platform.OpenShift, wantFrom: "docker-up", wantIstag: "istag-up"},
		{name: "openshift s2i", mode: platform.OpenShift, strategy: platform.S2IStrategy, wantFrom: "s2i-up", wantIstag: "istag-up"},
		{name: "openshift s2i vendor", mode: platform.OpenShift, strategy: platform.S2IStrategy, vendor: true, wantFrom: "s2i-vendor", wantIstag: "istag-vendor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sel := NewDefaultFromSelector(&Context{Mode: tc.mode, Strategy: tc.strategy, Vendor: tc.vendor}, images)

			assert.Equal(t, tc.vendor, sel.IsVendor())
			assert.Equal(t, tc.wantFrom, sel.From())
			assert.Equal(t, buildconfig.FromExt{
				"name":      tc.wantIstag,
				"namespace": "openshift",
				"kind":      "ImageStreamTag",
			}, sel.ImageStreamTagFromExt())
		})
	}
}

func TestDefaultFromSelectorWithoutIstag(t *testing.T) {
	t.Parallel()

	sel := NewDefaultFromSelector(&Context{}, Images{Docker: ImagePair{Upstream: "x"}})
	assert.Nil(t, sel.ImageStreamTagFromExt())
}
