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

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/pipeline"
)

func sampleResults() []pipeline.Result {
	return []pipeline.Result{
		{
			Source:  "shop/imagegen.yaml",
			Project: "io.example.shop:cart:1.0",
			Images: []buildconfig.ImageConfiguration{
				{Name: "redis:7"},
				{
					Name:  "shop/cart:1.0",
					Alias: "java-exec",
					Build: &buildconfig.BuildImageConfiguration{
						From: "eclipse-temurin:17-jre",
						Tags: []string{"latest"},
					},
				},
				{
					Name:  "cart:latest",
					Alias: "webapp",
					Build: &buildconfig.BuildImageConfiguration{
						FromExt: buildconfig.FromExt{"name": "java:17", "namespace": "openshift", "kind": "ImageStreamTag"},
					},
				},
			},
		},
	}
}

func TestDisplayResultsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputFormatter("yaml").DisplayResults(&buf, sampleResults()))

	var decoded []pipeline.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResults(), decoded)
	assert.Contains(t, buf.String(), "from: eclipse-temurin:17-jre")
}

func TestDisplayResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputFormatter("JSON").DisplayResults(&buf, sampleResults()))

	var decoded []pipeline.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResults(), decoded)
}

func TestDisplayResultsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputFormatter("table").DisplayResults(&buf, sampleResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "PROJECT"))
	assert.Contains(t, lines[2], "redis:7")
	assert.Contains(t, lines[3], "eclipse-temurin:17-jre")
	assert.Contains(t, lines[3], "latest")
	assert.Contains(t, lines[4], "istag:openshift/java:17")
}

func TestDisplayResultsInvalidFormat(t *testing.T) {
	err := NewOutputFormatter("xml").DisplayResults(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestDescribeBase(t *testing.T) {
	tests := []struct {
		name string
		img  buildconfig.ImageConfiguration
		want string
	}{
		{name: "pulled image", img: buildconfig.ImageConfiguration{Name: "x"}, want: "-"},
		{name: "empty base", img: buildconfig.ImageConfiguration{Build: &buildconfig.BuildImageConfiguration{}}, want: "-"},
		{name: "direct", img: buildconfig.ImageConfiguration{Build: &buildconfig.BuildImageConfiguration{From: "alpine:3"}}, want: "alpine:3"},
		{
			name: "istag without namespace",
			img: buildconfig.ImageConfiguration{Build: &buildconfig.BuildImageConfiguration{
				FromExt: buildconfig.FromExt{"name": "java:17"},
			}},
			want: "istag:java:17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeBase(tt.img))
		})
	}
}

func TestDisplayGenerators(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOutputFormatter("table").DisplayGenerators(&buf, []string{"java-exec", "webapp"}))
	assert.Equal(t, "java-exec\nwebapp\n", buf.String())

	buf.Reset()
	require.NoError(t, NewOutputFormatter("json").DisplayGenerators(&buf, []string{"java-exec"}))
	assert.JSONEq(t, `["java-exec"]`, buf.String())
}
