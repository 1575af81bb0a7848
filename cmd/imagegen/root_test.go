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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowdogmoo/imagegen/pkg/pipeline"
)

// isolate points every config search path at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_DIRS", tmpDir)
	t.Chdir(tmpDir)
	return tmpDir
}

// executeCommand runs a fresh command tree and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := run(cmd)
	return stdout.String(), stderr.String(), err
}

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imagegen.yaml"), []byte(content), 0o644))
}

func decodeResults(t *testing.T, out string) []pipeline.Result {
	t.Helper()
	var results []pipeline.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results), out)
	return results
}

const cartDescriptor = `groupId: io.example.shop
artifactId: cart
version: "1.0"
`

func TestResolveCommandDefaults(t *testing.T) {
	dir := isolate(t)
	writeProject(t, dir, cartDescriptor)

	out, stderr, err := executeCommand(t, "resolve", "-o", "json", "--log-format", "text")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	require.Len(t, results[0].Images, 1)
	img := results[0].Images[0]
	assert.Equal(t, "shop/cart:1.0", img.Name)
	assert.Equal(t, "java-exec", img.Alias)
	assert.Equal(t, "eclipse-temurin:17-jre", img.Build.From)

	assert.Contains(t, stderr, "[INFO] java-exec: Using Docker image eclipse-temurin:17-jre as base / builder")
	assert.Contains(t, stderr, "Resolved 1 image(s) across 1 project(s)")
}

func TestResolveCommandFlags(t *testing.T) {
	dir := isolate(t)
	writeProject(t, filepath.Join(dir, "svc"), cartDescriptor)

	propsFile := filepath.Join(dir, "build.properties")
	require.NoError(t, os.WriteFile(propsFile, []byte("imagegen.generator.alias = shop-cart\n"), 0o644))

	out, _, err := executeCommand(t, "resolve", "--quiet", "-o", "json",
		"--mode", "openshift", "--vendor",
		"--properties", propsFile,
		"--set", "imagegen.generator.fromMode=istag",
		"--set", "imagegen.generator.from=myns/base:2",
		filepath.Join(dir, "svc"))
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 1)
	img := results[0].Images[0]
	assert.Equal(t, "cart:1.0", img.Name)
	assert.Equal(t, "shop-cart", img.Alias)
	assert.Empty(t, img.Build.From)
	assert.Equal(t, "base:2", img.Build.FromExt.Name())
	assert.Equal(t, "myns", img.Build.FromExt.Namespace())
}

func TestResolveCommandEnvironment(t *testing.T) {
	dir := isolate(t)
	writeProject(t, dir, cartDescriptor)
	t.Setenv("IMAGEGEN_GENERATOR_FROM", "centos:7")
	t.Setenv("IMAGEGEN_BUILD_VENDOR", "true")

	out, _, err := executeCommand(t, "resolve", "-q", "-o", "json")
	require.NoError(t, err)

	results := decodeResults(t, out)
	assert.Equal(t, "centos:7", results[0].Images[0].Build.From)
}

func TestResolveCommandConfigFile(t *testing.T) {
	dir := isolate(t)
	writeProject(t, dir, cartDescriptor+"packaging: war\n")

	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("build:\n  vendor: true\n  generators: [webapp]\n"), 0o644))

	out, _, err := executeCommand(t, "resolve", "-q", "-o", "json", "--config", cfgPath)
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results[0].Images, 1)
	assert.Equal(t, "webapp", results[0].Images[0].Alias)
	assert.Equal(t, "registry.redhat.io/jboss-webserver-6/jws60-openjdk17-openshift-rhel8:6.0", results[0].Images[0].Build.From)
}

func TestResolveCommandDiscover(t *testing.T) {
	dir := isolate(t)
	writeProject(t, filepath.Join(dir, "shop", "cart"), cartDescriptor)
	writeProject(t, filepath.Join(dir, "shop", "web"), `groupId: io.example.shop
artifactId: web
version: "2.0"
packaging: war
`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shop", "docs"), 0o755))

	out, _, err := executeCommand(t, "resolve", "-q", "-o", "json", "--discover", "~/shop")
	require.NoError(t, err)

	results := decodeResults(t, out)
	require.Len(t, results, 2)
	assert.Equal(t, "io.example.shop:cart:1.0", results[0].Project)
	assert.Equal(t, "io.example.shop:web:2.0", results[1].Project)
	assert.Equal(t, "webapp", results[1].Images[0].Alias)

	_, _, err = executeCommand(t, "resolve", "-q", "--discover", filepath.Join(dir, "shop", "docs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no imagegen.yaml found")
}

func TestResolveCommandTableOutput(t *testing.T) {
	dir := isolate(t)
	writeProject(t, dir, cartDescriptor)

	out, _, err := executeCommand(t, "resolve", "-q", "-o", "table")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PROJECT"))
	assert.Contains(t, out, "shop/cart:1.0")
}

func TestResolveCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "invalid mode",
			args:   []string{"resolve", "-q", "--mode", "swarm"},
			errMsg: `invalid --mode "swarm"`,
		},
		{
			name:   "invalid output",
			args:   []string{"resolve", "-q", "-o", "xml"},
			errMsg: "invalid --output",
		},
		{
			name:   "malformed set",
			args:   []string{"resolve", "-q", "--set", "novalue"},
			errMsg: "invalid property format",
		},
		{
			name:   "unknown generator",
			args:   []string{"resolve", "-q", "--generator", "webap"},
			errMsg: `did you mean "webapp"`,
		},
		{
			name:   "invalid from mode",
			args:   []string{"resolve", "-q", "--set", "imagegen.generator.fromMode=bogus"},
			errMsg: "invalid 'fromMode' in generator configuration for 'java-exec'",
		},
		{
			name:   "missing project",
			args:   []string{"resolve", "-q", "does-not-exist"},
			errMsg: "read project descriptor",
		},
		{
			name:   "missing config file",
			args:   []string{"resolve", "-q", "--config", "nope.yaml"},
			errMsg: "failed to load config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeProject(t, dir, cartDescriptor)

			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigurationErrorHint(t *testing.T) {
	const hint = "Check the generators section of imagegen.yaml and the imagegen.generator.* properties"

	dir := isolate(t)
	writeProject(t, dir, cartDescriptor)

	_, stderr, err := executeCommand(t, "resolve", "--log-format", "text", "--generator", "web-app")
	require.Error(t, err)
	assert.Contains(t, stderr, `[ERROR] resolve .: invalid 'generators'`)
	assert.Contains(t, stderr, `did you mean "webapp"`)
	assert.Contains(t, stderr, hint)

	_, stderr, err = executeCommand(t, "resolve", "--log-format", "text", "does-not-exist")
	require.Error(t, err)
	assert.NotContains(t, stderr, hint)
}

func TestGeneratorsCommand(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "generators", "-q")
	require.NoError(t, err)
	assert.Equal(t, "java-exec\nwebapp\n", out)

	out, _, err = executeCommand(t, "generators", "-q", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["java-exec","webapp"]`, out)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "imagegen version "+version)
	assert.Contains(t, out, "commit:")
	assert.Contains(t, out, "built:")
}
