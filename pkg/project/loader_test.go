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

package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDescriptor = `groupId: io.example.shop
artifactId: cart
version: 1.0-SNAPSHOT
packaging: jar
requires: ">=0.1.0"
properties:
  imagegen.mode: openshift
images:
  - name: redis:7
generators:
  java-exec:
    fromMode: istag
`

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader("0.1.0")
	require.NoError(t, err)
	return l
}

func TestNewLoaderRejectsBadVersion(t *testing.T) {
	t.Parallel()

	_, err := NewLoader("not-a-version")
	assert.Error(t, err)
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	info, err := newTestLoader(t).LoadFromYAML([]byte(validDescriptor))
	require.NoError(t, err)

	assert.Equal(t, "cart", info.ArtifactID())
	assert.Equal(t, "istag", info.GeneratorConfig("java-exec")["fromMode"])
	assert.Len(t, info.Images(), 1)
	assert.Empty(t, info.Revision())
}

func TestLoadFromYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing artifactId", "version: 1.0\n", "artifactId is required"},
		{"missing version", "artifactId: a\n", "version is required"},
		{"unnamed image", "artifactId: a\nversion: 1\nimages:\n  - alias: x\n", "images[0]: name is required"},
		{"unknown field", "artifactId: a\nversion: 1\nbogus: true\n", "bogus"},
		{"unsatisfied requires", "artifactId: a\nversion: 1\nrequires: '>=9.0.0'\n", "requires imagegen >=9.0.0"},
		{"malformed requires", "artifactId: a\nversion: 1\nrequires: 'abc'\n", "invalid imagegen version constraint"},
		{"not yaml", "::::", "parse project descriptor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestLoader(t).LoadFromYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	t.Run("file path", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validDescriptor), 0644))

		info, err := newTestLoader(t).LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "cart", info.ArtifactID())
		assert.Empty(t, info.Revision())
	})

	t.Run("directory resolves descriptor file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(validDescriptor), 0644))

		info, err := newTestLoader(t).LoadFromFile(dir)
		require.NoError(t, err)
		assert.Equal(t, "cart", info.ArtifactID())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := newTestLoader(t).LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read project descriptor")
	})
}

func TestLoadFromFileDetectsRevision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(validDescriptor), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(DescriptorFile)
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	info, err := newTestLoader(t).LoadFromFile(dir)
	require.NoError(t, err)
	assert.Equal(t, hash.String(), info.Revision())
}

func TestDetectRevisionOutsideRepository(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DetectRevision(t.TempDir()))
}

func TestVersionChecker(t *testing.T) {
	t.Parallel()

	vc, err := NewVersionChecker("1.2.3")
	require.NoError(t, err)

	assert.NoError(t, vc.Check(""))
	assert.NoError(t, vc.Check(">=1.0.0"))
	assert.NoError(t, vc.Check("~1.2"))
	assert.Error(t, vc.Check("<1.0.0"))
	assert.Error(t, vc.Check("not a constraint"))
}
