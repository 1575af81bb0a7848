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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	imgerrors "github.com/cowdogmoo/imagegen/pkg/errors"
)

// DescriptorFile is the file name looked up when a directory is given.
const DescriptorFile = "imagegen.yaml"

// Loader reads project descriptors.
type Loader struct {
	versions *VersionChecker
}

// NewLoader creates a loader that checks descriptor constraints against
// the given imagegen release.
func NewLoader(toolVersion string) (*Loader, error) {
	vc, err := NewVersionChecker(toolVersion)
	if err != nil {
		return nil, err
	}
	return &Loader{versions: vc}, nil
}

// LoadFromFile loads a descriptor from path. A directory resolves to the
// imagegen.yaml inside it. The project revision is taken from the git
// repository containing the descriptor, if any.
func (l *Loader) LoadFromFile(path string) (*Info, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DescriptorFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, imgerrors.Wrap("read project descriptor", path, err)
	}

	desc, err := l.decode(data)
	if err != nil {
		return nil, imgerrors.Wrap("parse project descriptor", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, imgerrors.Wrap("resolve project directory", path, err)
	}

	return New(desc, DetectRevision(dir)), nil
}

// LoadFromYAML loads a descriptor from YAML bytes. The result has no
// revision.
func (l *Loader) LoadFromYAML(data []byte) (*Info, error) {
	desc, err := l.decode(data)
	if err != nil {
		return nil, imgerrors.Wrap("parse project descriptor", "", err)
	}
	return New(desc, ""), nil
}

func (l *Loader) decode(data []byte) (Descriptor, error) {
	var desc Descriptor

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return desc, err
	}

	if err := validate(desc); err != nil {
		return desc, err
	}
	if err := l.versions.Check(desc.Requires); err != nil {
		return desc, err
	}
	return desc, nil
}

func validate(desc Descriptor) error {
	var errs []error
	if desc.ArtifactID == "" {
		errs = append(errs, fmt.Errorf("artifactId is required"))
	}
	if desc.Version == "" {
		errs = append(errs, fmt.Errorf("version is required"))
	}
	for i, img := range desc.Images {
		if img.Name == "" {
			errs = append(errs, fmt.Errorf("images[%d]: name is required", i))
		}
	}
	return errors.Join(errs...)
}
