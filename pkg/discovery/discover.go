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

// Package discovery finds project descriptors in multi-module source trees.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

// Discover returns the descriptor of root itself, if any, followed by the
// descriptors of root's immediate subdirectories in name order.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read project directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	logging.Debug("Discovering projects in %s", root)

	var found []string
	if hasDescriptor(root) {
		found = append(found, filepath.Join(root, project.DescriptorFile))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if hasDescriptor(dir) {
			found = append(found, filepath.Join(dir, project.DescriptorFile))
		}
	}

	logging.Debug("Discovered %d project(s) in %s", len(found), root)
	return found, nil
}

// DiscoverAll runs Discover on every root and concatenates the results.
// It fails when a root yields no descriptor.
func DiscoverAll(roots []string) ([]string, error) {
	var all []string
	for _, root := range roots {
		found, err := Discover(root)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no %s found in %s", project.DescriptorFile, root)
		}
		all = append(all, found...)
	}
	return all, nil
}

func hasDescriptor(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, project.DescriptorFile))
	return err == nil && !info.IsDir()
}
