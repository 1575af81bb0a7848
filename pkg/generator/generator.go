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

// Package generator resolves the base image, name, alias and tags of the
// container images a project is packaged into. Each Generator inspects the
// image configurations produced so far and may append its own.
package generator

import "github.com/cowdogmoo/imagegen/pkg/buildconfig"

// Version is the imagegen release, checked against project requirements.
const Version = "0.1.0"

// Generator contributes image configurations for a project.
type Generator interface {
	// Name returns the generator name used in configuration keys.
	Name() string
	// IsApplicable reports whether the generator should run given the
	// image configurations collected so far.
	IsApplicable(configs []buildconfig.ImageConfiguration) bool
	// Customize returns configs with the generator's images added.
	Customize(configs []buildconfig.ImageConfiguration) ([]buildconfig.ImageConfiguration, error)
}
