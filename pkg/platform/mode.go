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

// Package platform describes the deployment target an image is built for.
package platform

import "strings"

// ModeProperty is the build property that selects the platform mode.
const ModeProperty = "imagegen.mode"

// A Mode represents the deployment target of a build.
type Mode int

const (
	// Kubernetes is the standard target: images are referenced directly by
	// registry coordinates.
	Kubernetes Mode = iota
	// OpenShift is the platform-native target: base images may be referenced
	// through image stream tags.
	OpenShift
)

// String returns the property value for the mode.
func (m Mode) String() string {
	switch m {
	case OpenShift:
		return "openshift"
	default:
		return "kubernetes"
	}
}

// IsPlatformNative reports whether m is the platform-native target.
func (m Mode) IsPlatformNative() bool {
	return m == OpenShift
}

// ParseMode maps a property value to a Mode. Matching is case-insensitive;
// anything other than "openshift" is the standard target.
func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), OpenShift.String()) {
		return OpenShift
	}
	return Kubernetes
}

// A BuildStrategy selects how the platform builds images.
type BuildStrategy int

const (
	// DockerStrategy builds from a Dockerfile-style base image.
	DockerStrategy BuildStrategy = iota
	// S2IStrategy builds with a source-to-image builder image.
	S2IStrategy
)

// String returns the human-readable strategy name.
func (s BuildStrategy) String() string {
	if s == S2IStrategy {
		return "s2i"
	}
	return "docker"
}

// ParseBuildStrategy maps a strategy name to a BuildStrategy; unknown names
// select DockerStrategy.
func ParseBuildStrategy(value string) BuildStrategy {
	if strings.EqualFold(strings.TrimSpace(value), S2IStrategy.String()) {
		return S2IStrategy
	}
	return DockerStrategy
}
