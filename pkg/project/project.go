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

// Package project provides the project metadata generators read from:
// coordinates, version, packaging, build properties and any image
// configurations the project already declares.
package project

import (
	"strings"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/platform"
)

// SnapshotSuffix marks an unreleased, in-development version.
const SnapshotSuffix = "-SNAPSHOT"

// DefaultPackaging is assumed when a descriptor does not declare one.
const DefaultPackaging = "jar"

// Project is the read-only view of project metadata used by generators.
type Project interface {
	GroupID() string
	ArtifactID() string
	Version() string
	IsSnapshot() bool
	Packaging() string
	Properties() config.MapProperties
	PlatformMode() platform.Mode
	Revision() string
}

// Descriptor is the on-disk project description (imagegen.yaml).
type Descriptor struct {
	// GroupID is the dotted group the artifact belongs to, e.g. "io.example.shop".
	GroupID string `yaml:"groupId,omitempty" json:"groupId,omitempty"`
	// ArtifactID names the artifact the image packages.
	ArtifactID string `yaml:"artifactId" json:"artifactId"`
	// Version of the artifact; a "-SNAPSHOT" suffix marks a development build.
	Version string `yaml:"version" json:"version"`
	// Packaging is the artifact type, e.g. "jar" or "war".
	Packaging string `yaml:"packaging,omitempty" json:"packaging,omitempty"`
	// Requires is a semantic version constraint on the imagegen release.
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`
	// Properties are build properties, including imagegen.* settings.
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
	// Images are image configurations the project already declares.
	Images []buildconfig.ImageConfiguration `yaml:"images,omitempty" json:"images,omitempty"`
	// Generators holds explicit per-generator configuration keyed by generator name.
	Generators map[string]map[string]string `yaml:"generators,omitempty" json:"generators,omitempty"`
}

// IsSnapshot reports whether version denotes a snapshot build.
func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, SnapshotSuffix)
}

// Info is a loaded project. It implements Project.
type Info struct {
	desc     Descriptor
	revision string
}

// New wraps a descriptor. revision may be empty.
func New(desc Descriptor, revision string) *Info {
	if desc.Packaging == "" {
		desc.Packaging = DefaultPackaging
	}
	return &Info{desc: desc, revision: revision}
}

// Descriptor returns the descriptor the project was loaded from.
func (i *Info) Descriptor() Descriptor { return i.desc }

// GroupID implements Project.
func (i *Info) GroupID() string { return i.desc.GroupID }

// ArtifactID implements Project.
func (i *Info) ArtifactID() string { return i.desc.ArtifactID }

// Version implements Project.
func (i *Info) Version() string { return i.desc.Version }

// IsSnapshot implements Project.
func (i *Info) IsSnapshot() bool { return IsSnapshot(i.desc.Version) }

// Packaging implements Project.
func (i *Info) Packaging() string { return i.desc.Packaging }

// Properties implements Project.
func (i *Info) Properties() config.MapProperties { return config.MapProperties(i.desc.Properties) }

// PlatformMode reads the platform mode from the imagegen.mode property.
func (i *Info) PlatformMode() platform.Mode {
	v, _ := i.Properties().Lookup(platform.ModeProperty)
	return platform.ParseMode(v)
}

// Revision implements Project.
func (i *Info) Revision() string { return i.revision }

// Images returns the image configurations declared by the project.
func (i *Info) Images() []buildconfig.ImageConfiguration {
	return append([]buildconfig.ImageConfiguration(nil), i.desc.Images...)
}

// GeneratorConfig returns the explicit configuration for one generator,
// nil when the descriptor has none.
func (i *Info) GeneratorConfig(name string) map[string]string {
	return i.desc.Generators[name]
}
