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
	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/platform"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

// Context carries everything a generator reads while customizing one
// project. A Context is shared read-only by the generators of that project.
type Context struct {
	// Project is the project images are generated for.
	Project project.Project
	// Mode is the deployment target; NewContext takes it from the project.
	Mode platform.Mode
	// Strategy is the build strategy used on the platform-native target.
	Strategy platform.BuildStrategy
	// Vendor prefers vendor-supported base images.
	Vendor bool
	// Config holds explicit configuration keyed by generator name.
	Config map[string]map[string]string
	// SystemProperties is consulted before project properties. May be nil.
	SystemProperties config.PropertySource
	// Logger receives generator decision logs. Nil means logging.Default.
	Logger *logging.CustomLogger
}

// NewContext returns a Context for proj using the project's platform mode
// and the docker build strategy.
func NewContext(proj project.Project) *Context {
	return &Context{
		Project:  proj,
		Mode:     proj.PlatformMode(),
		Strategy: platform.DockerStrategy,
	}
}

// Properties returns the property lookup chain: system properties first,
// then project properties.
func (c *Context) Properties() config.PropertySource {
	var chain config.Chain
	if c.SystemProperties != nil {
		chain = append(chain, c.SystemProperties)
	}
	if c.Project != nil {
		chain = append(chain, c.Project.Properties())
	}
	return chain
}
