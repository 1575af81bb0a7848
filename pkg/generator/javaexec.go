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

import "github.com/cowdogmoo/imagegen/pkg/buildconfig"

// JavaExecName is the name of the executable JAR generator.
const JavaExecName = "java-exec"

var javaExecImages = Images{
	Docker: ImagePair{
		Upstream: "eclipse-temurin:17-jre",
		Vendor:   "registry.access.redhat.com/ubi9/openjdk-17-runtime:1.20",
	},
	S2I: ImagePair{
		Upstream: "quay.io/jkube/jkube-java:0.0.24",
		Vendor:   "registry.access.redhat.com/ubi9/openjdk-17:1.20",
	},
	Istag: ImagePair{
		Upstream: "jkube-java:0.0.24",
		Vendor:   "ubi9-openjdk-17:1.20",
	},
}

// JavaExec builds a runtime image for projects packaged as executable JARs.
type JavaExec struct {
	*Base
}

// NewJavaExec returns the java-exec generator for gctx.
func NewJavaExec(gctx *Context) Generator {
	return &JavaExec{
		Base: NewBase(gctx, JavaExecName, NewDefaultFromSelector(gctx, javaExecImages)),
	}
}

// IsApplicable implements Generator.
func (g *JavaExec) IsApplicable(configs []buildconfig.ImageConfiguration) bool {
	return g.Project().Packaging() == "jar" && g.ShouldAddImageConfiguration(configs)
}

// Customize implements Generator.
func (g *JavaExec) Customize(configs []buildconfig.ImageConfiguration) ([]buildconfig.ImageConfiguration, error) {
	image, err := g.DefaultImage()
	if err != nil {
		return nil, err
	}
	return append(configs, image), nil
}
