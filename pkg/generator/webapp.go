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

// WebappName is the name of the web application generator.
const WebappName = "webapp"

var webappImages = Images{
	Docker: ImagePair{
		Upstream: "tomcat:10.1-jre17",
		Vendor:   "registry.redhat.io/jboss-webserver-6/jws60-openjdk17-openshift-rhel8:6.0",
	},
	S2I: ImagePair{
		Upstream: "quay.io/jkube/jkube-tomcat:0.0.24",
		Vendor:   "registry.redhat.io/jboss-webserver-6/jws60-openjdk17-openshift-rhel8:6.0",
	},
	Istag: ImagePair{
		Upstream: "jkube-tomcat:0.0.24",
		Vendor:   "jboss-webserver60-openjdk17-tomcat10-openshift-rhel8:6.0",
	},
}

// Webapp builds a servlet container image for projects packaged as WARs.
type Webapp struct {
	*Base
}

// NewWebapp returns the webapp generator for gctx.
func NewWebapp(gctx *Context) Generator {
	return &Webapp{
		Base: NewBase(gctx, WebappName, NewDefaultFromSelector(gctx, webappImages)),
	}
}

// IsApplicable implements Generator.
func (g *Webapp) IsApplicable(configs []buildconfig.ImageConfiguration) bool {
	return g.Project().Packaging() == "war" && g.ShouldAddImageConfiguration(configs)
}

// Customize implements Generator.
func (g *Webapp) Customize(configs []buildconfig.ImageConfiguration) ([]buildconfig.ImageConfiguration, error) {
	image, err := g.DefaultImage()
	if err != nil {
		return nil, err
	}
	return append(configs, image), nil
}
