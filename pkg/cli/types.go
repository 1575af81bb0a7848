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

package cli

// ResolveCLIOptions defines command-line options for the resolve command.
//
// ResolveCLIOptions captures options provided by the user via CLI flags
// and arguments. These are validated before resolution starts.
type ResolveCLIOptions struct {
	// Projects are descriptor files or directories containing imagegen.yaml.
	Projects []string

	// Mode forces the platform mode ("kubernetes" or "openshift").
	Mode string

	// Strategy is the build strategy on OpenShift ("docker" or "s2i").
	Strategy string

	// Generators restricts and orders the generators to run.
	Generators []string

	// Properties are system property overrides (unparsed key=value strings).
	Properties []string

	// PropertyFiles are Java-style properties files to load.
	PropertyFiles []string

	// Output is the result format: yaml, json or table.
	Output string

	// Discover treats Projects as folders to scan for module descriptors.
	Discover bool
}
