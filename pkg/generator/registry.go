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
	"fmt"
	"slices"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	imgerrors "github.com/cowdogmoo/imagegen/pkg/errors"
)

// Factory creates a generator bound to one project context.
type Factory func(gctx *Context) Generator

// Registry maps generator names to factories.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// DefaultRegistry returns a registry holding the built-in generators.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(JavaExecName, NewJavaExec)
	r.Register(WebappName, NewWebapp)
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	if _, ok := r.factories[name]; !ok {
		r.order = append(r.order, name)
	}
	r.factories[name] = factory
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// GeneratorsKey is the configuration key that lists the generators to run.
const GeneratorsKey = "generators"

// Lookup returns the factory registered under name. An unknown name yields
// a *errors.ConfigError suggesting the closest registered name.
func (r *Registry) Lookup(name string) (Factory, error) {
	if f, ok := r.factories[name]; ok {
		return f, nil
	}
	return nil, &imgerrors.ConfigError{
		Generator:  name,
		Key:        GeneratorsKey,
		Value:      name,
		Suggestion: suggest(name, r.order),
	}
}

// Create instantiates the named generators for gctx in the given order.
func (r *Registry) Create(gctx *Context, names []string) ([]Generator, error) {
	gens := make([]Generator, 0, len(names))
	for _, name := range names {
		f, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		gens = append(gens, f(gctx))
	}
	return gens, nil
}

// Run passes configs through each applicable generator in order.
func Run(gens []Generator, configs []buildconfig.ImageConfiguration) ([]buildconfig.ImageConfiguration, error) {
	for _, g := range gens {
		if !g.IsApplicable(configs) {
			continue
		}
		var err error
		configs, err = g.Customize(configs)
		if err != nil {
			return nil, fmt.Errorf("generator %s: %w", g.Name(), err)
		}
	}
	return configs, nil
}
