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

// Package pipeline runs the configured generators over one or more
// projects and expands the resulting image name templates.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/generator"
	"github.com/cowdogmoo/imagegen/pkg/imagename"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/platform"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

// DefaultMaxConcurrency is the default number of projects resolved in parallel.
const DefaultMaxConcurrency = 2

// Options control a resolution run.
type Options struct {
	// Mode overrides the platform mode of every project. Empty keeps the
	// mode declared by the project.
	Mode string
	// Strategy is the build strategy on the platform-native target.
	Strategy platform.BuildStrategy
	// Vendor selects vendor-supported base images.
	Vendor bool
	// Generators to run in order. Empty runs every registered generator.
	Generators []string
	// SystemProperties take precedence over project properties.
	SystemProperties config.PropertySource
}

// OptionsFromConfig derives run options from the global build settings.
func OptionsFromConfig(cfg config.BuildConfig) Options {
	return Options{
		Mode:       cfg.Mode,
		Strategy:   platform.ParseBuildStrategy(cfg.Strategy),
		Vendor:     cfg.Vendor,
		Generators: cfg.Generators,
	}
}

// Result holds the images resolved for one project.
type Result struct {
	// Source is the descriptor path the project was loaded from.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
	// Project is the groupId:artifactId:version coordinate.
	Project string `yaml:"project" json:"project"`
	// Images are the project's images followed by generated ones.
	Images []buildconfig.ImageConfiguration `yaml:"images" json:"images"`
}

// Service resolves image configurations for projects.
type Service struct {
	registry       *generator.Registry
	loader         *project.Loader
	maxConcurrency int
	now            func() time.Time
}

// NewService creates a service. maxConcurrency <= 0 uses DefaultMaxConcurrency.
func NewService(registry *generator.Registry, loader *project.Loader, maxConcurrency int) *Service {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Service{
		registry:       registry,
		loader:         loader,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
	}
}

// WithClock sets the clock used for snapshot timestamps in image names.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ResolveFiles loads each descriptor and resolves it. Projects are
// processed in parallel; results keep the order of paths.
func (s *Service) ResolveFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	logging.DebugContext(ctx, "Resolving %d project(s) with concurrency %d", len(paths), s.maxConcurrency)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	results := make([]Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			proj, err := s.loader.LoadFromFile(path)
			if err != nil {
				return err
			}

			res, err := s.ResolveProject(ctx, proj, opts)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", path, err)
			}
			res.Source = path
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ResolveProject runs the generators over one project.
func (s *Service) ResolveProject(ctx context.Context, proj *project.Info, opts Options) (*Result, error) {
	var target project.Project = proj
	if opts.Mode != "" {
		target = withMode{Project: proj, mode: platform.ParseMode(opts.Mode)}
	}

	names := opts.Generators
	if len(names) == 0 {
		names = s.registry.Names()
	}

	gctx := generator.NewContext(target)
	gctx.Strategy = opts.Strategy
	gctx.Vendor = opts.Vendor
	gctx.Config = make(map[string]map[string]string, len(names))
	for _, name := range names {
		if cfg := proj.GeneratorConfig(name); cfg != nil {
			gctx.Config[name] = cfg
		}
	}
	gctx.SystemProperties = opts.SystemProperties
	gctx.Logger = logging.FromContext(ctx)
	gens, err := s.registry.Create(gctx, names)
	if err != nil {
		return nil, err
	}

	images, err := generator.Run(gens, proj.Images())
	if err != nil {
		return nil, err
	}

	formatter := imagename.NewFormatter(target).WithClock(s.now)
	for i := range images {
		if strings.Contains(images[i].Name, "%") {
			images[i].Name = formatter.Format(images[i].Name)
		}
	}

	coord := fmt.Sprintf("%s:%s:%s", proj.GroupID(), proj.ArtifactID(), proj.Version())
	logging.InfoContext(ctx, "Resolved %d image(s) for %s", len(images), coord)
	return &Result{Project: coord, Images: images}, nil
}

// withMode overrides the platform mode a project reports.
type withMode struct {
	project.Project
	mode platform.Mode
}

func (w withMode) PlatformMode() platform.Mode { return w.mode }
