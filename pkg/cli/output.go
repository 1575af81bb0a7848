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

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/cowdogmoo/imagegen/pkg/buildconfig"
	"github.com/cowdogmoo/imagegen/pkg/logging"
	"github.com/cowdogmoo/imagegen/pkg/pipeline"
)

// OutputFormatter formats command output for display.
type OutputFormatter struct {
	format string // yaml, json, table
}

// NewOutputFormatter creates a new output formatter with the specified format.
func NewOutputFormatter(format string) *OutputFormatter {
	return &OutputFormatter{
		format: strings.ToLower(format),
	}
}

// DisplayResults writes resolution results to w in the configured format.
func (f *OutputFormatter) DisplayResults(w io.Writer, results []pipeline.Result) error {
	switch f.format {
	case "yaml", "":
		return f.displayResultsYAML(w, results)
	case "json":
		return f.displayResultsJSON(w, results)
	case "table":
		return f.displayResultsTable(w, results)
	default:
		return fmt.Errorf("unknown format: %s (supported: yaml, json, table)", f.format)
	}
}

func (f *OutputFormatter) displayResultsYAML(w io.Writer, results []pipeline.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return encoder.Close()
}

func (f *OutputFormatter) displayResultsJSON(w io.Writer, results []pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// displayResultsTable outputs one row per image.
func (f *OutputFormatter) displayResultsTable(out io.Writer, results []pipeline.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "PROJECT\tIMAGE\tALIAS\tBASE\tTAGS"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "-------\t-----\t-----\t----\t----"); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, res := range results {
		for _, img := range res.Images {
			tags := "-"
			if img.HasBuild() && len(img.Build.Tags) > 0 {
				tags = strings.Join(img.Build.Tags, ",")
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", res.Project, img.Name, orDash(img.Alias), DescribeBase(img), tags); err != nil {
				return fmt.Errorf("failed to write image row: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// DescribeBase renders the base image of img for humans. Image stream tags
// are shown as "istag:<namespace>/<name>".
func DescribeBase(img buildconfig.ImageConfiguration) string {
	if !img.HasBuild() {
		return "-"
	}
	if ext := img.Build.FromExt; ext != nil {
		if ext.HasNamespace() {
			return fmt.Sprintf("istag:%s/%s", ext.Namespace(), ext.Name())
		}
		return "istag:" + ext.Name()
	}
	return orDash(img.Build.From)
}

// DisplayGenerators lists generator names, one per line.
func (f *OutputFormatter) DisplayGenerators(w io.Writer, names []string) error {
	if f.format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("failed to write generator: %w", err)
		}
	}
	return nil
}

// DisplaySummary logs a short summary of a resolution run.
func (f *OutputFormatter) DisplaySummary(ctx context.Context, results []pipeline.Result) {
	total := 0
	for _, res := range results {
		total += len(res.Images)
	}
	logging.InfoContext(ctx, "Resolved %d image(s) across %d project(s)", total, len(results))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
