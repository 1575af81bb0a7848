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

// Package main generates a JSON schema from the imagegen project descriptor.
// The generated schema enables IDE autocompletion and validation for imagegen.yaml files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/cowdogmoo/imagegen/pkg/config"
	"github.com/cowdogmoo/imagegen/pkg/generator"
	"github.com/cowdogmoo/imagegen/pkg/project"
)

var (
	output = flag.String("o", "schema/imagegen-project.json", "Output path for JSON schema")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	// Type-level doc comments; field comments come from the struct tags.
	if err := reflector.AddGoComments("github.com/cowdogmoo/imagegen", "./"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to extract type-level comments: %v\n", err)
	}

	schema := reflector.Reflect(&project.Descriptor{})

	schema.ID = jsonschema.ID("https://imagegen.dev/schema/project.json")
	schema.Title = "imagegen Project"
	schema.Description = "Schema for imagegen project descriptors (imagegen.yaml)"
	if schema.Extras == nil {
		schema.Extras = make(map[string]interface{})
	}
	schema.Extras["imagegenVersion"] = generator.Version

	schema.Examples = []interface{}{
		map[string]interface{}{
			"groupId":    "io.example.shop",
			"artifactId": "cart-service",
			"version":    "1.0-SNAPSHOT",
			"packaging":  "jar",
			"requires":   ">=" + generator.Version,
			"properties": map[string]interface{}{
				"imagegen.mode": "openshift",
			},
			"generators": map[string]interface{}{
				"java-exec": map[string]interface{}{
					"fromMode": "istag",
					"from":     "myproject/java-base:17",
				},
			},
		},
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	dir := filepath.Dir(*output)
	if err := os.MkdirAll(dir, config.DirPermReadWriteExec); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Append newline to satisfy end-of-file-fixer
	data = append(data, '\n')

	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	fmt.Printf("✓ Generated JSON schema: %s\n", *output)
	return nil
}
