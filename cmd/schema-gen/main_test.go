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

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cowdogmoo/imagegen/pkg/generator"
)

func runTo(t *testing.T, path string) error {
	t.Helper()
	originalOutput := *output
	*output = path
	t.Cleanup(func() {
		*output = originalOutput
	})
	return run()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "writes schema output",
			setup: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "schema.json")
			},
		},
		{
			name: "creates missing output directory",
			setup: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "nested", "dir", "schema.json")
			},
		},
		{
			name: "returns error when output directory is a file",
			setup: func(t *testing.T) string {
				t.Helper()
				blocker := filepath.Join(t.TempDir(), "blocker")
				if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
					t.Fatalf("write blocker: %v", err)
				}
				return filepath.Join(blocker, "schema.json")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := tt.setup(t)

			err := runTo(t, outputPath)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}

			data, err := os.ReadFile(outputPath)
			if err != nil {
				t.Fatalf("read schema: %v", err)
			}
			if !strings.HasSuffix(string(data), "}\n") {
				t.Error("schema output should end with a newline")
			}
			if !strings.Contains(string(data), "imagegen Project") {
				t.Errorf("schema output missing title, got: %s", data)
			}
		})
	}
}

// TestRunSchemaContent validates the structure of the generated schema.
func TestRunSchemaContent(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "schema.json")
	if err := runTo(t, outputPath); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("schema JSON is not valid: %v", err)
	}

	if got := schema["$id"]; got != "https://imagegen.dev/schema/project.json" {
		t.Errorf("schema $id = %v", got)
	}
	if got := schema["imagegenVersion"]; got != generator.Version {
		t.Errorf("schema imagegenVersion = %v, want %q", got, generator.Version)
	}
	if _, ok := schema["$schema"]; !ok {
		t.Error("schema missing $schema field")
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("schema properties is not an object, got %T", schema["properties"])
	}
	for _, key := range []string{"groupId", "artifactId", "version", "packaging", "requires", "properties", "images", "generators"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema missing property %q", key)
		}
	}

	required, _ := schema["required"].([]interface{})
	for _, key := range []string{"artifactId", "version"} {
		found := false
		for _, r := range required {
			if r == key {
				found = true
			}
		}
		if !found {
			t.Errorf("schema should require %q, got %v", key, required)
		}
	}

	examples, ok := schema["examples"].([]interface{})
	if !ok || len(examples) == 0 {
		t.Fatal("schema examples should be a non-empty array")
	}
	first, ok := examples[0].(map[string]interface{})
	if !ok {
		t.Fatalf("first example is not an object, got %T", examples[0])
	}
	if first["artifactId"] != "cart-service" {
		t.Errorf("first example artifactId = %v", first["artifactId"])
	}
}
