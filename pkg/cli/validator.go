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
	"fmt"
	"os"
	"strings"
)

// Supported values for enumerated flags.
var (
	validModes      = []string{"kubernetes", "openshift"}
	validStrategies = []string{"docker", "s2i"}
	validOutputs    = []string{"yaml", "json", "table"}
)

// Validator validates CLI input before passing to business logic.
type Validator struct{}

// NewValidator creates a new CLI validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateResolveOptions validates resolve command options for correctness.
func (v *Validator) ValidateResolveOptions(opts ResolveCLIOptions) error {
	if len(opts.Projects) == 0 {
		return fmt.Errorf("at least one project descriptor is required")
	}

	if err := validateChoice("mode", opts.Mode, validModes); err != nil {
		return err
	}
	if err := validateChoice("strategy", opts.Strategy, validStrategies); err != nil {
		return err
	}
	if err := validateChoice("output", opts.Output, validOutputs); err != nil {
		return err
	}

	for _, prop := range opts.Properties {
		if !ValidateKeyValueFormat(prop) {
			return fmt.Errorf("invalid property format: %s (expected key=value)", prop)
		}
	}

	for _, path := range opts.PropertyFiles {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("properties file %s: %w", path, err)
		}
	}

	for _, name := range opts.Generators {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("generator names cannot be empty")
		}
	}

	return nil
}

// validateChoice accepts an empty value or one of choices, ignoring case.
func validateChoice(flag, value string, choices []string) error {
	if value == "" {
		return nil
	}
	for _, c := range choices {
		if strings.EqualFold(value, c) {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s %q (supported: %s)", flag, value, strings.Join(choices, ", "))
}
