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

package project

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// VersionChecker validates descriptor "requires" constraints against the
// running imagegen release.
type VersionChecker struct {
	current *semver.Version
}

// NewVersionChecker returns a VersionChecker for the given release version.
func NewVersionChecker(current string) (*VersionChecker, error) {
	ver, err := semver.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("invalid imagegen version: %w", err)
	}
	return &VersionChecker{current: ver}, nil
}

// Check returns an error when constraint is malformed or not satisfied.
// An empty constraint always passes.
func (vc *VersionChecker) Check(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid imagegen version constraint %q: %w", constraint, err)
	}

	if ok, errs := c.Validate(vc.current); !ok {
		return fmt.Errorf("project requires imagegen %s, but current version is %s: %v",
			constraint, vc.current, errs)
	}
	return nil
}
