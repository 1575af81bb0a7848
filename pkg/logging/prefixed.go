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

package logging

import "fmt"

// PrefixedLogger prepends a fixed prefix, typically a generator name,
// to every message before handing it to a CustomLogger.
type PrefixedLogger struct {
	prefix string
	base   *CustomLogger
}

// NewPrefixedLogger returns a PrefixedLogger bound to base. A nil base
// resolves to Default at each call.
func NewPrefixedLogger(prefix string, base *CustomLogger) *PrefixedLogger {
	return &PrefixedLogger{prefix: prefix, base: base}
}

func (p *PrefixedLogger) logger() *CustomLogger {
	if p.base != nil {
		return p.base
	}
	return Default()
}

func (p *PrefixedLogger) format(format string, args ...interface{}) string {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return p.prefix + ": " + msg
}

// Info logs an informational message.
func (p *PrefixedLogger) Info(format string, args ...interface{}) {
	p.logger().Info("%s", p.format(format, args...))
}

// Warn logs a warning message.
func (p *PrefixedLogger) Warn(format string, args ...interface{}) {
	p.logger().Warn("%s", p.format(format, args...))
}

// Debug logs a debug message.
func (p *PrefixedLogger) Debug(format string, args ...interface{}) {
	p.logger().Debug("%s", p.format(format, args...))
}

// Error logs an error message.
func (p *PrefixedLogger) Error(format string, args ...interface{}) {
	p.logger().Error("%s", p.format(format, args...))
}
