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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{
			name:      "valid key-value pair",
			input:     "imagegen.generator.from=centos:7",
			wantKey:   "imagegen.generator.from",
			wantValue: "centos:7",
		},
		{
			name:      "key-value with spaces",
			input:     " imagegen.mode = openshift ",
			wantKey:   "imagegen.mode",
			wantValue: "openshift",
		},
		{
			name:      "value with equals sign",
			input:     "key=a=b",
			wantKey:   "key",
			wantValue: "a=b",
		},
		{
			name:    "empty value",
			input:   "key=",
			wantKey: "key",
		},
		{
			name:    "no equals sign",
			input:   "keyvalue",
			wantErr: true,
		},
		{
			name:    "empty key",
			input:   "=value",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := ParseKeyValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseProperties(t *testing.T) {
	parser := NewParser()

	props, err := parser.ParseProperties(nil)
	require.NoError(t, err)
	assert.Nil(t, props)

	props, err = parser.ParseProperties([]string{"a=1", "b=2", "a=3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, props)

	_, err = parser.ParseProperties([]string{"a=1", "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid pair "broken"`)
}

func TestValidateKeyValueFormat(t *testing.T) {
	assert.True(t, ValidateKeyValueFormat("a=b"))
	assert.True(t, ValidateKeyValueFormat("a="))
	assert.False(t, ValidateKeyValueFormat("a"))
	assert.False(t, ValidateKeyValueFormat(" =b"))
}
