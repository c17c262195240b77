// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package ioutilx

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestReadAtMaximum(t *testing.T) {
	b, truncated, err := ReadAtMaximum(strings.NewReader("0123456789"), 4)
	assert.NilError(t, err)
	assert.Equal(t, "0123", string(b))
	assert.Assert(t, truncated)

	b, truncated, err = ReadAtMaximum(strings.NewReader("0123"), 4)
	assert.NilError(t, err)
	assert.Equal(t, "0123", string(b))
	assert.Assert(t, !truncated)
}

func TestDecodeText(t *testing.T) {
	testCases := map[string]struct {
		in       []byte
		expected string
	}{
		"utf-8":         {[]byte("héllo"), "héllo"},
		"invalid utf-8": {[]byte{'o', 'k', 0xff, '!'}, "ok�!"},
		"utf-16le":      {[]byte{0xff, 0xfe, 'h', 0, 'i', 0}, "hi"},
		"utf-16be":      {[]byte{0xfe, 0xff, 0, 'h', 0, 'i'}, "hi"},
		"empty":         {nil, ""},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DecodeText(tc.in))
		})
	}
}
